package store

import (
	"context"
	"errors"

	"chatdeck.app/backend/core/db/sqlc"
	"chatdeck.app/backend/internal/model"
	"github.com/jackc/pgx/v5"
)

type messageStore struct {
	queries *sqlc.Queries
}

func newMessageStore(queries *sqlc.Queries) MessageStore {
	return &messageStore{queries: queries}
}

func (s *messageStore) GetByID(ctx context.Context, id int64) (*model.Message, error) {
	row, err := s.queries.GetMessage(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toMessageModel(row), nil
}

func (s *messageStore) Create(ctx context.Context, message *model.Message) error {
	row, err := s.queries.CreateMessage(ctx, sqlc.CreateMessageParams{
		ID:         message.ID,
		ChatroomID: message.ChatroomID,
		SenderID:   message.SenderID,
		Text:       message.Text,
	})
	if err != nil {
		return err
	}
	*message = *toMessageModel(row)
	return nil
}

func (s *messageStore) ListByChatroom(ctx context.Context, chatroomID int64) ([]model.Message, error) {
	rows, err := s.queries.ListMessagesByChatroom(ctx, chatroomID)
	if err != nil {
		return nil, err
	}
	messages := make([]model.Message, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, *toMessageModel(row))
	}
	return messages, nil
}

func (s *messageStore) ApplyResponse(ctx context.Context, id int64, response string) (bool, error) {
	affected, err := s.queries.ApplyMessageResponse(ctx, sqlc.ApplyMessageResponseParams{
		ID:       id,
		Response: &response,
	})
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func toMessageModel(row sqlc.Message) *model.Message {
	return &model.Message{
		ID:         row.ID,
		ChatroomID: row.ChatroomID,
		SenderID:   row.SenderID,
		Text:       row.Text,
		Response:   row.Response,
		Status:     model.MessageStatus(row.Status),
		CreatedAt:  row.CreatedAt.Time,
		UpdatedAt:  row.UpdatedAt.Time,
	}
}

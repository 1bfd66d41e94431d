package store

import (
	"context"
	"errors"

	"chatdeck.app/backend/core/db/sqlc"
	"chatdeck.app/backend/internal/model"
	"github.com/jackc/pgx/v5"
)

type chatroomStore struct {
	queries *sqlc.Queries
}

func newChatroomStore(queries *sqlc.Queries) ChatroomStore {
	return &chatroomStore{queries: queries}
}

func (s *chatroomStore) GetByID(ctx context.Context, id int64) (*model.Chatroom, error) {
	row, err := s.queries.GetChatroom(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toChatroomModel(row), nil
}

func (s *chatroomStore) Create(ctx context.Context, chatroom *model.Chatroom) error {
	row, err := s.queries.CreateChatroom(ctx, sqlc.CreateChatroomParams{
		ID:      chatroom.ID,
		OwnerID: chatroom.OwnerID,
		Name:    chatroom.Name,
	})
	if err != nil {
		return err
	}
	*chatroom = *toChatroomModel(row)
	return nil
}

func (s *chatroomStore) ListByOwner(ctx context.Context, ownerID int64) ([]model.Chatroom, error) {
	rows, err := s.queries.ListChatroomsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	chatrooms := make([]model.Chatroom, 0, len(rows))
	for _, row := range rows {
		chatrooms = append(chatrooms, *toChatroomModel(row))
	}
	return chatrooms, nil
}

func toChatroomModel(row sqlc.Chatroom) *model.Chatroom {
	return &model.Chatroom{
		ID:        row.ID,
		OwnerID:   row.OwnerID,
		Name:      row.Name,
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
}

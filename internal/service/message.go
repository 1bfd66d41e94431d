package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"chatdeck.app/backend/common/id"
	"chatdeck.app/backend/common/logger"
	"chatdeck.app/backend/internal/model"
	"chatdeck.app/backend/internal/queue"
	"chatdeck.app/backend/internal/store"
)

type SendMessageParams struct {
	ChatroomID int64
	SenderID   int64
	Text       string
	TraceID    *string
}

type MessageService interface {
	// Send stores a pending message and enqueues a reply task. The task is
	// enqueued only after the transaction commits, so a worker can never
	// pick up a task whose message row is not yet visible.
	Send(ctx context.Context, params SendMessageParams) (*model.Message, error)

	// ApplyResponse writes the model response and flips the message to
	// processed. It is safe to call more than once for the same message:
	// only the first call wins, later calls get ErrAlreadyProcessed.
	ApplyResponse(ctx context.Context, messageID int64, response string) error

	Get(ctx context.Context, userID, messageID int64) (*model.Message, error)
}

type messageService struct {
	chatrooms store.ChatroomStore
	messages  store.MessageStore
	txRunner  TxRunner
	queue     queue.Producer
	logger    *slog.Logger
}

func NewMessageService(chatrooms store.ChatroomStore, messages store.MessageStore, txRunner TxRunner, producer queue.Producer, logger *slog.Logger) MessageService {
	if logger == nil {
		logger = slog.Default()
	}
	return &messageService{
		chatrooms: chatrooms,
		messages:  messages,
		txRunner:  txRunner,
		queue:     producer,
		logger:    logger,
	}
}

func (s *messageService) Send(ctx context.Context, params SendMessageParams) (*model.Message, error) {
	if params.Text == "" {
		return nil, fmt.Errorf("message text is required")
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		ChatroomID: logger.Ptr(params.ChatroomID),
	})

	chatroom, err := s.chatrooms.GetByID(ctx, params.ChatroomID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrChatroomNotFound
		}
		return nil, fmt.Errorf("fetching chatroom: %w", err)
	}
	if chatroom.OwnerID != params.SenderID {
		return nil, ErrForbidden
	}

	message := &model.Message{
		ID:         id.New(),
		ChatroomID: params.ChatroomID,
		SenderID:   params.SenderID,
		Text:       params.Text,
	}

	if err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		if err := sp.Messages().Create(ctx, message); err != nil {
			return fmt.Errorf("creating message: %w", err)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	// Enqueue after commit. If this fails the message stays pending with no
	// task in flight; the caller gets the error and can resend.
	if err := s.queue.Enqueue(ctx, queue.ReplyMessage{
		MessageID: message.ID,
		Text:      message.Text,
		TraceID:   params.TraceID,
		Attempt:   1,
	}); err != nil {
		return nil, fmt.Errorf("enqueueing reply task: %w", err)
	}

	s.logger.InfoContext(ctx, "message accepted",
		"message_id", message.ID,
		"chatroom_id", params.ChatroomID)
	return message, nil
}

func (s *messageService) ApplyResponse(ctx context.Context, messageID int64, response string) error {
	applied, err := s.messages.ApplyResponse(ctx, messageID, response)
	if err != nil {
		return fmt.Errorf("applying response: %w", err)
	}
	if applied {
		s.logger.InfoContext(ctx, "response applied", "message_id", messageID)
		return nil
	}

	// The conditional update matched nothing. Either the message does not
	// exist or it was already processed; a second read tells them apart.
	if _, err := s.messages.GetByID(ctx, messageID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrMessageNotFound
		}
		return fmt.Errorf("fetching message: %w", err)
	}
	return ErrAlreadyProcessed
}

func (s *messageService) Get(ctx context.Context, userID, messageID int64) (*model.Message, error) {
	message, err := s.messages.GetByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, fmt.Errorf("fetching message: %w", err)
	}

	chatroom, err := s.chatrooms.GetByID(ctx, message.ChatroomID)
	if err != nil {
		return nil, fmt.Errorf("fetching chatroom: %w", err)
	}
	if chatroom.OwnerID != userID {
		return nil, ErrForbidden
	}
	return message, nil
}

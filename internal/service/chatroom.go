package service

import (
	"context"
	"errors"
	"fmt"

	"chatdeck.app/backend/common/id"
	"chatdeck.app/backend/internal/model"
	"chatdeck.app/backend/internal/store"
)

type ChatroomService interface {
	Create(ctx context.Context, ownerID int64, name *string) (*model.Chatroom, error)
	List(ctx context.Context, ownerID int64) ([]model.Chatroom, error)

	// Get returns the chatroom only to its owner. Existence is not leaked:
	// someone else's chatroom and a missing one both come back as not found
	// at the HTTP layer, but the service distinguishes them so handlers can
	// choose.
	Get(ctx context.Context, userID, chatroomID int64) (*model.Chatroom, error)
	GetWithMessages(ctx context.Context, userID, chatroomID int64) (*model.Chatroom, []model.Message, error)
}

type chatroomService struct {
	chatrooms store.ChatroomStore
	messages  store.MessageStore
}

func NewChatroomService(chatrooms store.ChatroomStore, messages store.MessageStore) ChatroomService {
	return &chatroomService{
		chatrooms: chatrooms,
		messages:  messages,
	}
}

func (s *chatroomService) Create(ctx context.Context, ownerID int64, name *string) (*model.Chatroom, error) {
	chatroom := &model.Chatroom{
		ID:      id.New(),
		OwnerID: ownerID,
		Name:    name,
	}
	if err := s.chatrooms.Create(ctx, chatroom); err != nil {
		return nil, fmt.Errorf("creating chatroom: %w", err)
	}
	return chatroom, nil
}

func (s *chatroomService) List(ctx context.Context, ownerID int64) ([]model.Chatroom, error) {
	chatrooms, err := s.chatrooms.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing chatrooms: %w", err)
	}
	return chatrooms, nil
}

func (s *chatroomService) Get(ctx context.Context, userID, chatroomID int64) (*model.Chatroom, error) {
	chatroom, err := s.chatrooms.GetByID(ctx, chatroomID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrChatroomNotFound
		}
		return nil, fmt.Errorf("fetching chatroom: %w", err)
	}
	if chatroom.OwnerID != userID {
		return nil, ErrForbidden
	}
	return chatroom, nil
}

func (s *chatroomService) GetWithMessages(ctx context.Context, userID, chatroomID int64) (*model.Chatroom, []model.Message, error) {
	chatroom, err := s.Get(ctx, userID, chatroomID)
	if err != nil {
		return nil, nil, err
	}

	messages, err := s.messages.ListByChatroom(ctx, chatroomID)
	if err != nil {
		return nil, nil, fmt.Errorf("listing messages: %w", err)
	}
	return chatroom, messages, nil
}

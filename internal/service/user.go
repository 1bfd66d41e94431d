package service

import (
	"context"
	"errors"
	"fmt"

	"chatdeck.app/backend/internal/model"
	"chatdeck.app/backend/internal/store"
)

type UserService interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

type userService struct {
	users store.UserStore
}

func NewUserService(users store.UserStore) UserService {
	return &userService{users: users}
}

func (s *userService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("fetching user: %w", err)
	}
	return user, nil
}

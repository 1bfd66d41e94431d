package store

import (
	"context"
	"errors"

	"chatdeck.app/backend/core/db/sqlc"
	"chatdeck.app/backend/internal/model"
	"github.com/jackc/pgx/v5"
)

type userStore struct {
	queries *sqlc.Queries
}

func newUserStore(queries *sqlc.Queries) UserStore {
	return &userStore{queries: queries}
}

func (s *userStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	row, err := s.queries.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toUserModel(row), nil
}

func (s *userStore) GetByMobileNumber(ctx context.Context, mobileNumber string) (*model.User, error) {
	row, err := s.queries.GetUserByMobileNumber(ctx, mobileNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toUserModel(row), nil
}

func (s *userStore) GetByStripeCustomerID(ctx context.Context, customerID string) (*model.User, error) {
	row, err := s.queries.GetUserByStripeCustomerID(ctx, &customerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toUserModel(row), nil
}

func (s *userStore) Create(ctx context.Context, user *model.User) error {
	row, err := s.queries.CreateUser(ctx, sqlc.CreateUserParams{
		ID:           user.ID,
		MobileNumber: user.MobileNumber,
		Email:        user.Email,
		FullName:     user.FullName,
	})
	if err != nil {
		return err
	}
	*user = *toUserModel(row)
	return nil
}

func (s *userStore) Confirm(ctx context.Context, id int64) (*model.User, error) {
	row, err := s.queries.ConfirmUser(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toUserModel(row), nil
}

func (s *userStore) SetStripeCustomerID(ctx context.Context, id int64, customerID string) error {
	return s.queries.SetUserStripeCustomerID(ctx, sqlc.SetUserStripeCustomerIDParams{
		ID:               id,
		StripeCustomerID: &customerID,
	})
}

func toUserModel(row sqlc.User) *model.User {
	return &model.User{
		ID:               row.ID,
		MobileNumber:     row.MobileNumber,
		Email:            row.Email,
		FullName:         row.FullName,
		Disabled:         row.Disabled,
		Confirmed:        row.Confirmed,
		StripeCustomerID: row.StripeCustomerID,
		CreatedAt:        row.CreatedAt.Time,
		UpdatedAt:        row.UpdatedAt.Time,
	}
}

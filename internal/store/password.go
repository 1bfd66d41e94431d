package store

import (
	"context"
	"errors"

	"chatdeck.app/backend/core/db/sqlc"
	"github.com/jackc/pgx/v5"
)

type passwordStore struct {
	queries *sqlc.Queries
}

func newPasswordStore(queries *sqlc.Queries) PasswordStore {
	return &passwordStore{queries: queries}
}

func (s *passwordStore) Get(ctx context.Context, userID int64) (string, error) {
	row, err := s.queries.GetPassword(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return row.PasswordHash, nil
}

func (s *passwordStore) Set(ctx context.Context, userID int64, passwordHash string) error {
	return s.queries.UpsertPassword(ctx, sqlc.UpsertPasswordParams{
		UserID:       userID,
		PasswordHash: passwordHash,
	})
}

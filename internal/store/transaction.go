package store

import (
	"context"
	"errors"

	"chatdeck.app/backend/core/db/sqlc"
	"chatdeck.app/backend/internal/model"
	"github.com/jackc/pgx/v5"
)

type transactionStore struct {
	queries *sqlc.Queries
}

func newTransactionStore(queries *sqlc.Queries) TransactionStore {
	return &transactionStore{queries: queries}
}

func (s *transactionStore) GetByID(ctx context.Context, id string) (*model.Transaction, error) {
	row, err := s.queries.GetTransaction(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toTransactionModel(row), nil
}

func (s *transactionStore) Create(ctx context.Context, txn *model.Transaction) error {
	row, err := s.queries.CreateTransaction(ctx, sqlc.CreateTransactionParams{
		ID:     txn.ID,
		UserID: txn.UserID,
		PlanID: txn.PlanID,
		Status: string(txn.Status),
		Amount: txn.Amount,
		Mode:   txn.Mode,
	})
	if err != nil {
		return err
	}
	*txn = *toTransactionModel(row)
	return nil
}

func (s *transactionStore) Complete(ctx context.Context, id string) (bool, error) {
	affected, err := s.queries.CompleteTransaction(ctx, id)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func toTransactionModel(row sqlc.Transaction) *model.Transaction {
	m := &model.Transaction{
		ID:        row.ID,
		UserID:    row.UserID,
		PlanID:    row.PlanID,
		Status:    model.TransactionStatus(row.Status),
		Amount:    row.Amount,
		Mode:      row.Mode,
		CreatedAt: row.CreatedAt.Time,
	}
	if row.ExpiresAt.Valid {
		t := row.ExpiresAt.Time
		m.ExpiresAt = &t
	}
	return m
}

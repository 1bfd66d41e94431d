package store

import (
	"context"
	"errors"

	"chatdeck.app/backend/core/db/sqlc"
	"chatdeck.app/backend/internal/model"
	"github.com/jackc/pgx/v5"
)

type planStore struct {
	queries *sqlc.Queries
}

func newPlanStore(queries *sqlc.Queries) PlanStore {
	return &planStore{queries: queries}
}

func (s *planStore) GetActive(ctx context.Context, userID int64) (*model.UserPlan, error) {
	row, err := s.queries.GetActiveUserPlan(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toUserPlanModel(row), nil
}

func (s *planStore) Create(ctx context.Context, plan *model.UserPlan) error {
	row, err := s.queries.CreateUserPlan(ctx, sqlc.CreateUserPlanParams{
		ID:     plan.ID,
		UserID: plan.UserID,
		Active: plan.Active,
		Plan:   string(plan.Plan),
	})
	if err != nil {
		return err
	}
	*plan = *toUserPlanModel(row)
	return nil
}

func (s *planStore) DeactivateAll(ctx context.Context, userID int64) error {
	return s.queries.DeactivateUserPlans(ctx, userID)
}

func toUserPlanModel(row sqlc.UserPlan) *model.UserPlan {
	return &model.UserPlan{
		ID:        row.ID,
		UserID:    row.UserID,
		Active:    row.Active,
		Plan:      model.PlanTier(row.Plan),
		CreatedAt: row.CreatedAt.Time,
	}
}

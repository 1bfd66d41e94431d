package dto

import (
	"time"

	"chatdeck.app/backend/internal/model"
)

type SubscribeResponse struct {
	CheckoutURL   string `json:"checkout_url"`
	TransactionID string `json:"transaction_id"`
}

type PlanResponse struct {
	Plan      string    `json:"plan"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

func ToPlanResponse(p *model.UserPlan) *PlanResponse {
	return &PlanResponse{
		Plan:      string(p.Plan),
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
	}
}

package model

import "time"

type PlanTier string

const (
	PlanTierBasic PlanTier = "basic"
	PlanTierPro   PlanTier = "pro"
)

type UserPlan struct {
	ID        int64     `json:"id,string"`
	UserID    int64     `json:"user_id,string"`
	Active    bool      `json:"active"`
	Plan      PlanTier  `json:"plan"`
	CreatedAt time.Time `json:"created_at"`
}

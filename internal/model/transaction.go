package model

import "time"

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
)

// Transaction records a checkout attempt. ID is the payment provider's
// session identifier, so webhook delivery can find it without a lookup table.
type Transaction struct {
	ID        string            `json:"id"`
	UserID    int64             `json:"user_id,string"`
	PlanID    *int64            `json:"plan_id,string,omitempty"`
	Status    TransactionStatus `json:"status"`
	Amount    int64             `json:"amount"`
	Mode      string            `json:"mode"`
	CreatedAt time.Time         `json:"created_at"`
	ExpiresAt *time.Time        `json:"expires_at,omitempty"`
}

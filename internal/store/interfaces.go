package store

import (
	"context"
	"errors"

	"chatdeck.app/backend/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// UserStore defines the contract for user data access
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByMobileNumber(ctx context.Context, mobileNumber string) (*model.User, error)
	GetByStripeCustomerID(ctx context.Context, customerID string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	Confirm(ctx context.Context, id int64) (*model.User, error)
	SetStripeCustomerID(ctx context.Context, id int64, customerID string) error
}

// PasswordStore defines the contract for credential data access.
// Hashes live in their own table so user rows never carry secrets.
type PasswordStore interface {
	Get(ctx context.Context, userID int64) (string, error)
	Set(ctx context.Context, userID int64, passwordHash string) error
}

// ChatroomStore defines the contract for chatroom data access
type ChatroomStore interface {
	GetByID(ctx context.Context, id int64) (*model.Chatroom, error)
	Create(ctx context.Context, chatroom *model.Chatroom) error
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Chatroom, error)
}

// MessageStore defines the contract for message data access
type MessageStore interface {
	GetByID(ctx context.Context, id int64) (*model.Message, error)
	Create(ctx context.Context, message *model.Message) error
	ListByChatroom(ctx context.Context, chatroomID int64) ([]model.Message, error)

	// ApplyResponse sets the response and flips status to processed in a
	// single conditional update. Returns false when no pending row matched,
	// which means the message is either absent or already processed.
	ApplyResponse(ctx context.Context, id int64, response string) (bool, error)
}

// PlanStore defines the contract for subscription plan data access
type PlanStore interface {
	GetActive(ctx context.Context, userID int64) (*model.UserPlan, error)
	Create(ctx context.Context, plan *model.UserPlan) error
	DeactivateAll(ctx context.Context, userID int64) error
}

// TransactionStore defines the contract for payment transaction data access
type TransactionStore interface {
	GetByID(ctx context.Context, id string) (*model.Transaction, error)
	Create(ctx context.Context, txn *model.Transaction) error

	// Complete flips a pending transaction to completed. Returns false when
	// the transaction was not pending, so webhook retries stay idempotent.
	Complete(ctx context.Context, id string) (bool, error)
}

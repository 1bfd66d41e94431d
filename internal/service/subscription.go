package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"chatdeck.app/backend/common/id"
	"chatdeck.app/backend/internal/model"
	"chatdeck.app/backend/internal/payment"
	"chatdeck.app/backend/internal/store"
)

type SubscribeResult struct {
	CheckoutURL   string
	TransactionID string
}

type SubscriptionService interface {
	// SubscribePro ensures a Stripe customer for the user, opens a checkout
	// session, and records a pending transaction keyed by the session ID.
	SubscribePro(ctx context.Context, userID int64) (*SubscribeResult, error)

	// Status returns the user's active plan.
	Status(ctx context.Context, userID int64) (*model.UserPlan, error)

	// HandleCheckoutCompleted completes the pending transaction and swaps
	// the user onto the pro plan. Webhook deliveries may repeat; later
	// calls for an already completed transaction are no-ops.
	HandleCheckoutCompleted(ctx context.Context, sessionID string) error
}

type subscriptionService struct {
	users        store.UserStore
	plans        store.PlanStore
	transactions store.TransactionStore
	txRunner     TxRunner
	provider     payment.Provider
	logger       *slog.Logger
}

func NewSubscriptionService(users store.UserStore, plans store.PlanStore, transactions store.TransactionStore, txRunner TxRunner, provider payment.Provider, logger *slog.Logger) SubscriptionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &subscriptionService{
		users:        users,
		plans:        plans,
		transactions: transactions,
		txRunner:     txRunner,
		provider:     provider,
		logger:       logger,
	}
}

func (s *subscriptionService) SubscribePro(ctx context.Context, userID int64) (*SubscribeResult, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("fetching user: %w", err)
	}

	customerID, err := s.provider.EnsureCustomer(ctx, user.ID, user.MobileNumber, user.StripeCustomerID)
	if err != nil {
		return nil, fmt.Errorf("ensuring customer: %w", err)
	}
	if user.StripeCustomerID == nil || *user.StripeCustomerID != customerID {
		if err := s.users.SetStripeCustomerID(ctx, user.ID, customerID); err != nil {
			return nil, fmt.Errorf("saving customer id: %w", err)
		}
	}

	sess, err := s.provider.CreateCheckoutSession(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("creating checkout session: %w", err)
	}

	txn := &model.Transaction{
		ID:     sess.ID,
		UserID: user.ID,
		Status: model.TransactionStatusPending,
		Amount: sess.Amount,
		Mode:   sess.Mode,
	}
	if sess.ExpiresAt > 0 {
		t := time.Unix(sess.ExpiresAt, 0).UTC()
		txn.ExpiresAt = &t
	}
	if err := s.transactions.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("recording transaction: %w", err)
	}

	s.logger.InfoContext(ctx, "checkout session created",
		"user_id", user.ID,
		"session_id", sess.ID)
	return &SubscribeResult{
		CheckoutURL:   sess.URL,
		TransactionID: sess.ID,
	}, nil
}

func (s *subscriptionService) Status(ctx context.Context, userID int64) (*model.UserPlan, error) {
	plan, err := s.plans.GetActive(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("fetching plan: %w", err)
	}
	return plan, nil
}

func (s *subscriptionService) HandleCheckoutCompleted(ctx context.Context, sessionID string) error {
	txn, err := s.transactions.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("unknown checkout session %q", sessionID)
		}
		return fmt.Errorf("fetching transaction: %w", err)
	}

	var upgraded bool
	if err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		completed, err := sp.Transactions().Complete(ctx, txn.ID)
		if err != nil {
			return fmt.Errorf("completing transaction: %w", err)
		}
		if !completed {
			// Duplicate webhook delivery, plan was already switched.
			return nil
		}

		if err := sp.Plans().DeactivateAll(ctx, txn.UserID); err != nil {
			return fmt.Errorf("deactivating plans: %w", err)
		}
		plan := &model.UserPlan{
			ID:     id.New(),
			UserID: txn.UserID,
			Active: true,
			Plan:   model.PlanTierPro,
		}
		if err := sp.Plans().Create(ctx, plan); err != nil {
			return fmt.Errorf("creating pro plan: %w", err)
		}
		upgraded = true
		return nil
	}); err != nil {
		return err
	}

	if upgraded {
		s.logger.InfoContext(ctx, "user upgraded to pro",
			"user_id", txn.UserID,
			"session_id", sessionID)
	} else {
		s.logger.InfoContext(ctx, "duplicate checkout webhook ignored",
			"session_id", sessionID)
	}
	return nil
}

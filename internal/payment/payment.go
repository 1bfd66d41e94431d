// Package payment isolates the Stripe SDK behind an interface the
// subscription service can be tested against.
package payment

import (
	"context"
	"net/http"
)

type CheckoutSession struct {
	ID        string
	URL       string
	Amount    int64
	Mode      string
	ExpiresAt int64
}

type WebhookEvent struct {
	Type       string
	SessionID  string
	CustomerID string
}

type Provider interface {
	// EnsureCustomer returns the provider-side customer ID for a user,
	// creating one on first use.
	EnsureCustomer(ctx context.Context, userID int64, mobileNumber string, existingID *string) (string, error)

	// CreateCheckoutSession starts a checkout for the pro plan price.
	CreateCheckoutSession(ctx context.Context, customerID string) (*CheckoutSession, error)

	// VerifyWebhook authenticates a webhook delivery and extracts the event.
	VerifyWebhook(payload []byte, header http.Header) (*WebhookEvent, error)
}

package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"chatdeck.app/backend/core/config"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"github.com/stripe/stripe-go/v82/webhook"
)

type stripeProvider struct {
	api           *client.API
	webhookSecret string
	proPriceID    string
	successURL    string
	cancelURL     string
}

func NewStripeProvider(cfg config.StripeConfig) Provider {
	api := &client.API{}
	api.Init(cfg.SecretKey, nil)
	return &stripeProvider{
		api:           api,
		webhookSecret: cfg.WebhookSecret,
		proPriceID:    cfg.ProPriceID,
		successURL:    cfg.SuccessURL,
		cancelURL:     cfg.CancelURL,
	}
}

func (p *stripeProvider) EnsureCustomer(ctx context.Context, userID int64, mobileNumber string, existingID *string) (string, error) {
	if existingID != nil && *existingID != "" {
		return *existingID, nil
	}

	cust, err := p.api.Customers.New(&stripe.CustomerParams{
		Params: stripe.Params{Context: ctx},
		Phone:  stripe.String(mobileNumber),
		Metadata: map[string]string{
			"user_id": strconv.FormatInt(userID, 10),
		},
	})
	if err != nil {
		return "", fmt.Errorf("creating stripe customer: %w", err)
	}
	return cust.ID, nil
}

func (p *stripeProvider) CreateCheckoutSession(ctx context.Context, customerID string) (*CheckoutSession, error) {
	sess, err := p.api.CheckoutSessions.New(&stripe.CheckoutSessionParams{
		Params:     stripe.Params{Context: ctx},
		Customer:   stripe.String(customerID),
		Mode:       stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		SuccessURL: stripe.String(p.successURL),
		CancelURL:  stripe.String(p.cancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(p.proPriceID),
				Quantity: stripe.Int64(1),
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("creating checkout session: %w", err)
	}

	return &CheckoutSession{
		ID:        sess.ID,
		URL:       sess.URL,
		Amount:    sess.AmountTotal,
		Mode:      string(sess.Mode),
		ExpiresAt: sess.ExpiresAt,
	}, nil
}

func (p *stripeProvider) VerifyWebhook(payload []byte, header http.Header) (*WebhookEvent, error) {
	event, err := webhook.ConstructEvent(payload, header.Get("Stripe-Signature"), p.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("verifying webhook signature: %w", err)
	}

	evt := &WebhookEvent{Type: string(event.Type)}
	if event.Type == "checkout.session.completed" {
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return nil, fmt.Errorf("decoding checkout session: %w", err)
		}
		evt.SessionID = sess.ID
		if sess.Customer != nil {
			evt.CustomerID = sess.Customer.ID
		}
	}
	return evt, nil
}

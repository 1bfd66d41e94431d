package handler

import (
	"io"
	"log/slog"
	"net/http"

	"chatdeck.app/backend/internal/payment"
	"chatdeck.app/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	provider            payment.Provider
	subscriptionService service.SubscriptionService
}

func NewWebhookHandler(provider payment.Provider, subscriptionService service.SubscriptionService) *WebhookHandler {
	return &WebhookHandler{
		provider:            provider,
		subscriptionService: subscriptionService,
	}
}

// Stripe handles provider webhooks. Unverifiable payloads get 400 so
// Stripe retries; unknown event types are acknowledged and ignored.
func (h *WebhookHandler) Stripe(c *gin.Context) {
	ctx := c.Request.Context()

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read body"})
		return
	}

	event, err := h.provider.VerifyWebhook(payload, c.Request.Header)
	if err != nil {
		slog.WarnContext(ctx, "webhook verification failed", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid signature"})
		return
	}

	if event.Type != "checkout.session.completed" {
		slog.DebugContext(ctx, "ignoring webhook event", "type", event.Type)
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	if err := h.subscriptionService.HandleCheckoutCompleted(ctx, event.SessionID); err != nil {
		slog.ErrorContext(ctx, "checkout completion failed",
			"error", err,
			"session_id", event.SessionID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "processed"})
}

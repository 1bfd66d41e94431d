// Package gateway wraps the upstream chat model behind a small interface.
// The worker calls it synchronously, one task at a time.
package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"chatdeck.app/backend/common/logger"
)

// Client is the raw model transport. Implementations may fail.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Model() string
}

// Gateway turns model failures into a surrogate response so the message
// pipeline always completes. A user sees "Error: ..." text instead of a
// message stuck in pending forever.
type Gateway struct {
	client Client
	logger *slog.Logger
}

func New(client Client, logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gateway{
		client: client,
		logger: logger,
	}
}

// Generate produces a response for the given message text. It never returns
// an error: upstream failures are folded into the response body itself, so
// callers always have something to write back.
func (g *Gateway) Generate(ctx context.Context, text string) string {
	resp, err := g.client.Complete(ctx, text)
	if err != nil {
		g.logger.ErrorContext(ctx, "model call failed, returning surrogate response",
			"error", err,
			"model", g.client.Model(),
			"prompt", logger.Truncate(text, 120))
		return fmt.Sprintf("Error: %v", err)
	}
	return resp
}

package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"chatdeck.app/backend/internal/queue"
	"chatdeck.app/backend/internal/service"
)

// Consumer is the slice of the queue consumer the worker needs.
type Consumer interface {
	Read(ctx context.Context) ([]queue.Message, error)
	Ack(ctx context.Context, msg queue.Message) error
	Requeue(ctx context.Context, msg queue.Message, errMsg string) error
	SendDLQ(ctx context.Context, msg queue.Message, errMsg string) error
}

// Generator produces a response for a message text. It never fails;
// upstream errors come back as surrogate response text.
type Generator interface {
	Generate(ctx context.Context, text string) string
}

// ResponseApplier mirrors service.MessageService.ApplyResponse - defined
// here so the worker only depends on what it calls.
type ResponseApplier interface {
	ApplyResponse(ctx context.Context, messageID int64, response string) error
}

type Config struct {
	MaxAttempts int
}

type Worker struct {
	consumer  Consumer
	generator Generator
	applier   ResponseApplier
	cfg       Config

	stopCh    chan struct{}
	stoppedCh chan struct{}
}

func New(consumer Consumer, generator Generator, applier ResponseApplier, cfg Config) *Worker {
	return &Worker{
		consumer:  consumer,
		generator: generator,
		applier:   applier,
		cfg:       cfg,
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

func (w *Worker) Run(ctx context.Context) error {
	defer close(w.stoppedCh)

	slog.InfoContext(ctx, "worker started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.stopCh:
			slog.InfoContext(ctx, "worker stopping")
			return nil
		default:
			if err := w.processOneBatch(ctx); err != nil {
				slog.ErrorContext(ctx, "batch processing error", "error", err)
				// Brief backoff on error
				time.Sleep(time.Second)
			}
		}
	}
}

func (w *Worker) Stop() {
	close(w.stopCh)
	<-w.stoppedCh
}

func (w *Worker) processOneBatch(ctx context.Context) error {
	messages, err := w.consumer.Read(ctx)
	if err != nil {
		return fmt.Errorf("reading from stream: %w", err)
	}

	for _, msg := range messages {
		if err := w.processMessageSafe(ctx, msg); err != nil {
			slog.ErrorContext(ctx, "task processing failed",
				"error", err,
				"task_id", msg.ID,
				"message_id", msg.MessageID)
			w.handleFailedMessage(ctx, msg, err)
		}
	}

	return nil
}

func (w *Worker) processMessageSafe(ctx context.Context, msg queue.Message) (err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "panic recovered in task processing",
				"panic", r,
				"task_id", msg.ID,
				"message_id", msg.MessageID)
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return w.ProcessMessage(ctx, msg)
}

// Exported so it can be reused by the reclaimer.
func (w *Worker) ProcessMessage(ctx context.Context, msg queue.Message) error {
	slog.InfoContext(ctx, "processing reply task",
		"task_id", msg.ID,
		"message_id", msg.MessageID,
		"attempt", msg.Attempt)

	start := time.Now()
	response := w.generator.Generate(ctx, msg.Text)

	if err := w.applier.ApplyResponse(ctx, msg.MessageID, response); err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyProcessed):
			// Redelivered task for a message that already has its
			// response. The work is done, just ACK.
			slog.InfoContext(ctx, "message already processed, acking",
				"message_id", msg.MessageID)
		case errors.Is(err, service.ErrMessageNotFound):
			// Retrying cannot make the row appear. ACK so the task
			// does not spin through the retry loop.
			slog.WarnContext(ctx, "message no longer exists, acking",
				"message_id", msg.MessageID)
		default:
			// Write-back failed - don't ACK the original processing,
			// let the retry path handle it.
			return fmt.Errorf("applying response: %w", err)
		}
	}

	if err := w.consumer.Ack(ctx, msg); err != nil {
		// Log but don't fail - the message will be reclaimed, and the
		// conditional write makes a repeat apply a no-op.
		slog.WarnContext(ctx, "failed to ACK message",
			"error", err,
			"task_id", msg.ID)
	}

	slog.InfoContext(ctx, "reply task completed",
		"message_id", msg.MessageID,
		"duration_ms", time.Since(start).Milliseconds())
	return nil
}

func (w *Worker) handleFailedMessage(ctx context.Context, msg queue.Message, err error) {
	if msg.Attempt >= w.cfg.MaxAttempts {
		slog.ErrorContext(ctx, "max attempts reached, sending to DLQ",
			"task_id", msg.ID,
			"message_id", msg.MessageID,
			"attempts", msg.Attempt)
		if dlqErr := w.consumer.SendDLQ(ctx, msg, err.Error()); dlqErr != nil {
			slog.ErrorContext(ctx, "failed to send to DLQ", "error", dlqErr)
		}
		return
	}

	slog.WarnContext(ctx, "requeuing failed task",
		"task_id", msg.ID,
		"message_id", msg.MessageID,
		"attempt", msg.Attempt)
	if requeueErr := w.consumer.Requeue(ctx, msg, err.Error()); requeueErr != nil {
		slog.ErrorContext(ctx, "failed to requeue task", "error", requeueErr)
	}
}

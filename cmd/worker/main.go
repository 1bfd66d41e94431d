package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chatdeck.app/backend/common/id"
	"chatdeck.app/backend/common/logger"
	"chatdeck.app/backend/common/otel"
	"chatdeck.app/backend/core/config"
	"chatdeck.app/backend/core/db"
	"chatdeck.app/backend/internal/gateway"
	"chatdeck.app/backend/internal/queue"
	"chatdeck.app/backend/internal/service"
	"chatdeck.app/backend/internal/store"
	"chatdeck.app/backend/internal/worker"
	"github.com/redis/go-redis/v9"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load(config.ServiceTypeWorker)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	slog.InfoContext(ctx, "chatdeck worker starting",
		"env", cfg.Env,
		"consumer_group", cfg.Queue.Group,
		"consumer_name", cfg.Queue.Consumer)

	// Different node ID than the server so concurrent processes never
	// mint the same snowflake.
	if err := id.Init(2); err != nil {
		slog.ErrorContext(ctx, "failed to initialize id generator", "error", err)
		os.Exit(1)
	}

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()
	slog.InfoContext(ctx, "database connected")

	redisOpts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		slog.ErrorContext(ctx, "failed to parse redis url", "error", err)
		os.Exit(1)
	}

	redisClient := redis.NewClient(redisOpts)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.ErrorContext(ctx, "failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	slog.InfoContext(ctx, "redis connected", "stream", cfg.Queue.Stream)

	consumer, err := queue.NewRedisConsumer(redisClient, queue.ConsumerConfig{
		Stream:       cfg.Queue.Stream,
		Group:        cfg.Queue.Group,
		Consumer:     cfg.Queue.Consumer,
		DLQStream:    cfg.Queue.DLQStream,
		BatchSize:    cfg.Queue.BatchSize,
		Block:        cfg.Queue.Block,
		MaxAttempts:  cfg.Queue.MaxAttempts,
		RequeueDelay: cfg.Queue.RequeueDelay,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to create consumer", "error", err)
		os.Exit(1)
	}

	stores := store.NewStores(database.Queries())
	messageService := service.NewMessageService(
		stores.Chatrooms(),
		stores.Messages(),
		service.NewTxRunner(database),
		nil, // workers never enqueue, they only apply responses
		slog.Default(),
	)

	llm := gateway.New(gateway.NewOpenAIClient(cfg.LLM), slog.Default())

	w := worker.New(consumer, llm, messageService, worker.Config{
		MaxAttempts: cfg.Queue.MaxAttempts,
	})

	reclaimer := worker.NewReclaimer(redisClient, worker.ReclaimerConfig{
		Stream:    cfg.Queue.Stream,
		Group:     cfg.Queue.Group,
		Consumer:  cfg.Queue.Consumer + "-reclaimer",
		MinIdle:   cfg.Queue.ReclaimIdle,
		Interval:  time.Minute,
		BatchSize: 10,
	}, consumer, w.ProcessMessage)

	errCh := make(chan error, 2)
	go func() {
		errCh <- w.Run(ctx)
	}()
	go func() {
		reclaimer.Run(ctx)
		errCh <- nil
	}()

	slog.InfoContext(ctx, "worker initialized and running")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down worker...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	// Stop reclaimer first (quick), then the worker which may be mid-task.
	reclaimer.Stop()
	w.Stop()

	select {
	case <-shutdownCtx.Done():
		slog.WarnContext(ctx, "shutdown timeout exceeded")
	case err := <-errCh:
		if err != nil {
			slog.ErrorContext(ctx, "worker error during shutdown", "error", err)
		}
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(ctx, "worker shutdown complete")
}

const banner = `
██╗    ██╗ ██████╗ ██████╗ ██╗  ██╗███████╗██████╗
██║    ██║██╔═══██╗██╔══██╗██║ ██╔╝██╔════╝██╔══██╗
██║ █╗ ██║██║   ██║██████╔╝█████╔╝ █████╗  ██████╔╝
██║███╗██║██║   ██║██╔══██╗██╔═██╗ ██╔══╝  ██╔══██╗
╚███╔███╔╝╚██████╔╝██║  ██║██║  ██╗███████╗██║  ██║
 ╚══╝╚══╝  ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝
`

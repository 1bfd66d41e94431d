package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chatdeck.app/backend/common/id"
	"chatdeck.app/backend/common/logger"
	"chatdeck.app/backend/common/otel"
	"chatdeck.app/backend/core/config"
	"chatdeck.app/backend/core/db"
	"chatdeck.app/backend/internal/http/middleware"
	httprouter "chatdeck.app/backend/internal/http/router"
	"chatdeck.app/backend/internal/payment"
	"chatdeck.app/backend/internal/queue"
	"chatdeck.app/backend/internal/service"
	"chatdeck.app/backend/internal/store"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load(config.ServiceTypeServer)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		// Can't use slog yet — OTel failed before logger setup
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "chatdeck starting", "env", cfg.Env, "service", cfg.OTel.ServiceName)
	if err := id.Init(1); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
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
	slog.InfoContext(ctx, "redis connected", "stream", cfg.Queue.Stream)

	replyProducer := queue.NewRedisProducer(redisClient, cfg.Queue.Stream, nil)
	defer replyProducer.Close()

	stores := store.NewStores(database.Queries())
	provider := payment.NewStripeProvider(cfg.Stripe)

	services := service.NewServices(
		stores,
		service.NewTxRunner(database),
		replyProducer,
		redisClient,
		provider,
		cfg.Auth,
		slog.Default(),
	)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, services, stores, redisClient, provider)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

func setupRouter(cfg config.Config, services *service.Services, stores *store.Stores, redisClient *redis.Client, provider payment.Provider) *gin.Engine {
	router := gin.New()

	// Order matters: OTel creates span → Recovery catches panics → Logger logs with trace context
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.BlockSensitivePaths())

	corsCfg := cors.DefaultConfig()
	if cfg.FrontendURL != "" {
		corsCfg.AllowOrigins = []string{cfg.FrontendURL}
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	router.Use(cors.New(corsCfg))

	httprouter.SetupRoutes(router, services, stores, redisClient, provider, httprouter.RouterConfig{
		JWTSecret:         cfg.Auth.JWTSecret,
		CacheTTL:          cfg.CacheTTL,
		MessagesPerMinute: cfg.RateLimit.MessagesPerMinute,
		RateLimitBurst:    cfg.RateLimit.Burst,
	})

	return router
}

const banner = `
 ██████╗██╗  ██╗ █████╗ ████████╗██████╗ ███████╗ ██████╗██╗  ██╗
██╔════╝██║  ██║██╔══██╗╚══██╔══╝██╔══██╗██╔════╝██╔════╝██║ ██╔╝
██║     ███████║███████║   ██║   ██║  ██║█████╗  ██║     █████╔╝
██║     ██╔══██║██╔══██║   ██║   ██║  ██║██╔══╝  ██║     ██╔═██╗
╚██████╗██║  ██║██║  ██║   ██║   ██████╔╝███████╗╚██████╗██║  ██╗
 ╚═════╝╚═╝  ╚═╝╚═╝  ╚═╝   ╚═╝   ╚═════╝ ╚══════╝ ╚═════╝╚═╝  ╚═╝
`

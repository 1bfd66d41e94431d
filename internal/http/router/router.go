package router

import (
	"time"

	"chatdeck.app/backend/internal/http/handler"
	"chatdeck.app/backend/internal/http/middleware"
	"chatdeck.app/backend/internal/payment"
	"chatdeck.app/backend/internal/service"
	"chatdeck.app/backend/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type RouterConfig struct {
	JWTSecret         string
	CacheTTL          time.Duration
	MessagesPerMinute int
	RateLimitBurst    int
}

func SetupRoutes(router *gin.Engine, services *service.Services, stores *store.Stores, redisClient *redis.Client, provider payment.Provider, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authHandler := handler.NewAuthHandler(services.Auth())
	authorized := middleware.Auth(cfg.JWTSecret, stores.Users())
	AuthRouter(router.Group("/auth"), authHandler, authorized)

	userHandler := handler.NewUserHandler(services.Users())
	UserRouter(router.Group("/user"), userHandler, authorized)

	chatroomHandler := handler.NewChatroomHandler(services.Chatrooms(), services.Messages())
	limiter := middleware.NewRateLimiter(cfg.MessagesPerMinute, cfg.RateLimitBurst)
	ChatroomRouter(router.Group("/chatroom"), chatroomHandler, authorized, limiter, redisClient, cfg.CacheTTL)

	subscriptionHandler := handler.NewSubscriptionHandler(services.Subscriptions())
	SubscriptionRouter(router.Group("/subscribe"), subscriptionHandler, authorized)

	webhookHandler := handler.NewWebhookHandler(provider, services.Subscriptions())
	WebhookRouter(router.Group("/webhook"), webhookHandler)
}

package router

import (
	"time"

	"chatdeck.app/backend/internal/http/handler"
	"chatdeck.app/backend/internal/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func ChatroomRouter(rg *gin.RouterGroup, h *handler.ChatroomHandler, authorized gin.HandlerFunc, limiter *middleware.RateLimiter, redisClient *redis.Client, cacheTTL time.Duration) {
	rg.Use(authorized)

	rg.POST("", middleware.InvalidateCache(redisClient, rg.BasePath()), h.Create)
	rg.GET("", middleware.ResponseCache(redisClient, cacheTTL), h.List)
	rg.GET("/:id", h.Get)
	rg.GET("/:id/messages", h.GetWithMessages)
	rg.POST("/:id/message", limiter.PerUser(), h.SendMessage)
	rg.GET("/:id/message/:messageID", h.GetMessage)
}

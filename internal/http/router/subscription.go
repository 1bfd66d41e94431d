package router

import (
	"chatdeck.app/backend/internal/http/handler"
	"github.com/gin-gonic/gin"
)

func SubscriptionRouter(rg *gin.RouterGroup, h *handler.SubscriptionHandler, authorized gin.HandlerFunc) {
	rg.POST("/pro", authorized, h.SubscribePro)
	rg.GET("/status", authorized, h.Status)
	rg.GET("/success", h.Success)
	rg.GET("/cancel", h.Cancel)
}

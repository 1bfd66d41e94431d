package router

import (
	"chatdeck.app/backend/internal/http/handler"
	"github.com/gin-gonic/gin"
)

func WebhookRouter(rg *gin.RouterGroup, h *handler.WebhookHandler) {
	rg.POST("/stripe", h.Stripe)
}

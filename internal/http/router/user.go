package router

import (
	"chatdeck.app/backend/internal/http/handler"
	"github.com/gin-gonic/gin"
)

func UserRouter(rg *gin.RouterGroup, h *handler.UserHandler, authorized gin.HandlerFunc) {
	rg.GET("/me", authorized, h.Me)
}

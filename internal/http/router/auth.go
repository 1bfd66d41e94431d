package router

import (
	"chatdeck.app/backend/internal/http/handler"
	"github.com/gin-gonic/gin"
)

func AuthRouter(rg *gin.RouterGroup, h *handler.AuthHandler, authorized gin.HandlerFunc) {
	rg.POST("/signup", h.Signup)
	rg.POST("/send-otp", h.SendOTP)
	rg.POST("/verify-otp", h.VerifyOTP)
	rg.POST("/forgot-password", h.ForgotPassword)
	rg.POST("/reset-password", h.ResetPassword)
	rg.POST("/change-password", authorized, h.ChangePassword)
}

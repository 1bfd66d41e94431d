package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"chatdeck.app/backend/internal/http/dto"
	"chatdeck.app/backend/internal/http/middleware"
	"chatdeck.app/backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authService.Signup(ctx, service.SignupParams{
		MobileNumber: req.MobileNumber,
		Password:     req.Password,
		Email:        req.Email,
		FullName:     req.FullName,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			slog.InfoContext(ctx, "duplicate signup attempted")
			c.JSON(http.StatusConflict, gin.H{"error": "user with this mobile number already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign up"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *AuthHandler) SendOTP(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	otp, err := h.authService.SendOTP(ctx, req.MobileNumber)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send otp"})
		return
	}

	c.JSON(http.StatusOK, dto.SendOTPResponse{OTP: otp})
}

func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tok, user, err := h.authService.VerifyOTP(ctx, req.MobileNumber, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidOTP):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or expired otp"})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to verify otp"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.VerifyOTPResponse{
		Token: tok,
		User:  dto.ToUserResponse(user),
	})
}

// ForgotPassword reissues an OTP; the reset itself happens in ResetPassword.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	h.SendOTP(c)
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authService.ResetPassword(ctx, req.MobileNumber, req.OTP, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidOTP):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or expired otp"})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reset password"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "password updated"})
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	ctx := c.Request.Context()

	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authService.ChangePassword(ctx, user.ID, req.OldPassword, req.NewPassword); err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "old password is incorrect"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to change password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "password updated"})
}

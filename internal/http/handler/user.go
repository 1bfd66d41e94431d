package handler

import (
	"errors"
	"net/http"

	"chatdeck.app/backend/internal/http/dto"
	"chatdeck.app/backend/internal/http/middleware"
	"chatdeck.app/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	// Re-read through the service so the profile reflects changes made
	// elsewhere in the same session, e.g. a just-completed confirmation.
	fresh, err := h.userService.GetByID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch user"})
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(fresh))
}

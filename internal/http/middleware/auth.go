package middleware

import (
	"net/http"
	"strings"

	"chatdeck.app/backend/common/logger"
	"chatdeck.app/backend/common/token"
	"chatdeck.app/backend/internal/model"
	"chatdeck.app/backend/internal/store"
	"github.com/gin-gonic/gin"
)

const userContextKey = "currentUser"

// Auth validates the bearer token, loads the user, and stashes it in the
// request context. Disabled users are rejected even with a valid token.
func Auth(secret string, users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, err := token.Parse(secret, tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		user, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		if user.Disabled {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "account disabled"})
			return
		}

		c.Set(userContextKey, user)

		ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{
			UserID: &user.ID,
		})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// CurrentUser returns the authenticated user set by Auth. Handlers behind
// the auth middleware can rely on it being present.
func CurrentUser(c *gin.Context) *model.User {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	user, _ := v.(*model.User)
	return user
}

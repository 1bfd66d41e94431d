package middleware

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
)

// Scanners constantly probe for dotfiles and VCS metadata. Refuse them
// before they reach routing.
var sensitivePathPattern = regexp.MustCompile(`(^|/)\.(env|git|htaccess|ssh)`)

func BlockSensitivePaths() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sensitivePathPattern.MatchString(c.Request.URL.Path) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

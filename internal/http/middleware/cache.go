package middleware

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type cacheWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *cacheWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// ResponseCache serves GET responses from Redis for the configured TTL.
// Keys are scoped per user so one user's listing never leaks to another.
// Cache failures fall through to the handler; a dead Redis degrades to
// uncached responses, not errors.
func ResponseCache(client *redis.Client, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		user := CurrentUser(c)
		if user == nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := fmt.Sprintf("cache:%d:%s", user.ID, c.Request.URL.Path)

		cached, err := client.Get(ctx, key).Result()
		if err == nil {
			c.Header("X-Cache-Status", "HIT")
			c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
			c.Abort()
			return
		}
		if !errors.Is(err, redis.Nil) {
			slog.WarnContext(ctx, "cache lookup failed", "error", err, "key", key)
		}

		c.Header("X-Cache-Status", "MISS")
		writer := &cacheWriter{ResponseWriter: c.Writer}
		c.Writer = writer

		c.Next()

		if c.Writer.Status() == http.StatusOK && writer.body.Len() > 0 {
			if err := client.Set(ctx, key, writer.body.String(), ttl).Err(); err != nil {
				slog.WarnContext(ctx, "cache store failed", "error", err, "key", key)
			}
		}
	}
}

// InvalidateCache drops a user's cached response for a path after a
// mutating handler runs, so creations show up on the next list.
func InvalidateCache(client *redis.Client, path string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		user := CurrentUser(c)
		if user == nil || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		key := fmt.Sprintf("cache:%d:%s", user.ID, path)
		if err := client.Del(c.Request.Context(), key).Err(); err != nil {
			slog.WarnContext(c.Request.Context(), "cache invalidation failed", "error", err, "key", key)
		}
	}
}

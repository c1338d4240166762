package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"helpcenter/internal/shared/constants"
	"helpcenter/internal/shared/logger"
)

const (
	requestIDHeader = constants.HeaderXRequestID
	requestIDKey    = constants.ContextKeyRequestID
	maxRequestIDLen = 64
)

// RequestID keeps a client supplied X-Request-ID (up to 64 bytes) or assigns
// a new one, and echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// Logger writes one line per request. Failures log at error, rejections at
// warn and everything else at debug.
func Logger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		args := []any{
			"request_id", c.GetString(requestIDKey),
			"method", c.Request.Method,
			"route", c.FullPath(),
			"path", c.Request.URL.Path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if role := c.GetString(constants.ContextKeyUserRole); role != "" {
			args = append(args, "role", role)
		}
		if userID, ok := c.Get(constants.ContextKeyUserID); ok {
			args = append(args, "user_id", userID)
		}
		if len(c.Errors) > 0 {
			args = append(args, "errors", c.Errors.String())
		}

		switch {
		case status >= 500:
			log.Errorw("request failed", args...)
		case status >= 400:
			log.Warnw("request rejected", args...)
		default:
			log.Debugw("request completed", args...)
		}
	}
}

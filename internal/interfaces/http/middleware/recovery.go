package middleware

import (
	"errors"
	"runtime/debug"
	"syscall"

	"github.com/gin-gonic/gin"

	apperrors "helpcenter/internal/shared/errors"
	"helpcenter/internal/shared/logger"
	"helpcenter/internal/shared/utils"
)

// Recovery turns a handler panic into a 500 internal_error envelope. Panics
// caused by the client hanging up are logged and the response is dropped.
func Recovery(log logger.Interface) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		fields := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"request_id", c.GetString(requestIDKey),
			"error", recovered,
		}

		if err, ok := recovered.(error); ok && isClientGone(err) {
			log.Warnw("client connection lost", fields...)
			c.Abort()
			return
		}

		log.Errorw("panic recovered", append(fields, "stack", string(debug.Stack()))...)
		utils.ErrorResponseWithError(c, apperrors.NewInternalError("internal server error"))
		c.Abort()
	})
}

func isClientGone(err error) bool {
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, syscall.ECONNRESET)
}

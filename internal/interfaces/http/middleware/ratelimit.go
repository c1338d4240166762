package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"helpcenter/internal/infrastructure/ratelimit"
	"helpcenter/internal/shared/constants"
	"helpcenter/internal/shared/errors"
	"helpcenter/internal/shared/logger"
	"helpcenter/internal/shared/utils"
)

// RateLimiter limits requests per client IP. Redis keeps the counters when
// configured so that every instance shares them.
type RateLimiter struct {
	limiter ratelimit.RateLimiter
	policy  ratelimit.Policy
	scope   string
	logger  logger.Interface
}

func NewRateLimiter(limiter ratelimit.RateLimiter, policy ratelimit.Policy, scope string, logger logger.Interface) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		policy:  policy,
		scope:   scope,
		logger:  logger,
	}
}

// Limit enforces the policy on every request.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return rl.handler(false)
}

// LimitGuests enforces the policy only for callers without a valid token.
func (rl *RateLimiter) LimitGuests() gin.HandlerFunc {
	return rl.handler(true)
}

func (rl *RateLimiter) handler(guestsOnly bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.policy.Limit <= 0 {
			c.Next()
			return
		}
		if guestsOnly && utils.GetActor(c).Role != constants.RoleGuest {
			c.Next()
			return
		}

		key := rl.scope + ":" + c.ClientIP()
		allowed, err := rl.limiter.Allow(c.Request.Context(), key, rl.policy)
		if err != nil {
			// fail open
			rl.logger.Warnw("rate limiter unavailable", "error", err, "scope", rl.scope)
			c.Next()
			return
		}

		if !allowed {
			rl.logger.Warnw("rate limit exceeded", "scope", rl.scope, "client_ip", c.ClientIP())
			c.Header("Retry-After", strconv.Itoa(int(rl.policy.Window.Seconds())))
			utils.ErrorResponseWithError(c, errors.NewTooManyRequestsError("rate limit exceeded, please try again later"))
			c.Abort()
			return
		}

		c.Next()
	}
}

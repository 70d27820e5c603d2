package middleware

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"

	"estateconnect/internal/infrastructure/ratelimit"
	"estateconnect/pkg/errors"
	"estateconnect/pkg/response"
)

type RateLimitMiddleware struct {
	limiter *ratelimit.RateLimiter
}

func NewRateLimitMiddleware(limiter *ratelimit.RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
	}
}

// Limit throttles the named action per caller. Authenticated callers
// are keyed by uid, anonymous ones by source address.
func (m *RateLimitMiddleware) Limit(action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			callerID, ok := c.Get("uid").(string)
			if !ok || callerID == "" {
				callerID = c.RealIP()
			}

			allowed, wait := m.limiter.Allow(callerID, action)
			if !allowed {
				return response.Error(c, errors.TooManyRequests(
					fmt.Sprintf("Too many requests, retry in %s", wait.Round(time.Second)),
				))
			}

			return next(c)
		}
	}
}

package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/booksmart-api/internal/httperr"
)

type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// LoginRateLimit caps attempts per client IP. Limiter failures let the
// request through.
func LoginRateLimit(limiter Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := limiter.Allow(c.Request.Context(), "login:"+c.ClientIP())
		if err != nil {
			log.Warn().Err(err).Msg("rate limiter unavailable")
			c.Next()
			return
		}
		if !ok {
			httperr.Write(c, http.StatusTooManyRequests, "too_many_requests", "Too many login attempts. Try again in a minute.")
			return
		}
		c.Next()
	}
}

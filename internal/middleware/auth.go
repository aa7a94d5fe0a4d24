package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"catalog-api/pkg/response"
)

const bearerPrefix = "Bearer "

// Auth requires the exact header "Authorization: Bearer <token>".
// The wrapped handler never runs on mismatch.
func (m Middleware) Auth() gin.HandlerFunc {
	expected := []byte(bearerPrefix + m.authToken)

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if m.authToken == "" || subtle.ConstantTimeCompare([]byte(header), expected) != 1 {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: rejected %s %s from %s",
				c.Request.Method, c.Request.URL.Path, c.ClientIP())
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

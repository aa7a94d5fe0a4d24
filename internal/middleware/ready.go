package middleware

import (
	"github.com/gin-gonic/gin"

	"catalog-api/pkg/response"
)

// Ready answers 503 until the store is connected.
func (m Middleware) Ready() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.readiness != nil && !m.readiness.Ready() {
			response.ServiceUnavailable(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

package http

import (
	"catalog-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// rg is already rooted at the resource path. Mutating routes are rate limited
// and, when the resource requires it, protected by the bearer token.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	read := []gin.HandlerFunc{mw.Ready()}

	write := []gin.HandlerFunc{mw.RateLimit()}
	if h.resource.RequireAuth {
		write = append(write, mw.Auth())
	}
	write = append(write, mw.Ready())

	rg.GET("", chain(read, h.List)...)
	rg.GET("/:id", chain(read, h.Detail)...)
	rg.POST("", chain(write, h.Create)...)
	rg.PUT("/:id", chain(write, h.Replace)...)
	rg.PATCH("/:id", chain(write, h.Patch)...)
	rg.DELETE("/:id", chain(write, h.Delete)...)
}

func chain(mws []gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	out := make([]gin.HandlerFunc, 0, len(mws)+1)
	out = append(out, mws...)
	return append(out, h)
}

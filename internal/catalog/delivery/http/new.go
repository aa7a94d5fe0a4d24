package http

import (
	"catalog-api/internal/catalog"
	"catalog-api/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler is the public interface for the catalog HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Detail(c *gin.Context)
	Create(c *gin.Context)
	Replace(c *gin.Context)
	Patch(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l        log.Logger
	uc       catalog.UseCase
	resource catalog.Resource
}

// New creates a new HTTP handler for one catalog resource.
func New(l log.Logger, uc catalog.UseCase, resource catalog.Resource) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		resource: resource,
	}
}

package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "catalog-api/pkg/errors"
)

// JSON sends data with the given status.
func JSON(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends 201 JSON with data.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// NoContent sends 204 with an empty body.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Message sends {"message": msg} with the given status.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, MessageResp{Message: msg})
}

// Error renders err. *pkgErrors.HTTPError keeps its status and body,
// anything else becomes the generic 500 body.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.Status, httpErr.Body())
		return
	}
	InternalError(c)
}

// Abort renders err like Error and stops the handler chain.
func Abort(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}

// InternalError sends 500 without leaking the cause.
func InternalError(c *gin.Context) {
	Error(c, pkgErrors.ErrInternalServerError)
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	Error(c, pkgErrors.ErrUnauthorized)
}

// ServiceUnavailable sends 503 response.
func ServiceUnavailable(c *gin.Context) {
	Error(c, pkgErrors.ErrServiceUnavailable)
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	Error(c, pkgErrors.ErrTooManyRequests)
}

// RouteNotFound sends the catch-all 404 response.
func RouteNotFound(c *gin.Context) {
	Error(c, pkgErrors.ErrRouteNotFound)
}

package http

import (
	"github.com/gin-gonic/gin"

	"catalog-api/pkg/response"
)

// List godoc
// @Summary     List documents
// @Description Returns every document of the collection, optionally filtered, projected and sorted.
// @Tags        Catalog
// @Produce     json
// @Param       resource path  string false "Collection path segment (items, products)"
// @Param       category query string false "Exact category match"
// @Param       minPrice query number false "Lower bound on price (inclusive)"
// @Param       sort     query string false "Only 'price' is supported (ascending)"
// @Param       fields   query string false "Comma separated fields to return, identifier excluded"
// @Success     200 {object} listResp
// @Failure     400 {object} response.MessageResp "Invalid minPrice (strict mode)"
// @Failure     500 {object} response.MessageResp "Server error"
// @Failure     503 {object} response.MessageResp "Store not connected yet"
// @Router      /api/{resource} [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req := h.processListReq(c)

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get a document
// @Description Returns a single document by its identifier.
// @Tags        Catalog
// @Produce     json
// @Param       resource path string true "Collection path segment"
// @Param       id       path string true "Document ID (24 hex characters)"
// @Success     200 {object} map[string]interface{}
// @Failure     400 {object} response.MessageResp "Invalid ID"
// @Failure     404 {object} response.MessageResp "Not found"
// @Router      /api/{resource}/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, output.Document)
}

// Create godoc
// @Summary     Create a document
// @Description Inserts the submitted fields. name is required.
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       resource path string                 true "Collection path segment"
// @Param       body     body map[string]interface{} true "Document fields"
// @Success     201 {object} createResp
// @Failure     400 {object} response.MessageResp "Name is required"
// @Failure     401 {object} response.MessageResp "Unauthorized"
// @Failure     500 {object} response.MessageResp "Server error"
// @Router      /api/{resource} [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newCreateResp(output))
}

// Replace godoc
// @Summary     Update a document
// @Description Sets every submitted field. name is required. Fields not submitted are kept.
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       resource path string                 true "Collection path segment"
// @Param       id       path string                 true "Document ID"
// @Param       body     body map[string]interface{} true "Fields to set"
// @Success     200 {object} response.MessageResp
// @Failure     400 {object} response.MessageResp "Name is required / Invalid ID"
// @Failure     401 {object} response.MessageResp "Unauthorized"
// @Failure     404 {object} response.MessageResp "Not found"
// @Router      /api/{resource}/{id} [PUT]
func (h *handler) Replace(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	if err := h.uc.Replace(ctx, req.toInput()); err != nil {
		h.l.Warnf(ctx, "uc.Replace: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, response.MessageResp{Message: h.resource.Label + " updated"})
}

// Patch godoc
// @Summary     Partially update a document
// @Description Sets the submitted fields. No field is required.
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       resource path string                 true "Collection path segment"
// @Param       id       path string                 true "Document ID"
// @Param       body     body map[string]interface{} true "Fields to set"
// @Success     200 {object} response.MessageResp
// @Failure     400 {object} response.MessageResp "Invalid ID"
// @Failure     401 {object} response.MessageResp "Unauthorized"
// @Failure     404 {object} response.MessageResp "Not found"
// @Router      /api/{resource}/{id} [PATCH]
func (h *handler) Patch(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	if err := h.uc.Patch(ctx, req.toInput()); err != nil {
		h.l.Warnf(ctx, "uc.Patch: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, response.MessageResp{Message: h.resource.Label + " updated partially"})
}

// Delete godoc
// @Summary     Delete a document
// @Description Permanently removes a document by ID.
// @Tags        Catalog
// @Security    BearerAuth
// @Param       resource path string true "Collection path segment"
// @Param       id       path string true "Document ID"
// @Success     204 "No Content"
// @Failure     400 {object} response.MessageResp "Invalid ID"
// @Failure     401 {object} response.MessageResp "Unauthorized"
// @Failure     404 {object} response.MessageResp "Not found"
// @Router      /api/{resource}/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.NoContent(c)
}

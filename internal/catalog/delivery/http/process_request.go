package http

import (
	"bytes"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"catalog-api/internal/catalog"
)

// processListReq binds the list query parameters. Binding plain strings cannot fail.
func (h *handler) processListReq(c *gin.Context) listReq {
	var req listReq
	_ = c.ShouldBindQuery(&req)
	return req
}

// processCreateReq reads the create body as a free-form JSON object.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	fields, err := h.bindDocument(c)
	if err != nil {
		return createReq{}, err
	}
	return createReq{Fields: fields}, nil
}

// processUpdateReq reads the update body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	fields, err := h.bindDocument(c)
	if err != nil {
		return updateReq{}, err
	}
	return updateReq{ID: c.Param("id"), Fields: fields}, nil
}

// bindDocument decodes the body into a Document. An empty body is an empty object.
func (h *handler) bindDocument(c *gin.Context) (catalog.Document, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, catalog.ErrInvalidBody
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return catalog.Document{}, nil
	}

	var doc catalog.Document
	if err := binding.JSON.BindBody(raw, &doc); err != nil {
		h.l.Debugf(c.Request.Context(), "bindDocument: %v", err)
		return nil, catalog.ErrInvalidBody
	}
	if doc == nil {
		doc = catalog.Document{}
	}
	return doc, nil
}

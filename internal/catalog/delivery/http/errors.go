package http

import (
	"errors"
	"net/http"

	"catalog-api/internal/catalog"
	pkgErrors "catalog-api/pkg/errors"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
// Anything unrecognised is a store failure and is never shown to the client.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, catalog.ErrNameRequired):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Name is required")
	case errors.Is(err, catalog.ErrNoFields):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "No fields to update")
	case errors.Is(err, catalog.ErrInvalidID):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid ID")
	case errors.Is(err, catalog.ErrInvalidMinPrice):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid minPrice")
	case errors.Is(err, catalog.ErrInvalidBody):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid JSON body")
	case errors.Is(err, catalog.ErrInvalidField):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid field name")
	case errors.Is(err, catalog.ErrNotFound):
		return pkgErrors.NewHTTPErrorWithKey(http.StatusNotFound, h.resource.ErrorKey, h.resource.Label+" not found")
	case errors.Is(err, catalog.ErrStoreNotReady):
		return pkgErrors.ErrServiceUnavailable
	default:
		return pkgErrors.ErrInternalServerError
	}
}

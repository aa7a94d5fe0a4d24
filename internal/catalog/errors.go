package catalog

import "errors"

var (
	ErrNameRequired    = errors.New("name is required")
	ErrNoFields        = errors.New("no fields to update")
	ErrInvalidID       = errors.New("invalid id")
	ErrInvalidMinPrice = errors.New("invalid minPrice")
	ErrInvalidBody     = errors.New("invalid JSON body")
	ErrInvalidField    = errors.New("invalid field name")
	ErrNotFound        = errors.New("document not found")
	ErrStoreNotReady   = errors.New("store not ready")
)

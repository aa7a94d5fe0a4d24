package repository

import (
	"context"

	"catalog-api/internal/catalog"
)

// Repository is the composed interface for the catalog data store.
type Repository interface {
	DocumentRepository
}

// DocumentRepository defines all data access methods for one collection.
// Implementations return ErrInvalidID for identifiers they cannot parse,
// which callers must keep distinct from "valid but absent".
type DocumentRepository interface {
	ListDocuments(ctx context.Context, opt ListOptions) ([]catalog.Document, error)
	GetOneDocument(ctx context.Context, opt GetOneOptions) (catalog.Document, error)
	CreateDocument(ctx context.Context, opt CreateOptions) (any, error)
	UpdateDocument(ctx context.Context, opt UpdateOptions) (int64, error)
	DeleteDocument(ctx context.Context, opt DeleteOptions) (int64, error)
}

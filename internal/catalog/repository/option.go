package repository

import "catalog-api/internal/catalog"

// ListOptions holds filter, projection and sort parameters for listing documents.
// Zero values mean "no constraint".
type ListOptions struct {
	Category    string
	MinPrice    *float64
	SortByPrice bool
	Fields      []string

	// CategoryProjection narrows the result to name and category whenever
	// Category is set and Fields is empty.
	CategoryProjection bool
}

// GetOneOptions holds the identifier of the document to fetch.
type GetOneOptions struct {
	ID string
}

// CreateOptions holds the fields of a new document. Any identifier is ignored.
type CreateOptions struct {
	Fields catalog.Document
}

// UpdateOptions holds the fields to set on an existing document.
// Fields absent from Fields are left untouched.
type UpdateOptions struct {
	ID     string
	Fields catalog.Document
}

// DeleteOptions holds the identifier of the document to remove.
type DeleteOptions struct {
	ID string
}

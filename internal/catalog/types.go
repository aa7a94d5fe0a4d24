package catalog

// --- Domain Model ---

// Document is a loosely typed record of a collection. The store-assigned
// identifier lives under IDField and never changes after insert.
type Document map[string]any

// IDField is the key of the store-assigned identifier.
const IDField = "_id"

// Well-known fields the list query understands.
const (
	FieldName     = "name"
	FieldPrice    = "price"
	FieldCategory = "category"
)

// SortPrice is the only accepted value of the sort query parameter.
const SortPrice = "price"

// Resource is the configuration of one exposed collection. Resources share
// all code paths and differ only by these values.
type Resource struct {
	Name               string
	Collection         string
	Path               string
	Label              string
	RequireAuth        bool
	CategoryProjection bool
	ErrorKey           string
}

// --- UseCase Inputs ---

type ListInput struct {
	Category string
	MinPrice string
	Sort     string
	Fields   string
}

type CreateInput struct {
	Fields Document
}

type UpdateInput struct {
	ID     string
	Fields Document
}

// --- UseCase Outputs ---

type ListOutput struct {
	Documents []Document
}

type CreateOutput struct {
	ID any
}

type DetailOutput struct {
	Document Document
}

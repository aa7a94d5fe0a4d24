package mongodb

import (
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"catalog-api/internal/catalog/repository"
	"catalog-api/pkg/log"
)

// CollectionProvider hands out collection handles once the store is connected.
// pkg/mongo.Client satisfies it.
type CollectionProvider interface {
	Collection(name string) (*mongo.Collection, error)
}

type implRepository struct {
	db         CollectionProvider
	collection string
	l          log.Logger
}

// New creates a new MongoDB-backed Repository for one collection.
func New(db CollectionProvider, collection string, l log.Logger) repository.Repository {
	if db == nil {
		panic("catalog/repository/mongodb: db is required")
	}
	if collection == "" {
		panic("catalog/repository/mongodb: collection is required")
	}
	return &implRepository{db: db, collection: collection, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("catalog/repository/mongodb.%s[%s]", method, r.collection)
}

func (r *implRepository) coll() (*mongo.Collection, error) {
	c, err := r.db.Collection(r.collection)
	if err != nil {
		return nil, repository.ErrNotReady
	}
	return c, nil
}

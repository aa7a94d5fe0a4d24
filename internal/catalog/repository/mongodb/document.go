package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"catalog-api/internal/catalog"
	repo "catalog-api/internal/catalog/repository"
)

// ListDocuments returns every document matching opt, shaped by its projection and sort.
func (r *implRepository) ListDocuments(ctx context.Context, opt repo.ListOptions) ([]catalog.Document, error) {
	coll, err := r.coll()
	if err != nil {
		return nil, err
	}

	findOpts := options.Find()
	if proj := r.buildProjection(opt); proj != nil {
		findOpts.SetProjection(proj)
	}
	if sort := r.buildSort(opt); sort != nil {
		findOpts.SetSort(sort)
	}

	cur, err := coll.Find(ctx, r.buildFilter(opt), findOpts)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListDocuments"), err)
		return nil, repo.ErrFailedToList
	}

	var raw []bson.M
	if err := cur.All(ctx, &raw); err != nil {
		r.l.Errorf(ctx, "%s decode: %v", r.dsn("ListDocuments"), err)
		return nil, repo.ErrFailedToList
	}

	docs := make([]catalog.Document, len(raw))
	for i, d := range raw {
		docs[i] = catalog.Document(d)
	}
	return docs, nil
}

// GetOneDocument retrieves a single document by identifier.
// Returns nil (and no error) when not found.
func (r *implRepository) GetOneDocument(ctx context.Context, opt repo.GetOneOptions) (catalog.Document, error) {
	id, err := parseID(opt.ID)
	if err != nil {
		return nil, err
	}
	coll, err := r.coll()
	if err != nil {
		return nil, err
	}

	var doc bson.M
	err = coll.FindOne(ctx, bson.M{catalog.IDField: id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneDocument"), err)
		return nil, repo.ErrFailedToGet
	}
	return catalog.Document(doc), nil
}

// CreateDocument inserts opt.Fields and returns the identifier assigned by the store.
func (r *implRepository) CreateDocument(ctx context.Context, opt repo.CreateOptions) (any, error) {
	coll, err := r.coll()
	if err != nil {
		return nil, err
	}

	res, err := coll.InsertOne(ctx, r.buildSetDoc(opt.Fields))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateDocument"), err)
		return nil, repo.ErrFailedToInsert
	}
	return res.InsertedID, nil
}

// UpdateDocument sets opt.Fields on the document and returns the matched count.
func (r *implRepository) UpdateDocument(ctx context.Context, opt repo.UpdateOptions) (int64, error) {
	id, err := parseID(opt.ID)
	if err != nil {
		return 0, err
	}
	coll, err := r.coll()
	if err != nil {
		return 0, err
	}

	res, err := coll.UpdateOne(ctx,
		bson.M{catalog.IDField: id},
		bson.M{"$set": r.buildSetDoc(opt.Fields)},
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateDocument"), err)
		return 0, repo.ErrFailedToUpdate
	}
	return res.MatchedCount, nil
}

// DeleteDocument removes the document and returns the deleted count.
func (r *implRepository) DeleteDocument(ctx context.Context, opt repo.DeleteOptions) (int64, error) {
	id, err := parseID(opt.ID)
	if err != nil {
		return 0, err
	}
	coll, err := r.coll()
	if err != nil {
		return 0, err
	}

	res, err := coll.DeleteOne(ctx, bson.M{catalog.IDField: id})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteDocument"), err)
		return 0, repo.ErrFailedToDelete
	}
	return res.DeletedCount, nil
}

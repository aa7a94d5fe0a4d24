package mongodb

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"catalog-api/internal/catalog"
	repo "catalog-api/internal/catalog/repository"
)

// parseID converts the 24-hex string form into an ObjectID.
func parseID(s string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, repo.ErrInvalidID
	}
	return id, nil
}

// buildFilter builds the find filter for ListDocuments.
// Unset options add no condition.
func (r *implRepository) buildFilter(opt repo.ListOptions) bson.M {
	filter := bson.M{}
	if opt.Category != "" {
		filter[catalog.FieldCategory] = opt.Category
	}
	if opt.MinPrice != nil {
		filter[catalog.FieldPrice] = bson.M{"$gte": *opt.MinPrice}
	}
	return filter
}

// buildProjection returns nil when every field should be returned.
func (r *implRepository) buildProjection(opt repo.ListOptions) bson.M {
	if len(opt.Fields) > 0 {
		proj := bson.M{}
		for _, f := range opt.Fields {
			proj[f] = 1
		}
		if _, ok := proj[catalog.IDField]; !ok {
			proj[catalog.IDField] = 0
		}
		return proj
	}
	if opt.CategoryProjection && opt.Category != "" {
		return bson.M{catalog.FieldName: 1, catalog.FieldCategory: 1}
	}
	return nil
}

// buildSort returns nil for natural order.
func (r *implRepository) buildSort(opt repo.ListOptions) bson.D {
	if opt.SortByPrice {
		return bson.D{{Key: catalog.FieldPrice, Value: 1}}
	}
	return nil
}

// buildSetDoc copies fields without the identifier, which is immutable.
func (r *implRepository) buildSetDoc(fields catalog.Document) bson.M {
	doc := make(bson.M, len(fields))
	for k, v := range fields {
		if k == catalog.IDField {
			continue
		}
		doc[k] = v
	}
	return doc
}

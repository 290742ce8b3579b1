package mongostore

import (
	"context"
	"regexp"
	"time"

	"github.com/Gnanasekark/Online-property-listing/internal/model"
	"github.com/Gnanasekark/Online-property-listing/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/datatypes"
)

var searchFields = []string{
	"location.city",
	"location.state",
	"location.address",
	"title",
	"description",
}

var newestFirst = options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

// PropertyRepository stores listings in the properties collection
type PropertyRepository struct {
	coll *mongo.Collection
}

func (r *PropertyRepository) Create(ctx context.Context, property *model.Property) error {
	if property.ID == "" {
		property.ID = model.NewID()
	}
	if property.Images == nil {
		property.Images = datatypes.JSONSlice[string]{}
	}
	now := time.Now().UTC()
	property.CreatedAt, property.UpdatedAt = now, now

	_, err := r.coll.InsertOne(ctx, property)
	return translate("create property", err)
}

func (r *PropertyRepository) FindByID(ctx context.Context, id string) (*model.Property, error) {
	var property model.Property
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&property); err != nil {
		return nil, translate("find property", err)
	}
	return &property, nil
}

func (r *PropertyRepository) Find(ctx context.Context, query model.PropertyQuery) ([]model.Property, error) {
	properties, err := findAll[model.Property](ctx, r.coll, propertyFilter(query), newestFirst)
	return properties, translate("find properties", err)
}

func (r *PropertyRepository) FindByOwner(ctx context.Context, ownerID string) ([]model.Property, error) {
	properties, err := findAll[model.Property](ctx, r.coll, bson.M{"owner": ownerID}, newestFirst)
	return properties, translate("find owner properties", err)
}

func (r *PropertyRepository) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"owner": ownerID})
	return count, translate("count owner properties", err)
}

func (r *PropertyRepository) Update(ctx context.Context, property *model.Property) error {
	property.UpdatedAt = time.Now().UTC()
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": property.ID}, property)
	if err != nil {
		return translate("update property", err)
	}
	if result.MatchedCount == 0 {
		return translate("update property", repository.ErrNotFound)
	}
	return nil
}

func (r *PropertyRepository) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return translate("delete property", err)
	}
	if result.DeletedCount == 0 {
		return translate("delete property", repository.ErrNotFound)
	}
	return nil
}

// propertyFilter builds the search document. The term is quoted so it is matched literally.
func propertyFilter(query model.PropertyQuery) bson.M {
	filter := bson.M{}
	if t := query.TypeFilter(); t != "" {
		filter["type"] = t
	}
	if term := query.SearchTerm(); term != "" {
		rx := primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
		or := make(bson.A, 0, len(searchFields))
		for _, field := range searchFields {
			or = append(or, bson.M{field: rx})
		}
		filter["$or"] = or
	}
	return filter
}

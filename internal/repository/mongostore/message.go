package mongostore

import (
	"context"

	"github.com/Gnanasekark/Online-property-listing/internal/model"
	"github.com/Gnanasekark/Online-property-listing/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MessageRepository stores enquiries in the messages collection
type MessageRepository struct {
	coll *mongo.Collection
}

func (r *MessageRepository) Create(ctx context.Context, message *model.Message) error {
	if message.ID == "" {
		message.ID = model.NewID()
	}
	_, err := r.coll.InsertOne(ctx, message)
	return translate("create message", err)
}

func (r *MessageRepository) FindByID(ctx context.Context, id string) (*model.Message, error) {
	var message model.Message
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&message); err != nil {
		return nil, translate("find message", err)
	}
	return &message, nil
}

func (r *MessageRepository) FindByOwner(ctx context.Context, ownerID, status string) ([]model.Message, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	messages, err := findAll[model.Message](ctx, r.coll, ownerFilter(ownerID, status), opts)
	return messages, translate("find owner messages", err)
}

func (r *MessageRepository) CountByOwner(ctx context.Context, ownerID, status string) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, ownerFilter(ownerID, status))
	return count, translate("count owner messages", err)
}

func (r *MessageRepository) UpdateStatus(ctx context.Context, id, status string) error {
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return translate("update message status", err)
	}
	if result.MatchedCount == 0 {
		return translate("update message status", repository.ErrNotFound)
	}
	return nil
}

func ownerFilter(ownerID, status string) bson.M {
	filter := bson.M{"ownerId": ownerID}
	if status != "" {
		filter["status"] = status
	}
	return filter
}

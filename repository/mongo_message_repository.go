package repository

import (
	"context"
	"fmt"

	"cnapp/apperrors"
	"cnapp/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoMessageRepository struct {
	coll *mongo.Collection
}

func NewMongoMessageRepository(coll *mongo.Collection) *MongoMessageRepository {
	return &MongoMessageRepository{coll: coll}
}

func (r *MongoMessageRepository) Create(ctx context.Context, m *models.Message) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, m); err != nil {
		return fmt.Errorf("%w: insert message: %v", apperrors.ErrStoreUnavailable, err)
	}
	return nil
}

func (r *MongoMessageRepository) ListAll(ctx context.Context) ([]models.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	// _id breaks createdAt ties in insertion order.
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: find messages: %v", apperrors.ErrStoreUnavailable, err)
	}
	defer cursor.Close(ctx)

	messages := []models.Message{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("%w: decode messages: %v", apperrors.ErrStoreUnavailable, err)
	}
	return messages, nil
}

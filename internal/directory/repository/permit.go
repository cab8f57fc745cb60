package repository

import (
	"context"
	"fmt"
	"time"

	"campuspark/pkg/config"
	"campuspark/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	PermitCollectionName = "Permits"
)

type PermitRepository interface {
	Create(ctx context.Context, permit *model.Permit) error
	FindByUser(ctx context.Context, userID string) ([]*model.Permit, error)
	HasActivePermit(ctx context.Context, userID string, at time.Time) (bool, error)
}

type mongoPermitRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoPermitRepository(cfg *config.Config) PermitRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoPermitRepository{
		cfg:        cfg,
		collection: db.Collection(PermitCollectionName),
	}
}

func (r *mongoPermitRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

func (r *mongoPermitRepository) Create(ctx context.Context, permit *model.Permit) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	permit.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	result, err := r.collection.InsertOne(ctx, permit)
	if err != nil {
		return fmt.Errorf("failed to create permit: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		permit.ID = oid.Hex()
	}
	return nil
}

func (r *mongoPermitRepository) FindByUser(ctx context.Context, userID string) ([]*model.Permit, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "valid_until", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find permits: %w", err)
	}
	defer cursor.Close(ctx)

	var permits []*model.Permit
	if err = cursor.All(ctx, &permits); err != nil {
		return nil, fmt.Errorf("failed to decode permits: %w", err)
	}

	return permits, nil
}

func (r *mongoPermitRepository) HasActivePermit(ctx context.Context, userID string, at time.Time) (bool, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	filter := bson.M{
		"user_id":     userID,
		"status":      model.PermitActive,
		"valid_from":  bson.M{"$lte": at},
		"valid_until": bson.M{"$gte": at},
	}

	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to check active permits: %w", err)
	}

	return count > 0, nil
}

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
	BillingCollectionName = "Billing_entries"
)

// BillingEntryRepository is append-only: ledger rows are written exactly once
// per money-moving event and never mutated afterward.
type BillingEntryRepository interface {
	Create(ctx context.Context, entry *model.BillingEntry) error
	FindByReservation(ctx context.Context, reservationID string) ([]*model.BillingEntry, error)
}

type mongoBillingEntryRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoBillingEntryRepository(cfg *config.Config) BillingEntryRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoBillingEntryRepository{
		cfg:        cfg,
		collection: db.Collection(BillingCollectionName),
	}
}

func (r *mongoBillingEntryRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

func (r *mongoBillingEntryRepository) Create(ctx context.Context, entry *model.BillingEntry) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	if entry.Date.IsZero() {
		entry.Date = time.Now().UTC().Truncate(time.Millisecond)
	}

	result, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return fmt.Errorf("failed to create billing entry: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		entry.ID = oid.Hex()
	}
	return nil
}

func (r *mongoBillingEntryRepository) FindByReservation(ctx context.Context, reservationID string) ([]*model.BillingEntry, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"reservation_id": reservationID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find billing entries: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []*model.BillingEntry
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode billing entries: %w", err)
	}

	return entries, nil
}

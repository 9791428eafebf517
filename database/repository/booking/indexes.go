package bookingRepo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes used by the back office on every booking collection.
func (r *mongoBookingRepo) EnsureIndexes(ctx context.Context, collections ...string) error {
	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("created_at_idx"),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("email_created_at_idx"),
		},
	}

	for _, name := range collections {
		coll, err := r.collection(ctx, name)
		if err != nil {
			return err
		}
		if _, err := coll.Indexes().CreateMany(ctx, indexModels); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", name, err)
		}
	}
	return nil
}

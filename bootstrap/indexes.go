package bootstrap

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureKVIndexes indexes updated_at so operators can find stale keys.
func EnsureKVIndexes(ctx context.Context, col *mongo.Collection) error {
	_, err := col.Indexes().CreateOne(
		ctx,
		mongo.IndexModel{
			Keys:    bson.D{{Key: "updated_at", Value: -1}},
			Options: options.Index().SetName("kv_updated_at"),
		},
	)
	return err
}

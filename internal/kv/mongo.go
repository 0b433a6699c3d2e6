package kv

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type kvDocument struct {
	Key       string    `bson:"_id"`
	Value     []byte    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoStore keeps each key as one document in a collection.
type MongoStore struct {
	client *mongo.Client
	col    *mongo.Collection
	// owned is set when Close should disconnect the client.
	owned bool
}

func NewMongoStore(client *mongo.Client, col *mongo.Collection, owned bool) *MongoStore {
	return &MongoStore{client: client, col: col, owned: owned}
}

func (m *MongoStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var doc kvDocument
	err := m.col.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return doc.Value, true, nil
}

func (m *MongoStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := m.col.UpdateOne(ctx,
		bson.M{"_id": key},
		bson.M{"$set": bson.M{"value": value, "updated_at": time.Now().UTC()}},
		options.UpdateOne().SetUpsert(true),
	)
	return err
}

func (m *MongoStore) Close(ctx context.Context) error {
	if !m.owned || m.client == nil {
		return nil
	}
	return m.client.Disconnect(ctx)
}

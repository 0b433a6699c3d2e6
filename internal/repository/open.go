package repository

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"bizfeed/bootstrap"
	"bizfeed/config"
	"bizfeed/database"
	"bizfeed/internal/kv"
)

// Open builds the post store selected by cfg.StoreDriver.
func Open(ctx context.Context, cfg config.Config, log zerolog.Logger) (*KVPostStore, error) {
	backend, err := openKV(ctx, cfg)
	if err != nil {
		return nil, err
	}
	codec := CodecByName(cfg.StoreCodec)
	log.Info().
		Str("driver", cfg.StoreDriver).
		Str("codec", codec.Name()).
		Str("key", cfg.StoreKey).
		Msg("post store opened")
	return NewKVPostStore(backend, cfg.StoreKey, codec), nil
}

func openKV(ctx context.Context, cfg config.Config) (kv.Store, error) {
	switch cfg.StoreDriver {
	case "", "memory":
		return kv.NewMemoryStore(), nil
	case "file":
		return kv.NewFileStore(cfg.StorePath)
	case "mongo":
		client, err := database.ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		col := client.Database(cfg.MongoDB).Collection(cfg.MongoCollection)
		if err := bootstrap.EnsureKVIndexes(ctx, col); err != nil {
			_ = client.Disconnect(ctx)
			return nil, fmt.Errorf("ensure kv indexes: %w", err)
		}
		return kv.NewMongoStore(client, col, true), nil
	case "postgres":
		pool, err := kv.NewPostgresPool(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		store, err := kv.NewPostgresStore(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		return store, nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

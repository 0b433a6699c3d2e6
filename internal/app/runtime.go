// Package app wires configuration, logging, storage and the feed engine for the
// server and the admin CLI.
package app

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"bizfeed/config"
	"bizfeed/internal/feed"
	"bizfeed/internal/logger"
	"bizfeed/internal/repository"
	"bizfeed/internal/sanitize"
	"bizfeed/internal/seed"
)

type Runtime struct {
	Config config.Config
	Log    zerolog.Logger
	Store  *repository.KVPostStore
	Engine *feed.Engine

	closeLog func() error
}

// Open builds the runtime from cfg. The caller must Close it.
func Open(ctx context.Context, cfg config.Config) (*Runtime, error) {
	log, closeLog, err := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Path:   cfg.LogFile,
	})
	if err != nil {
		return nil, err
	}

	store, err := repository.Open(ctx, cfg, log)
	if err != nil {
		_ = closeLog()
		return nil, err
	}

	opts := []feed.Option{
		feed.WithLogger(log.With().Str("component", "feed").Logger()),
		feed.WithLocation(cfg.Location()),
	}
	if cfg.ProfanityFilter {
		words := append(append([]string{}, sanitize.DefaultBannedWords...), cfg.ProfanityWords...)
		opts = append(opts, feed.WithKeywordFilter(sanitize.NewProfanityFilter(words)))
	}

	return &Runtime{
		Config:   cfg,
		Log:      log,
		Store:    store,
		Engine:   feed.New(store, opts...),
		closeLog: closeLog,
	}, nil
}

// Seed inserts the demo posts into an empty store.
func (r *Runtime) Seed(ctx context.Context) (int, error) {
	n, err := seed.EnsureDemoPosts(ctx, r.Store, time.Now)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		r.Log.Info().Int("posts", n).Msg("seeded demo posts")
	}
	return n, nil
}

func (r *Runtime) Close(ctx context.Context) error {
	return errors.Join(r.Store.Close(ctx), r.closeLog())
}

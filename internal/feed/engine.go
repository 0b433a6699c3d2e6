// Package feed is the posting and ranking engine behind the public business directory.
//
// Every operation loads the whole post collection from the PostStore, works on it in
// memory and writes the whole collection back. Operations on one Engine are serialized
// through a single-writer semaphore, so a quota check and the write that depends on it
// cannot interleave with another operation of the same process. Separate processes
// sharing one store are not coordinated.
package feed

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"

	"bizfeed/internal/repository"
	"bizfeed/internal/sanitize"
	"bizfeed/model"
)

type Engine struct {
	store         repository.PostStore
	log           zerolog.Logger
	now           func() time.Time
	loc           *time.Location
	keywordFilter *sanitize.ProfanityFilter
	newID         func() string
	writer        *semaphore.Weighted
}

type Option func(*Engine)

func WithLogger(l zerolog.Logger) Option { return func(e *Engine) { e.log = l } }

func WithClock(now func() time.Time) Option { return func(e *Engine) { e.now = now } }

// WithLocation sets the zone calendar quota windows are computed in.
func WithLocation(loc *time.Location) Option { return func(e *Engine) { e.loc = loc } }

// WithKeywordFilter drops keywords containing banned words.
func WithKeywordFilter(f *sanitize.ProfanityFilter) Option {
	return func(e *Engine) { e.keywordFilter = f }
}

func WithIDGenerator(gen func() string) Option { return func(e *Engine) { e.newID = gen } }

func New(store repository.PostStore, opts ...Option) *Engine {
	e := &Engine{
		store:  store,
		log:    zerolog.Nop(),
		now:    time.Now,
		loc:    time.Local,
		newID:  uuid.NewString,
		writer: semaphore.NewWeighted(1),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// acquire waits for the writer slot or for ctx to end.
func (e *Engine) acquire(ctx context.Context) (func(), error) {
	if err := e.writer.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	return func() { e.writer.Release(1) }, nil
}

func (e *Engine) load(ctx context.Context) ([]model.Post, error) {
	posts, err := e.store.LoadPosts(ctx)
	if err != nil {
		e.log.Error().Err(err).Msg("feed: load failed")
		return nil, err
	}
	return posts, nil
}

func (e *Engine) save(ctx context.Context, posts []model.Post) error {
	if err := e.store.SavePosts(ctx, posts); err != nil {
		e.log.Error().Err(err).Int("posts", len(posts)).Msg("feed: save failed")
		return err
	}
	return nil
}

func (e *Engine) reject(op string, err *RuleError) error {
	e.log.Debug().Str("op", op).Str("kind", string(err.Kind)).Msg(err.Reason)
	return err
}

func indexOf(posts []model.Post, id string) int {
	for i := range posts {
		if posts[i].PostID == id {
			return i
		}
	}
	return -1
}

func (e *Engine) nowMillis() int64 { return model.Millis(e.now()) }

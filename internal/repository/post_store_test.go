package repository

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizfeed/config"
	"bizfeed/internal/kv"
	"bizfeed/model"
)

func samplePosts() []model.Post {
	exp := int64(1_800_000_000_000)
	rank := 2
	return []model.Post{
		{
			PostID:            "p1",
			OwnerUserID:       "u1",
			OwnerBusinessName: "Sunrise Bakery",
			OwnerCategory:     "Food",
			Title:             "Fresh bread",
			Description:       "<p>Daily</p>",
			Keywords:          []string{"bread", "bakery"},
			Images:            []model.Image{{URI: "a.png"}},
			Location:          &model.Location{City: "Chiang Mai"},
			CreatedAt:         1_700_000_000_000,
			UpdatedAt:         1_700_000_000_000,
			ExpiresAt:         &exp,
			PlanType:          model.PlanBasic,
			VisibilityStatus:  model.VisibilityActive,
			RankingScore:      250,
			PinnedRank:        &rank,
			ModerationTags:    []string{"Verified"},
			AuthorRole:        "MEMBER",
		},
		{
			PostID:           "p2",
			OwnerUserID:      "u2",
			Keywords:         []string{},
			Images:           []model.Image{},
			ModerationTags:   []string{},
			PlanType:         model.PlanEntry,
			VisibilityStatus: model.VisibilityPaused,
		},
	}
}

func TestKVPostStoreRoundTrip(t *testing.T) {
	for _, codec := range []Codec{JSON, CBOR} {
		t.Run(codec.Name(), func(t *testing.T) {
			ctx := context.Background()
			s := NewKVPostStore(kv.NewMemoryStore(), "feed_posts", codec)

			empty, err := s.LoadPosts(ctx)
			require.NoError(t, err)
			assert.NotNil(t, empty)
			assert.Empty(t, empty)

			require.NoError(t, s.SavePosts(ctx, samplePosts()))
			got, err := s.LoadPosts(ctx)
			require.NoError(t, err)
			assert.Equal(t, samplePosts(), got)
		})
	}
}

func TestKVPostStoreSaveNil(t *testing.T) {
	ctx := context.Background()
	backend := kv.NewMemoryStore()
	s := NewKVPostStore(backend, "k", nil)
	require.NoError(t, s.SavePosts(ctx, nil))

	raw, found, err := backend.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "[]", string(raw))
}

func TestKVPostStoreDecodeError(t *testing.T) {
	ctx := context.Background()
	backend := kv.NewMemoryStore()
	require.NoError(t, backend.Set(ctx, "k", []byte("{not json")))

	_, err := NewKVPostStore(backend, "k", JSON).LoadPosts(ctx)
	assert.ErrorContains(t, err, "decode posts (json)")
}

func TestKVPostStoreLoadFault(t *testing.T) {
	ctx := context.Background()
	backend := kv.NewMemoryStore()
	require.NoError(t, backend.Close(ctx))

	_, err := NewKVPostStore(backend, "k", JSON).LoadPosts(ctx)
	assert.ErrorIs(t, err, kv.ErrClosed)
}

func TestCodecByName(t *testing.T) {
	assert.Equal(t, "cbor", CodecByName("cbor").Name())
	assert.Equal(t, "json", CodecByName("yaml").Name())
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, config.Config{StoreDriver: "file", StorePath: t.TempDir(), StoreKey: "feed_posts", StoreCodec: "cbor"}, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, s.SavePosts(ctx, samplePosts()))
	got, err := s.LoadPosts(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	require.NoError(t, s.Close(ctx))

	_, err = Open(ctx, config.Config{StoreDriver: "redis"}, zerolog.Nop())
	assert.ErrorContains(t, err, "unknown store driver")
}

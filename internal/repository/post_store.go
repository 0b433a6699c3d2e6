// Package repository adapts the key-value store into the post collection the feed works on.
// The whole collection lives under one key and is always read and written in full.
package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"bizfeed/internal/kv"
	"bizfeed/model"
)

// PostStore is the persistence adapter consumed by the feed engine.
type PostStore interface {
	// LoadPosts returns an empty list when nothing is stored.
	LoadPosts(ctx context.Context) ([]model.Post, error)
	// SavePosts replaces the entire stored collection.
	SavePosts(ctx context.Context, posts []model.Post) error
}

type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
func (jsonCodec) Name() string                       { return "json" }

type cborCodec struct{}

func (cborCodec) Marshal(v any) ([]byte, error)      { return cbor.Marshal(v) }
func (cborCodec) Unmarshal(data []byte, v any) error { return cbor.Unmarshal(data, v) }
func (cborCodec) Name() string                       { return "cbor" }

var (
	JSON Codec = jsonCodec{}
	CBOR Codec = cborCodec{}
)

// CodecByName falls back to JSON for unknown names.
func CodecByName(name string) Codec {
	if name == CBOR.Name() {
		return CBOR
	}
	return JSON
}

type KVPostStore struct {
	kv    kv.Store
	key   string
	codec Codec
}

func NewKVPostStore(store kv.Store, key string, codec Codec) *KVPostStore {
	if codec == nil {
		codec = JSON
	}
	return &KVPostStore{kv: store, key: key, codec: codec}
}

func (s *KVPostStore) LoadPosts(ctx context.Context) ([]model.Post, error) {
	raw, found, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("load posts: %w", err)
	}
	if !found || len(raw) == 0 {
		return []model.Post{}, nil
	}
	var posts []model.Post
	if err := s.codec.Unmarshal(raw, &posts); err != nil {
		return nil, fmt.Errorf("decode posts (%s): %w", s.codec.Name(), err)
	}
	if posts == nil {
		posts = []model.Post{}
	}
	return posts, nil
}

func (s *KVPostStore) SavePosts(ctx context.Context, posts []model.Post) error {
	if posts == nil {
		posts = []model.Post{}
	}
	raw, err := s.codec.Marshal(posts)
	if err != nil {
		return fmt.Errorf("encode posts (%s): %w", s.codec.Name(), err)
	}
	if err := s.kv.Set(ctx, s.key, raw); err != nil {
		return fmt.Errorf("save posts: %w", err)
	}
	return nil
}

// Close releases the backing key-value store.
func (s *KVPostStore) Close(ctx context.Context) error {
	return s.kv.Close(ctx)
}

// Package kv is the opaque asynchronous key-value store the feed persists into.
// Backends hold one value per key and replace it wholesale on Set.
package kv

import (
	"context"
	"errors"
)

// ErrClosed is returned by backends used after Close.
var ErrClosed = errors.New("kv: store closed")

type Store interface {
	// Get returns found=false without error for a missing key.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Close(ctx context.Context) error
}

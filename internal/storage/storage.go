// Package storage provides the durable key-value store the client keeps its
// session state in, with file, redis and in-memory backends behind one
// interface.
package storage

import "context"

// Store is a durable string key-value store. Get reports absence via the
// boolean rather than an error, so callers can tell "no value" from a broken
// backend.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

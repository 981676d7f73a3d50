// Package metadata is the client's small key/value store in SQLite. It holds
// the persisted session (email, user id, refresh token) and nothing else.
package metadata

import "context"

type Repository interface {
	// Get returns the value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// SetAll upserts every pair atomically.
	SetAll(ctx context.Context, kv map[string]string) error
	Delete(ctx context.Context, keys ...string) error
	Clear(ctx context.Context) error
}

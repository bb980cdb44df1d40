package ports

import (
	"context"
	"time"
)

// KVStore is the durable key-value backend behind per-session state.
// Values are opaque JSON documents.
type KVStore interface {
	// Get returns found=false with a nil error when the key is absent or expired.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	// Set stores value under key. A zero ttl means no expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

package interfaces

import (
	"context"
	"time"
)

// ICache is a small TTL cache used for domain-suggestion results and the
// auth token revocation list. A nil ICache is treated as "caching disabled"
// by all callers.
type ICache interface {
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	GenerateKey(operation, key string) string
}

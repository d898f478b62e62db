// Package storage provides the short-lived cache in front of the token
// tables so sync loops do not hit Postgres on every API call.
package storage

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("storage: key not found")

// TokenCache is a byte-value cache with per-key TTLs. Get returns
// ErrNotFound for missing or expired keys.
type TokenCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

package ports

import (
	"context"
	"errors"

	"token-recovery-dapp/internal/core/domain"
)

// ErrKeyNotFound is returned by a KeyValueStore for a missing key.
var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore is a raw backend for persisted preferences.
// Implementations must be safe for concurrent use.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// PreferenceStore persists namespaced preferences. It never returns errors:
// a failed read looks like a missing key and failed writes are dropped.
type PreferenceStore interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string)
	Remove(ctx context.Context, key string)
}

// AuditRepository persists audit entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}

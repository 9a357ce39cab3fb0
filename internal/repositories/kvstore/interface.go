package kvstore

//go:generate mockgen -package=mocks -destination=mocks/mock_store.go github.com/KirkDiggler/scoretracker/internal/repositories/kvstore Store

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a key has no value
	ErrNotFound = errors.New("key not found")

	// ErrQuotaExceeded is returned when a write would exceed the storage budget
	ErrQuotaExceeded = errors.New("storage quota exceeded")
)

// Store is a string key/value backend with a storage budget, the shape of a
// browser-style local storage area. Clear wipes everything in the origin,
// including keys this application does not own.
type Store interface {
	// Get returns the value for key or ErrNotFound
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key or fails with ErrQuotaExceeded
	Set(ctx context.Context, key, value string) error

	// Delete removes keys; missing keys are ignored
	Delete(ctx context.Context, keys ...string) error

	// Keys lists keys starting with prefix in lexical order
	Keys(ctx context.Context, prefix string) ([]string, error)

	// Clear removes every key in the origin
	Clear(ctx context.Context) error
}

// Package kv defines the key-value storage collaborator used for all
// persistence. Values are plain strings, there are no transactions and no
// capacity guarantees.
package kv

import "context"

// Store is the interface for persistent string-keyed storage.
type Store interface {
	// Get returns the value for a key. It returns an error wrapping
	// model.ErrNotFound when the key is absent.
	Get(ctx context.Context, key string) (string, error)
	// Set stores a value under a key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error
	// Delete removes a key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error
}

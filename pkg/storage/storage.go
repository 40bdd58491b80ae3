// Package storage provides the durable key-value backends the state
// containers persist into. Each container owns one namespace holding a
// single serialized JSON blob of its full state.
package storage

import "context"

// Store is the contract for a durable key-value backend.
type Store interface {
	// Load reads the blob for a namespace. Returns ErrNotFound when the
	// namespace has never been written.
	Load(ctx context.Context, namespace string) ([]byte, error)
	// Save writes the full blob for a namespace, replacing any previous value.
	Save(ctx context.Context, namespace string, blob []byte) error
	// Delete removes a namespace. Deleting an absent namespace is not an error.
	Delete(ctx context.Context, namespace string) error
}

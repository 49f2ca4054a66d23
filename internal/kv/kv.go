// Package kv is the local key-value capability that keeps the login session
// between runs. Values are opaque bytes.
package kv

import "context"

type Store interface {
	// Get returns the value stored under key and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// Package storage defines the key-value port behind the root store. Values
// are whole JSON-encoded collections written back on every change,
// last-write-wins — the same contract the web client has with browser local
// storage, so any backend that can hold four blobs qualifies.
package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: key not found")

type Storage interface {
	// Load returns the raw value for key, or ErrNotFound when absent.
	Load(ctx context.Context, key string) ([]byte, error)
	// Save replaces the value for key.
	Save(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

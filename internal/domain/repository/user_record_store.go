// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
)

// ErrRecordNotFound is returned when no value is stored under a key.
var ErrRecordNotFound = errors.New("record not found")

// UserRecordStore is the durable key-value entry behind the session store.
// It holds at most one serialized user record per key; the session layer
// writes it on login/signup, removes it on logout and reads it once at
// startup. Implementations must tolerate concurrent calls.
type UserRecordStore interface {
	// Get returns the raw value stored under key, or ErrRecordNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes the value under key. Removing an absent key is not
	// an error.
	Remove(ctx context.Context, key string) error
}

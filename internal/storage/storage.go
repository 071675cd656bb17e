// Package storage provides the key/value blob stores that hold a profile's
// local documents.
package storage

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned by Get when the key has no value.
	ErrNotFound = errors.New("storage: key not found")
	// ErrQuotaExceeded is returned by Set when a value exceeds the store quota.
	ErrQuotaExceeded = errors.New("storage: quota exceeded")
	// ErrClosed is returned after Close.
	ErrClosed = errors.New("storage: store closed")
)

// Store is a flat namespace of JSON blobs.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

func validKey(key string) error {
	if key == "" || strings.ContainsAny(key, `/\:`) || strings.HasPrefix(key, ".") {
		return fmt.Errorf("storage: invalid key %q", key)
	}
	return nil
}

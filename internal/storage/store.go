package storage

import "errors"

var ErrNotFound = errors.New("key not found")

// KV is a durable key-value store holding opaque values. Get returns
// ErrNotFound for a key that was never written.
type KV interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Close() error
}

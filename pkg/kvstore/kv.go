// Package kvstore provides the key-value primitive the local stores
// persist into: the Go counterpart of the browser's localStorage.
package kvstore

import "errors"

// ErrKeyNotFound is returned by Get when a key has no value.
var ErrKeyNotFound = errors.New("key not found")

// KV is a flat string key-value store. Implementations must tolerate
// deletes of absent keys.
type KV interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

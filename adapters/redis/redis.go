// Package redis backs the key-value store with a Redis server, for
// deployments that share the account collection across processes.
package redis

import (
	"errors"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/ashoplabs/sitekit/pkg/kvstore"
)

// KV implements kvstore.KV on a redigo connection pool.
type KV struct {
	pool   *redis.Pool
	prefix string
}

var _ kvstore.KV = (*KV)(nil)

// Config wires a redis KV. Address is required.
type Config struct {
	// Address is the host:port of the server.
	Address string

	// Prefix is prepended to every key, so several sites can share one
	// database.
	Prefix string

	// MaxIdle defaults to 3.
	MaxIdle int

	// IdleTimeout defaults to 240 seconds.
	IdleTimeout time.Duration
}

func New(cfg Config) *KV {
	maxIdle := cfg.MaxIdle
	if maxIdle <= 0 {
		maxIdle = 3
	}
	idleTimeout := cfg.IdleTimeout
	if idleTimeout <= 0 {
		idleTimeout = 240 * time.Second
	}
	pool := &redis.Pool{
		MaxIdle:     maxIdle,
		IdleTimeout: idleTimeout,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", cfg.Address)
		},
	}
	return &KV{pool: pool, prefix: cfg.Prefix}
}

// NewFromPool wraps an existing pool.
func NewFromPool(pool *redis.Pool, prefix string) *KV {
	return &KV{pool: pool, prefix: prefix}
}

func (kv *KV) Get(key string) (string, error) {
	conn := kv.pool.Get()
	defer conn.Close()

	value, err := redis.String(conn.Do("GET", kv.prefix+key))
	if errors.Is(err, redis.ErrNil) {
		return "", kvstore.ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis get %q: %w", key, err)
	}
	return value, nil
}

func (kv *KV) Set(key, value string) error {
	conn := kv.pool.Get()
	defer conn.Close()

	if _, err := conn.Do("SET", kv.prefix+key, value); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}

func (kv *KV) Delete(key string) error {
	conn := kv.pool.Get()
	defer conn.Close()

	if _, err := conn.Do("DEL", kv.prefix+key); err != nil {
		return fmt.Errorf("redis del %q: %w", key, err)
	}
	return nil
}

// Close releases the underlying pool.
func (kv *KV) Close() error {
	return kv.pool.Close()
}

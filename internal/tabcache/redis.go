// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tabcache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a Store shared across processes, for deployments where several
// renderers hit the same document. Entries are JSON values under a common
// prefix with a server-side expiry as garbage collection; freshness is
// still decided by the reader against the entry's FetchedAt.
type Redis struct {
	client *redis.Client
	prefix string

	// gcTTL is the server-side expiry on stored entries. It is set to
	// twice the reader's freshness window so stale-but-recent entries
	// stay inspectable while truly dead keys get collected.
	gcTTL time.Duration
}

// NewRedis connects to redisURL and verifies the connection.
func NewRedis(redisURL string, readerTTL time.Duration) (*Redis, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return NewRedisWithClient(client, readerTTL), nil
}

// NewRedisWithClient wraps an existing client.
func NewRedisWithClient(client *redis.Client, readerTTL time.Duration) *Redis {
	gc := 2 * readerTTL
	if gc <= 0 {
		gc = 10 * time.Minute
	}
	return &Redis{client: client, prefix: "tabs:", gcTTL: gc}
}

func (r *Redis) key(key string) string {
	return r.prefix + key
}

// Get implements Store. Connection trouble and undecodable values are
// both misses.
func (r *Redis) Get(ctx context.Context, key string) (Entry, bool) {
	raw, err := r.client.Get(ctx, r.key(key)).Result()
	if err != nil {
		return Entry{}, false
	}

	var entry Entry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return Entry{}, false
	}
	if entry.Rows == nil {
		return Entry{}, false
	}
	return entry, true
}

// Set implements Store.
func (r *Redis) Set(ctx context.Context, key string, rows [][]string) {
	raw, err := json.Marshal(Entry{FetchedAt: time.Now(), Rows: rows})
	if err != nil {
		return
	}
	r.client.Set(ctx, r.key(key), raw, r.gcTTL)
}

// Close closes the underlying connection.
func (r *Redis) Close() error {
	return r.client.Close()
}

// Ping checks that redis is reachable.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

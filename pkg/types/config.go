// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "site-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// CacheBackend identifies the tab cache backing store.
type CacheBackend string

const (
	CacheNone   CacheBackend = "none"
	CacheMemory CacheBackend = "memory"
	CacheRedis  CacheBackend = "redis"
	CacheSQLite CacheBackend = "sqlite"
)

// SheetsConfig holds settings for the spreadsheet content source.
type SheetsConfig struct {
	HTTPConfig `yaml:",inline"`

	// DocumentID is the spreadsheet document identifier all tabs are read from.
	DocumentID string `json:"document_id" yaml:"document_id"`

	// RevalidateSeconds is the response reuse window hint passed to the
	// transport layer when no cache store is configured (default 300).
	RevalidateSeconds int `json:"revalidate_seconds" yaml:"revalidate_seconds"`
}

// CacheConfig holds settings for the tab row cache.
type CacheConfig struct {
	// Backend selects the backing store: none, memory, redis, or sqlite.
	Backend CacheBackend `json:"backend" yaml:"backend"`

	// TTLMillis is how long a cached tab stays fresh, in milliseconds
	// (default 300000). Zero or negative disables caching entirely.
	TTLMillis int `json:"ttl_millis" yaml:"ttl_millis"`

	// RedisURL is the redis connection URL for the redis backend
	// (e.g. "redis://localhost:6379/0").
	RedisURL string `json:"redis_url,omitempty" yaml:"redis_url,omitempty"`

	// Path is the database file path for the sqlite backend.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// TTL returns the configured freshness window as a duration.
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLMillis) * time.Millisecond
}

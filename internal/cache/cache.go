// Package cache wraps the process-wide redis connection backing the auth
// token store and the profile read cache. Every operation fails safe: when
// redis is unreachable the caller sees a cache miss, never an error, so an
// outage degrades to uncached reads instead of failed requests.
package cache

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Key joins segments into a namespaced redis key, e.g. Key("user", "42")
// is "user:42". All keys in this project go through here so the namespaces
// stay enumerable in one place: user:*, refresh_token:*,
// blacklist:access_token:*.
func Key(segments ...string) string {
	return strings.Join(segments, ":")
}

// Client wraps redis.Client with the fail-safe policy above. A nil *Client
// behaves like an always-empty cache, which keeps redis optional in tests.
type Client struct {
	client *redis.Client
}

// New creates a new Redis client.
func New(addr, password string, db int) *Client {
	opts := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}
	return &Client{client: redis.NewClient(opts)}
}

// Get returns the value, or nil if the key is missing or redis unavailable.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	res, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		// fail safe: behave like a cache miss
		return nil, nil
	}
	return res, nil
}

// Set stores the value with a TTL, ignoring redis errors.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c == nil || c.client == nil {
		return nil
	}
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		// fail safe: ignore redis errors
		return nil
	}
	return nil
}

// Delete removes a key, ignoring redis errors.
func (c *Client) Delete(ctx context.Context, key string) error {
	if c == nil || c.client == nil {
		return nil
	}
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return nil
	}
	return nil
}

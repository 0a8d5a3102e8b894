// Package pagecache invalidates the storefront page cache kept in Redis.
package pagecache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultKeyPrefix = "page:"
	DefaultChannel   = "rental:revalidate"
)

// Config describes the Redis connection used for cache invalidation.
type Config struct {
	Address  string
	Password string
	DB       int
	PoolSize int
}

// NewClient creates a Redis client from the configuration.
func NewClient(cfg Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

// RevalidationMessage is published once per Revalidate call so that
// storefront instances with a local cache can drop it too.
type RevalidationMessage struct {
	Paths []string `json:"paths"`
}

// Revalidator implements ports.RevalidationHook. It deletes the cached page
// of every path and publishes the path list on a channel.
type Revalidator struct {
	client    *redis.Client
	keyPrefix string
	channel   string
}

func NewRevalidator(client *redis.Client) *Revalidator {
	return &Revalidator{
		client:    client,
		keyPrefix: DefaultKeyPrefix,
		channel:   DefaultChannel,
	}
}

// PageKey is the cache key of a storefront path.
func (r *Revalidator) PageKey(path string) string {
	return r.keyPrefix + path
}

func (r *Revalidator) Revalidate(ctx context.Context, paths []string) error {
	if r.client == nil {
		return errors.New("redis client is nil")
	}
	if len(paths) == 0 {
		return nil
	}

	payload, err := json.Marshal(RevalidationMessage{Paths: paths})
	if err != nil {
		return fmt.Errorf("failed to marshal revalidation message: %w", err)
	}

	keys := make([]string, len(paths))
	for i, p := range paths {
		keys[i] = r.PageKey(p)
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, keys...)
	pipe.Publish(ctx, r.channel, payload)
	if _, err = pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to revalidate pages: %w", err)
	}

	return nil
}

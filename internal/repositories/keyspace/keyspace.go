// Package keyspace scopes Redis keys to a single run of the bot.
package keyspace

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

// DefaultPrefix is the prefix every namespace starts with
const DefaultPrefix = "sessionsync:"

// scanBatch is how many keys are requested per SCAN call during a purge
const scanBatch = 100

// New returns a namespace for the given run ID, e.g. "sessionsync:<run>:"
func New(runID string) string {
	return fmt.Sprintf("%s%s:", DefaultPrefix, runID)
}

// Normalize makes sure a namespace is non-empty and ends with a separator
func Normalize(namespace string) string {
	if namespace == "" {
		return DefaultPrefix
	}
	if !strings.HasSuffix(namespace, ":") {
		return namespace + ":"
	}
	return namespace
}

// Purge deletes every key under the namespace and returns how many were removed
func Purge(ctx context.Context, client *redis.Client, namespace string) (int64, error) {
	var deleted int64

	iter := client.Scan(ctx, 0, Normalize(namespace)+"*", scanBatch).Iterator()
	batch := make([]string, 0, scanBatch)
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == scanBatch {
			n, err := client.Del(ctx, batch...).Result()
			if err != nil {
				return deleted, fmt.Errorf("failed to delete keys: %w", err)
			}
			deleted += n
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return deleted, fmt.Errorf("failed to scan keys: %w", err)
	}

	if len(batch) > 0 {
		n, err := client.Del(ctx, batch...).Result()
		if err != nil {
			return deleted, fmt.Errorf("failed to delete keys: %w", err)
		}
		deleted += n
	}

	return deleted, nil
}

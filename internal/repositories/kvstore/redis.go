package kvstore

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/redis/go-redis/v9"
)

// scanBatch is the COUNT hint for SCAN iterations
const scanBatch = 100

// RedisConfig holds configuration for the Redis store
type RedisConfig struct {
	// Redis client; the client's selected DB is the storage origin
	RedisClient *redis.Client

	// QuotaBytes is the budget for keys plus values across the whole DB;
	// zero leaves enforcement to the server's maxmemory policy
	QuotaBytes int64
}

// redisStore implements Store on a Redis database
type redisStore struct {
	client *redis.Client
	quota  int64
}

// NewRedis creates a new Redis-backed key/value store
func NewRedis(cfg *RedisConfig) (*redisStore, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisStore{
		client: cfg.RedisClient,
		quota:  cfg.QuotaBytes,
	}, nil
}

// Get retrieves a value from Redis
func (r *redisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get %s: %w", key, err)
	}
	return value, nil
}

// Set stores a value in Redis, enforcing the configured budget
func (r *redisStore) Set(ctx context.Context, key, value string) error {
	if r.quota > 0 {
		used, err := r.usage(ctx, key)
		if err != nil {
			return err
		}
		if used+int64(len(key)+len(value)) > r.quota {
			return ErrQuotaExceeded
		}
	}

	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		if isOOM(err) {
			return ErrQuotaExceeded
		}
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

// Delete removes keys from Redis
func (r *redisStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete keys: %w", err)
	}
	return nil
}

// Keys lists keys with the given prefix using SCAN
func (r *redisStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	keys, err := r.scan(ctx, escapeGlob(prefix)+"*")
	if err != nil {
		return nil, err
	}
	sort.Strings(keys)
	return keys, nil
}

// Clear flushes the selected Redis database
func (r *redisStore) Clear(ctx context.Context) error {
	if err := r.client.FlushDB(ctx).Err(); err != nil {
		return fmt.Errorf("failed to flush database: %w", err)
	}
	return nil
}

// usage sums key and value lengths of every key except skip
func (r *redisStore) usage(ctx context.Context, skip string) (int64, error) {
	keys, err := r.scan(ctx, "*")
	if err != nil {
		return 0, err
	}
	if len(keys) == 0 {
		return 0, nil
	}

	// Get all lengths in one round trip
	pipe := r.client.Pipeline()
	lengths := make(map[string]*redis.IntCmd, len(keys))
	for _, k := range keys {
		if k == skip {
			continue
		}
		lengths[k] = pipe.StrLen(ctx, k)
	}
	// Per-command errors are inspected below
	_, _ = pipe.Exec(ctx)

	var used int64
	for k, cmd := range lengths {
		n, err := cmd.Result()
		if err != nil {
			// Non-string keys belong to someone else; count only their names
			if !strings.HasPrefix(err.Error(), "WRONGTYPE") {
				return 0, fmt.Errorf("failed to measure storage usage: %w", err)
			}
			n = 0
		}
		used += int64(len(k)) + n
	}
	return used, nil
}

func (r *redisStore) scan(ctx context.Context, match string) ([]string, error) {
	var (
		keys   []string
		cursor uint64
	)
	for {
		batch, next, err := r.client.Scan(ctx, cursor, match, scanBatch).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to scan keys: %w", err)
		}
		keys = append(keys, batch...)
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return keys, nil
}

// isOOM reports a Redis "OOM command not allowed" reply
func isOOM(err error) bool {
	return strings.HasPrefix(err.Error(), "OOM")
}

// escapeGlob escapes characters that SCAN MATCH treats as patterns
func escapeGlob(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)
	return r.Replace(s)
}

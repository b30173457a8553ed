package cache

import (
	"context"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Stats cache keys
const (
	DashboardStatsKey = "stats:dashboard"
	ProductStatsKey   = "stats:products"
)

// StatsTTL bounds how stale the cached aggregations can get.
const StatsTTL = 60 * time.Second

var client *redis.Client

// Init initializes the Redis connection. On failure the client stays
// nil and every cache call degrades to a miss.
func Init() error {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}

	client = redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		client = nil
		return err
	}
	return nil
}

// GetClient returns the Redis client, nil when the cache is down.
func GetClient() *redis.Client {
	return client
}

// GetCached returns cached data for a key
func GetCached(ctx context.Context, key string) ([]byte, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// SetCached stores data with a TTL
func SetCached(ctx context.Context, key string, data []byte, ttl time.Duration) {
	if client == nil {
		return
	}
	client.Set(ctx, key, data, ttl)
}

// InvalidateStats drops the cached aggregations. Called after any
// write that feeds the dashboard or product stats.
func InvalidateStats(ctx context.Context) {
	if client == nil {
		return
	}
	client.Del(ctx, DashboardStatsKey, ProductStatsKey)
}

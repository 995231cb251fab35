package rdx

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

func init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	Conn = redis.NewClient(&redis.Options{Addr: addr})
}

// GetCached returns the cached value for key, or "" when absent or Redis is down.
func GetCached(ctx context.Context, key string) string {
	if Conn == nil {
		return ""
	}
	val, err := Conn.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			log.Println("Redis Get error:", err)
		}
		return ""
	}
	return val
}

// SetCached stores a value with a TTL; failures are logged, never surfaced.
func SetCached(ctx context.Context, key, val string, ttl time.Duration) {
	if Conn == nil {
		return
	}
	if err := Conn.Set(ctx, key, val, ttl).Err(); err != nil {
		log.Println("Redis Set error:", err)
	}
}

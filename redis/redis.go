package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/UDAVALAPATISURESH/backend-spn/config"
	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

func InitRedis(cfg *config.Config) {
	Client = redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   0,
	})

	// Test connection
	_, err := Client.Ping(Ctx).Result()
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}
	fmt.Println("✅ Connected to Redis")
}

// BlacklistToken stores a revoked JWT until its natural expiry so logout
// actually invalidates the token.
func BlacklistToken(token string, ttl time.Duration) error {
	return Client.Set(Ctx, "blacklist:"+token, "1", ttl).Err()
}

// IsTokenBlacklisted reports whether a token was revoked via logout.
func IsTokenBlacklisted(token string) bool {
	n, err := Client.Exists(Ctx, "blacklist:"+token).Result()
	return err == nil && n > 0
}

// MarkOnce claims a one-shot key. Returns true the first time it is called
// for a key within the TTL, false on every repeat. Used to dedupe reminder
// sends across overlapping job windows.
func MarkOnce(key string, ttl time.Duration) (bool, error) {
	return Client.SetNX(Ctx, key, "1", ttl).Result()
}

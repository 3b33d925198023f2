package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/serviceconnect/booking-backend/config"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

const blacklistPrefix = "blacklist:"

func Init(cfg *config.Config) {
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

// BlacklistToken marks a refresh token as revoked until it would have expired
// anyway. The TTL keeps the blacklist from growing without bound.
func BlacklistToken(token string, ttl time.Duration) error {
	if Client == nil || ttl <= 0 {
		return nil
	}
	return Client.Set(Ctx, blacklistPrefix+token, "1", ttl).Err()
}

// IsTokenBlacklisted reports whether a refresh token has been revoked.
func IsTokenBlacklisted(token string) bool {
	if Client == nil {
		return false
	}
	n, err := Client.Exists(Ctx, blacklistPrefix+token).Result()
	return err == nil && n > 0
}

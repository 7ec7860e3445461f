package utils

import (
	"context"
	"log"
	"time"

	"sokoway/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client (geo analyses, quotes).
	CacheClient *redis.Client
	// AuthCacheClient is the dedicated client for authorization caching.
	AuthCacheClient *redis.Client
	// MarketRateClient holds the per-corridor suggested prices the
	// market-rate worker maintains.
	MarketRateClient *redis.Client
)

func newRedisClient(db int, label string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (%s): %v", label, err)
	}
	return client
}

// InitRedis initializes every Redis client the service uses.
func InitRedis() {
	CacheClient = newRedisClient(config.AppConfig.RedisCacheDB, "cache")
	AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB, "auth")
	MarketRateClient = newRedisClient(config.AppConfig.RedisMarketRateDB, "market-rate")
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		CacheClient = newRedisClient(config.AppConfig.RedisCacheDB, "cache")
	}
	return CacheClient
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB, "auth")
	}
	return AuthCacheClient
}

// GetMarketRateClient returns the Redis client for market-rate data.
func GetMarketRateClient() *redis.Client {
	if MarketRateClient == nil {
		MarketRateClient = newRedisClient(config.AppConfig.RedisMarketRateDB, "market-rate")
	}
	return MarketRateClient
}

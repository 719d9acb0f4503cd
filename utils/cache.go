// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"quickfind/config"

	"github.com/go-redis/redis/v8"
)

var (
	// BusClient is the Redis client backing the channel bus.
	BusClient *redis.Client
	// AuthCacheClient is the dedicated client for authorization caching.
	AuthCacheClient *redis.Client
)

// InitBusClient initializes the Redis client used for pub/sub publishing.
func InitBusClient() {
	BusClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisBusDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := BusClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Bus): %v", err)
	}
}

// GetBusClient returns the pub/sub Redis client.
func GetBusClient() *redis.Client {
	if BusClient == nil {
		InitBusClient()
	}
	return BusClient
}

// InitAuthCache initializes the Redis client for authorization caching.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := AuthCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

// InitRedis initializes every Redis client the service uses.
func InitRedis() {
	InitBusClient()
	InitAuthCache()
}

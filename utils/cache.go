// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"alliancewav/config"

	"github.com/go-redis/redis/v8"
)

// BookingCacheClient holds the Redis client backing booking flow state.
var BookingCacheClient *redis.Client

// InitBookingCache initializes the Redis client for booking flow persistence.
func InitBookingCache() {
	BookingCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisBookingDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := BookingCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Booking): %v", err)
	}
}

// GetBookingCacheClient returns the booking state client.
func GetBookingCacheClient() *redis.Client {
	if BookingCacheClient == nil {
		InitBookingCache()
	}
	return BookingCacheClient
}

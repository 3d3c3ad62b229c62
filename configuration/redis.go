package configuration

import (
	"context"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var ctx = context.Background()

// Client variable can be used to save key value pairs in redis
var Client *redis.Client

// InitRedis function initializes the redis client. Redis only backs the
// signup OTP flow and the admin stats cache, so a missing server degrades
// those paths instead of stopping the application.
func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	var err error
	MaxRetries := 5
	RetryDelay := time.Second * 5
	for i := 0; i < MaxRetries; i++ {
		Client = redis.NewClient(&redis.Options{
			Network:  "tcp",
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       0,
		})

		_, err = Client.Ping(ctx).Result()
		if err == nil {
			break
		}

		Log.WithError(err).Warnf("Failed to connect to Redis (Attempt %d/%d)", i+1, MaxRetries)
		time.Sleep(RetryDelay)
	}
	if err != nil {
		Log.WithError(err).Error("Redis unavailable, OTP signup and stats caching disabled")
		Client = nil
	}
}

// SetRedis will set a key value in redis server
func SetRedis(key string, value any, expirationTime time.Duration) error {
	if err := Client.Set(context.Background(), key, value, expirationTime).Err(); err != nil {
		return err
	}
	return nil
}

// GetRedis will get the value from redis server using key
func GetRedis(key string) (string, error) {
	jsonData, err := Client.Get(context.Background(), key).Result()
	if err != nil {
		return "", err
	}
	return jsonData, nil
}

// DelRedis removes a key from redis server
func DelRedis(key string) error {
	return Client.Del(context.Background(), key).Err()
}

package database

import (
	"context"
	"fmt"
	"log"
	"mycare-service/internal/app/config"

	"github.com/redis/go-redis/v9"
)

func NewRedisClient(driverConfig *config.DriverConfig) *redis.Client {
	redisAddress := fmt.Sprintf("%s:%s", driverConfig.Redis.Host, driverConfig.Redis.Port)
	client := redis.NewClient(&redis.Options{
		Addr:     redisAddress,
		Password: driverConfig.Redis.Password,
		DB:       driverConfig.Redis.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to ping or test the connection to redis: %s", err.Error())
	}
	log.Println("Successfully connected to redis")
	return client
}

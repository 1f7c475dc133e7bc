package client

import (
	"github.com/redis/go-redis/v9"

	"yuancity-finance-portal/internal/config"
)

func InitRedisClient(cfg *config.Redis) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

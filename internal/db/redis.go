package db

import (
	"context"

	"github.com/mauops/mau-backend/internal/config"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// NewRedis connects to redis when an address is configured; a nil client
// means single-instance mode with no cross-instance cache eviction.
func NewRedis(conf *config.Config) *redis.Client {
	if conf.Redis.Addr == "" {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     conf.Redis.Addr,
		DB:       conf.Redis.DB,
		Username: conf.Redis.Username,
		Password: conf.Redis.Password,
	})
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		panic(errors.WithMessage(err, "failed to ping redis"))
	}
	return rdb
}

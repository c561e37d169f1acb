package bootstrap

import (
	"context"

	"roomstay/internal/infra/cache"
	"roomstay/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
		NewRoomCache,
	),
)

func NewRedis(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	client, cleanup, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return client, nil
}

func NewRoomCache(client *redis.Client, cfg config.Config) *cache.RoomCache {
	return cache.NewRoomCache(client, cfg.Redis.RoomTTL)
}

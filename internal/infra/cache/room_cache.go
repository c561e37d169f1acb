package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"roomstay/internal/infra/observability"
	"roomstay/internal/pkg/config"
	"roomstay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const roomKeyPrefix = "room:view:"

// RoomCache keeps serialized room views in redis. It backs both the read
// side (lookup before the database) and the write side (invalidation after
// a committed change).
type RoomCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRoomCache(client *redis.Client, ttl time.Duration) *RoomCache {
	return &RoomCache{client: client, ttl: ttl}
}

func NewRedisClient(cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err.Error())
		}
	}
	return client, cleanup, nil
}

func (c *RoomCache) GetRoom(ctx context.Context, id uuid.UUID) (*queries.RoomView, bool, error) {
	raw, err := c.client.Get(ctx, roomKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		observability.ObserveCache("room_view", "miss")
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var view queries.RoomView
	if err := json.Unmarshal(raw, &view); err != nil {
		return nil, false, err
	}
	observability.ObserveCache("room_view", "hit")
	return &view, true, nil
}

func (c *RoomCache) SetRoom(ctx context.Context, view *queries.RoomView) error {
	raw, err := json.Marshal(view)
	if err != nil {
		return err
	}
	observability.ObserveCache("room_view", "set")
	return c.client.Set(ctx, roomKey(view.ID), raw, c.ttl).Err()
}

// InvalidateRoom is best-effort: a failed delete only means one stale read
// until the TTL expires, so it logs instead of failing the caller.
func (c *RoomCache) InvalidateRoom(ctx context.Context, roomID uuid.UUID) {
	observability.ObserveCache("room_view", "del")
	if err := c.client.Del(ctx, roomKey(roomID)).Err(); err != nil {
		slog.Warn("room cache invalidation failed", "room_id", roomID, "error", err.Error())
	}
}

func roomKey(id uuid.UUID) string {
	return roomKeyPrefix + id.String()
}

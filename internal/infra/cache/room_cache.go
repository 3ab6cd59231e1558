package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"hotel-booking-api/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const availableRoomsKey = "rooms:available"

// CachedRoomReadStore is a read-through cache over the room listing. Redis
// failures are logged and fall through to the database, never surfaced to
// callers. Room inventory only changes at seed time, so a short TTL is the
// only invalidation needed.
type CachedRoomReadStore struct {
	inner  queries.RoomReadStore
	client *redis.Client
	ttl    time.Duration
}

func NewCachedRoomReadStore(inner queries.RoomReadStore, client *redis.Client, ttl time.Duration) *CachedRoomReadStore {
	return &CachedRoomReadStore{
		inner:  inner,
		client: client,
		ttl:    ttl,
	}
}

func (c *CachedRoomReadStore) FindAvailable(ctx context.Context) ([]*queries.RoomView, error) {
	if cached, err := c.client.Get(ctx, availableRoomsKey).Bytes(); err == nil {
		var rooms []*queries.RoomView
		if err := json.Unmarshal(cached, &rooms); err == nil {
			return rooms, nil
		}
		slog.Warn("discarding unreadable room cache entry", "key", availableRoomsKey)
	} else if err != redis.Nil {
		slog.Warn("room cache read failed", "error", err.Error())
	}

	rooms, err := c.inner.FindAvailable(ctx)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(rooms); err == nil {
		if err := c.client.Set(ctx, availableRoomsKey, encoded, c.ttl).Err(); err != nil {
			slog.Warn("room cache write failed", "error", err.Error())
		}
	}

	return rooms, nil
}

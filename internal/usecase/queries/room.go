package queries

import (
	"context"
	"log/slog"

	"roomstay/internal/infra"
	"roomstay/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRoomNotFound = errs.New("room not found")

type RoomFilters struct {
	MinPriceCents *int64
	MaxPriceCents *int64
}

type RoomQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	List(ctx context.Context, filters RoomFilters) ([]*RoomListItem, error)
}

type RoomReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	FindAll(ctx context.Context, filters RoomFilters) ([]*RoomListItem, error)
}

// RoomViewCache sits in front of the read store for single-room lookups.
// A miss returns found=false with a nil error; cache failures are soft.
type RoomViewCache interface {
	GetRoom(ctx context.Context, id uuid.UUID) (*RoomView, bool, error)
	SetRoom(ctx context.Context, view *RoomView) error
}

type roomQueriesImpl struct {
	readStore RoomReadStore
	cache     RoomViewCache
}

func NewRoomQueries(readStore RoomReadStore, cache RoomViewCache) RoomQueries {
	return &roomQueriesImpl{readStore: readStore, cache: cache}
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	if view, found, err := q.cache.GetRoom(ctx, id); err != nil {
		slog.Warn("room cache read failed", "room_id", id, "error", err.Error())
	} else if found {
		return view, nil
	}

	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	if err := q.cache.SetRoom(ctx, view); err != nil {
		slog.Warn("room cache write failed", "room_id", id, "error", err.Error())
	}
	return view, nil
}

func (q *roomQueriesImpl) List(ctx context.Context, filters RoomFilters) ([]*RoomListItem, error) {
	return q.readStore.FindAll(ctx, filters)
}

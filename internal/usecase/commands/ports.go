package commands

import (
	"context"

	"github.com/google/uuid"
)

// RoomViewInvalidator drops the cached projection of a room after any write
// that changes what a reader would see (occupancy, rating, patched fields).
type RoomViewInvalidator interface {
	InvalidateRoom(ctx context.Context, roomID uuid.UUID)
}

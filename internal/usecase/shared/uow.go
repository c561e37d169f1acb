package shared

import (
	"context"
	"time"

	"roomstay/internal/domain/booking"
	"roomstay/internal/domain/review"
	"roomstay/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Rooms() RoomRepository
	Reviews() ReviewRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	RoomByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
	// RoomForUpdate row-locks the room; only meaningful inside Within.
	RoomForUpdate(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	ReviewExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	UpdateDates(ctx context.Context, tx db.DBTX, id uuid.UUID, checkIn, checkOut time.Time) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type RoomRepository interface {
	// Occupy sets the slot only when it is currently free; a held slot
	// surfaces as KindPreconditionFailed.
	Occupy(ctx context.Context, tx db.DBTX, roomID, bookingID uuid.UUID) error
	Release(ctx context.Context, tx db.DBTX, roomID uuid.UUID) error
	UpdateRating(ctx context.Context, tx db.DBTX, roomID uuid.UUID, rating float64, reviewCount int32) error
	UpdateFields(ctx context.Context, tx db.DBTX, roomID uuid.UUID, fields RoomPatch) error
}

type ReviewRepository interface {
	Create(ctx context.Context, tx db.DBTX, rev *review.Review) (uuid.UUID, error)
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}

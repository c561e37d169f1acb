package repository

import (
	"context"
	"errors"
	"time"

	"roomstay/internal/domain/booking"
	"roomstay/internal/infra"
	"roomstay/internal/infra/db"
	"roomstay/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	const query = `
		INSERT INTO bookings (id, room_id, booked_by, check_in, check_out, guest_name, guest_phone, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := dbtx.Exec(ctx, query,
		b.ID(), b.RoomID(), b.BookedBy(),
		b.Period().CheckIn(), b.Period().CheckOut(),
		b.GuestName(), b.GuestPhone(), b.CreatedAt(),
	)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create booking", err)
	}
	return b.ID(), nil
}

func (r *BookingRepository) UpdateDates(ctx context.Context, dbtx db.DBTX, id uuid.UUID, checkIn, checkOut time.Time) error {
	const query = `
		UPDATE bookings SET check_in = $2, check_out = $3 WHERE id = $1
	`
	tag, err := dbtx.Exec(ctx, query, id, checkIn, checkOut)
	if err != nil {
		return wrapWriteErr("failed to update booking dates", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return wrapWriteErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

// FindBookingSnapshot reads the command-side projection of a booking.
func FindBookingSnapshot(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.BookingSnapshot, error) {
	const query = `
		SELECT id, room_id, booked_by, check_in, check_out, guest_name, guest_phone
		FROM bookings
		WHERE id = $1
	`
	var snap shared.BookingSnapshot
	err := dbtx.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.RoomID, &snap.BookedBy,
		&snap.CheckIn, &snap.CheckOut,
		&snap.GuestName, &snap.GuestPhone,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return &snap, nil
}

package readstore

import (
	"context"
	"errors"

	"roomstay/internal/infra"
	"roomstay/internal/infra/db"
	"roomstay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingReadStore struct {
	dbtx db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{dbtx: dbtx}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	const query = `
		SELECT b.id, b.room_id, r.name, b.booked_by, b.check_in, b.check_out,
		       b.guest_name, b.guest_phone, b.created_at
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		WHERE b.id = $1
	`
	var view queries.BookingView
	err := r.dbtx.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.RoomID, &view.RoomName, &view.BookedBy,
		&view.CheckIn, &view.CheckOut,
		&view.GuestName, &view.GuestPhone, &view.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return &view, nil
}

func (r *BookingReadStore) FindByOwner(ctx context.Context, ownerEmail string) ([]*queries.BookingView, error) {
	const query = `
		SELECT b.id, b.room_id, r.name, b.booked_by, b.check_in, b.check_out,
		       b.guest_name, b.guest_phone, b.created_at
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		WHERE b.booked_by = $1
		ORDER BY b.check_in, b.id
	`
	rows, err := r.dbtx.Query(ctx, query, ownerEmail)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	views := []*queries.BookingView{}
	for rows.Next() {
		var view queries.BookingView
		if err := rows.Scan(
			&view.ID, &view.RoomID, &view.RoomName, &view.BookedBy,
			&view.CheckIn, &view.CheckOut,
			&view.GuestName, &view.GuestPhone, &view.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	return views, nil
}

package readstore

import (
	"context"
	"errors"
	"time"

	"roomstay/internal/domain/room"
	"roomstay/internal/infra"
	"roomstay/internal/infra/db"
	"roomstay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RoomReadStore struct {
	dbtx db.DBTX
}

func NewRoomReadStore(dbtx db.DBTX) *RoomReadStore {
	return &RoomReadStore{dbtx: dbtx}
}

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	const query = `
		SELECT r.id, r.name, r.description, r.image_url, r.price_cents,
		       r.booking_id, r.rating, r.review_count, r.created_at, r.updated_at,
		       d.id, d.title, d.percent_off, d.description, d.valid_until
		FROM rooms r
		LEFT JOIN discounts d ON d.id = r.special_offer_id
		WHERE r.id = $1
	`
	view, err := scanRoomView(r.dbtx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room", err)
	}
	return view, nil
}

func (r *RoomReadStore) FindAll(ctx context.Context, filters queries.RoomFilters) ([]*queries.RoomListItem, error) {
	const query = `
		SELECT id, name, image_url, price_cents, booking_id, rating, review_count
		FROM rooms
		WHERE ($1::bigint IS NULL OR price_cents >= $1)
		  AND ($2::bigint IS NULL OR price_cents <= $2)
		ORDER BY price_cents, id
	`
	rows, err := r.dbtx.Query(ctx, query, filters.MinPriceCents, filters.MaxPriceCents)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	items := []*queries.RoomListItem{}
	for rows.Next() {
		var item queries.RoomListItem
		var bookingID *uuid.UUID
		if err := rows.Scan(
			&item.ID, &item.Name, &item.ImageURL, &item.PriceCents,
			&bookingID, &item.Rating, &item.ReviewCount,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		item.BookingStatus = string(room.FromBookingRef(bookingID).Status())
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	return items, nil
}

func scanRoomView(row pgx.Row) (*queries.RoomView, error) {
	var view queries.RoomView
	var bookingID *uuid.UUID
	var offerID *uuid.UUID
	var offerTitle, offerDescription *string
	var offerPercent *float64
	var offerValidUntil *time.Time

	err := row.Scan(
		&view.ID, &view.Name, &view.Description, &view.ImageURL, &view.PriceCents,
		&bookingID, &view.Rating, &view.ReviewCount, &view.CreatedAt, &view.UpdatedAt,
		&offerID, &offerTitle, &offerPercent, &offerDescription, &offerValidUntil,
	)
	if err != nil {
		return nil, err
	}

	view.BookingStatus = string(room.FromBookingRef(bookingID).Status())
	if offerID != nil {
		view.SpecialOffer = &queries.DiscountView{
			ID:         *offerID,
			Title:      derefString(offerTitle),
			PercentOff: derefFloat(offerPercent),
			ValidUntil: offerValidUntil,
		}
		view.SpecialOffer.Description = derefString(offerDescription)
	}
	return &view, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefFloat(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

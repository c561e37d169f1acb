package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"roomstay/internal/infra"
	"roomstay/internal/infra/db"
	"roomstay/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RoomRepository struct{}

func NewRoomRepository() *RoomRepository {
	return &RoomRepository{}
}

// Occupy claims the slot with a conditional update: it only succeeds while
// booking_id is NULL, so two concurrent bookings cannot both win the room.
func (r *RoomRepository) Occupy(ctx context.Context, dbtx db.DBTX, roomID, bookingID uuid.UUID) error {
	const query = `
		UPDATE rooms SET booking_id = $2, updated_at = now()
		WHERE id = $1 AND booking_id IS NULL
	`
	tag, err := dbtx.Exec(ctx, query, roomID, bookingID)
	if err != nil {
		return wrapWriteErr("failed to occupy room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room slot is held", nil, infra.KindPreconditionFailed)
	}
	return nil
}

func (r *RoomRepository) Release(ctx context.Context, dbtx db.DBTX, roomID uuid.UUID) error {
	const query = `
		UPDATE rooms SET booking_id = NULL, updated_at = now() WHERE id = $1
	`
	tag, err := dbtx.Exec(ctx, query, roomID)
	if err != nil {
		return wrapWriteErr("failed to release room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *RoomRepository) UpdateRating(ctx context.Context, dbtx db.DBTX, roomID uuid.UUID, rating float64, reviewCount int32) error {
	const query = `
		UPDATE rooms SET rating = $2, review_count = $3, updated_at = now() WHERE id = $1
	`
	tag, err := dbtx.Exec(ctx, query, roomID, rating, reviewCount)
	if err != nil {
		return wrapWriteErr("failed to update room rating", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *RoomRepository) UpdateFields(ctx context.Context, dbtx db.DBTX, roomID uuid.UUID, fields shared.RoomPatch) error {
	sets := make([]string, 0, 6)
	args := []any{roomID}

	appendSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if fields.Name != nil {
		appendSet("name", *fields.Name)
	}
	if fields.Description != nil {
		appendSet("description", *fields.Description)
	}
	if fields.ImageURL != nil {
		appendSet("image_url", *fields.ImageURL)
	}
	if fields.PriceCents != nil {
		appendSet("price_cents", *fields.PriceCents)
	}
	if fields.ClearOffer {
		sets = append(sets, "special_offer_id = NULL")
	} else if fields.SpecialOfferID != nil {
		appendSet("special_offer_id", *fields.SpecialOfferID)
	}
	if len(sets) == 0 {
		return nil
	}
	sets = append(sets, "updated_at = now()")

	query := fmt.Sprintf("UPDATE rooms SET %s WHERE id = $1", strings.Join(sets, ", "))
	tag, err := dbtx.Exec(ctx, query, args...)
	if err != nil {
		return wrapWriteErr("failed to update room fields", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

// FindRoomSnapshot reads the command-side projection of a room. With
// forUpdate the row stays locked until the surrounding transaction ends.
func FindRoomSnapshot(ctx context.Context, dbtx db.DBTX, id uuid.UUID, forUpdate bool) (*shared.RoomSnapshot, error) {
	query := `
		SELECT id, name, price_cents, booking_id, special_offer_id, rating, review_count
		FROM rooms
		WHERE id = $1
	`
	if forUpdate {
		query += " FOR UPDATE"
	}

	var snap shared.RoomSnapshot
	err := dbtx.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.Name, &snap.PriceCents,
		&snap.BookingID, &snap.SpecialOfferID,
		&snap.Rating, &snap.ReviewCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room", err)
	}
	return &snap, nil
}

package repository

import (
	"context"

	"roomstay/internal/domain/review"
	"roomstay/internal/infra"
	"roomstay/internal/infra/db"

	"github.com/google/uuid"
)

type ReviewRepository struct{}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

func (r *ReviewRepository) Create(ctx context.Context, dbtx db.DBTX, rev *review.Review) (uuid.UUID, error) {
	const query = `
		INSERT INTO reviews (id, booking_id, room_id, reviewer_email, reviewer_name, reviewer_image, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	reviewer := rev.Reviewer()
	_, err := dbtx.Exec(ctx, query,
		rev.ID(), rev.BookingID(), rev.RoomID(),
		reviewer.Email(), reviewer.Name(), reviewer.Image(),
		rev.Rating().Value(), rev.Comment().String(), rev.CreatedAt(),
	)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create review", err)
	}
	return rev.ID(), nil
}

// ReviewExistsForBooking is the cheap precheck before the unique index on
// booking_id gets the final word inside the transaction.
func ReviewExistsForBooking(ctx context.Context, dbtx db.DBTX, bookingID uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM reviews WHERE booking_id = $1)`
	var exists bool
	if err := dbtx.QueryRow(ctx, query, bookingID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check review existence", err)
	}
	return exists, nil
}

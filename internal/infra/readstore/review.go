package readstore

import (
	"context"
	"time"

	"roomstay/internal/infra"
	"roomstay/internal/infra/db"
	"roomstay/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewReadStore struct {
	dbtx db.DBTX
}

func NewReviewReadStore(dbtx db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{dbtx: dbtx}
}

func (r *ReviewReadStore) FindFirstPage(ctx context.Context, roomID *uuid.UUID, limit int32) ([]*queries.ReviewListItem, error) {
	const query = `
		SELECT id, room_id, reviewer_name, reviewer_image, rating, comment, created_at
		FROM reviews
		WHERE ($1::uuid IS NULL OR room_id = $1)
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`
	return r.queryItems(ctx, query, roomID, limit)
}

func (r *ReviewReadStore) FindKeyset(ctx context.Context, roomID *uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReviewListItem, error) {
	const query = `
		SELECT id, room_id, reviewer_name, reviewer_image, rating, comment, created_at
		FROM reviews
		WHERE ($1::uuid IS NULL OR room_id = $1)
		  AND (created_at, id) < ($2, $3)
		ORDER BY created_at DESC, id DESC
		LIMIT $4
	`
	return r.queryItems(ctx, query, roomID, lastCreatedAt, lastID, limit)
}

func (r *ReviewReadStore) queryItems(ctx context.Context, query string, args ...any) ([]*queries.ReviewListItem, error) {
	rows, err := r.dbtx.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews", err)
	}
	defer rows.Close()

	items := []*queries.ReviewListItem{}
	for rows.Next() {
		var item queries.ReviewListItem
		if err := rows.Scan(
			&item.ID, &item.RoomID, &item.ReviewerName, &item.ReviewerImage,
			&item.Rating, &item.Comment, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan review row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews", err)
	}
	return items, nil
}

//go:build unit || e2e

package builder

import (
	"time"

	domroom "roomstay/internal/domain/room"
	"roomstay/internal/usecase/queries"
	"roomstay/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RoomBuilder struct {
	ID             uuid.UUID
	Name           string
	Description    string
	ImageURL       string
	PriceCents     int64
	BookingID      *uuid.UUID
	SpecialOfferID *uuid.UUID
	Rating         float64
	ReviewCount    int32
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewRoomBuilder() *RoomBuilder {
	now := time.Now()
	return &RoomBuilder{
		ID:          uuid.New(),
		Name:        "Garden View Suite",
		Description: "Quiet suite overlooking the garden",
		ImageURL:    "https://example.com/rooms/garden.jpg",
		PriceCents:  12900,
		Rating:      0,
		ReviewCount: 0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (r *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(r)
	return r
}

func (r *RoomBuilder) WithID(id uuid.UUID) *RoomBuilder {
	r.ID = id
	return r
}

func (r *RoomBuilder) WithPriceCents(price int64) *RoomBuilder {
	r.PriceCents = price
	return r
}

func (r *RoomBuilder) WithBookingID(id uuid.UUID) *RoomBuilder {
	r.BookingID = &id
	return r
}

func (r *RoomBuilder) WithoutBooking() *RoomBuilder {
	r.BookingID = nil
	return r
}

func (r *RoomBuilder) WithRating(average float64, count int32) *RoomBuilder {
	r.Rating = average
	r.ReviewCount = count
	return r
}

// Build methods
func (r *RoomBuilder) BuildDomain() *domroom.Room {
	return domroom.Reconstruct(
		r.ID, r.Name, r.Description, r.ImageURL, r.PriceCents,
		domroom.FromBookingRef(r.BookingID), r.SpecialOfferID,
		domroom.NewAggregateRating(r.Rating, r.ReviewCount),
		r.CreatedAt, r.UpdatedAt,
	)
}

func (r *RoomBuilder) BuildSnapshot() *shared.RoomSnapshot {
	return &shared.RoomSnapshot{
		ID:             r.ID,
		Name:           r.Name,
		PriceCents:     r.PriceCents,
		BookingID:      r.BookingID,
		SpecialOfferID: r.SpecialOfferID,
		Rating:         r.Rating,
		ReviewCount:    r.ReviewCount,
	}
}

func (r *RoomBuilder) BuildView() *queries.RoomView {
	return &queries.RoomView{
		ID:            r.ID,
		Name:          r.Name,
		Description:   r.Description,
		ImageURL:      r.ImageURL,
		PriceCents:    r.PriceCents,
		BookingStatus: string(domroom.FromBookingRef(r.BookingID).Status()),
		Rating:        r.Rating,
		ReviewCount:   r.ReviewCount,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func (r *RoomBuilder) BuildListItem() *queries.RoomListItem {
	view := r.BuildView()
	var item queries.RoomListItem
	_ = copier.Copy(&item, view)
	return &item
}

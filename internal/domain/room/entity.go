package room

import (
	"time"

	"github.com/google/uuid"
)

type Room struct {
	id             uuid.UUID
	name           string
	description    string
	imageURL       string
	priceCents     int64
	occupancy      Occupancy
	specialOfferID *uuid.UUID
	rating         AggregateRating
	createdAt      time.Time
	updatedAt      time.Time
}

func NewRoom(name, description, imageURL string, priceCents int64, specialOfferID *uuid.UUID) *Room {
	return &Room{
		id:             uuid.New(),
		name:           name,
		description:    description,
		imageURL:       imageURL,
		priceCents:     priceCents,
		occupancy:      Free(),
		specialOfferID: specialOfferID,
	}
}

func Reconstruct(id uuid.UUID, name, description, imageURL string, priceCents int64, occupancy Occupancy, specialOfferID *uuid.UUID, rating AggregateRating, createdAt, updatedAt time.Time) *Room {
	return &Room{
		id:             id,
		name:           name,
		description:    description,
		imageURL:       imageURL,
		priceCents:     priceCents,
		occupancy:      occupancy,
		specialOfferID: specialOfferID,
		rating:         rating,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (r *Room) ID() uuid.UUID              { return r.id }
func (r *Room) Name() string               { return r.name }
func (r *Room) Description() string        { return r.description }
func (r *Room) ImageURL() string           { return r.imageURL }
func (r *Room) PriceCents() int64          { return r.priceCents }
func (r *Room) Occupancy() Occupancy       { return r.occupancy }
func (r *Room) SpecialOfferID() *uuid.UUID { return r.specialOfferID }
func (r *Room) Rating() AggregateRating    { return r.rating }
func (r *Room) CreatedAt() time.Time       { return r.createdAt }
func (r *Room) UpdatedAt() time.Time       { return r.updatedAt }

// Occupy transitions the slot to a booking. The persistence layer enforces
// the same rule with a conditional update; this guards in-memory use.
func (r *Room) Occupy(bookingID uuid.UUID) error {
	if !r.occupancy.IsFree() {
		return ErrAlreadyOccupied
	}
	r.occupancy = OccupiedBy(bookingID)
	return nil
}

func (r *Room) Release() {
	r.occupancy = Free()
}

func (r *Room) ApplyReview(score int) error {
	next, err := r.rating.Add(score)
	if err != nil {
		return err
	}
	r.rating = next
	return nil
}

package room

import (
	"errors"
	"math"

	"github.com/google/uuid"
)

var (
	ErrAlreadyOccupied = errors.New("room is already occupied")
	ErrNotOccupied     = errors.New("room is not occupied")
	ErrInvalidScore    = errors.New("review score must be between 1 and 5")
)

type BookingStatus string

const (
	StatusAvailable   BookingStatus = "available"
	StatusUnavailable BookingStatus = "unavailable"
)

// Occupancy is the single-slot reservation state of a room: either free or
// held by exactly one booking. The zero value is free.
type Occupancy struct {
	bookingID *uuid.UUID
}

func Free() Occupancy {
	return Occupancy{}
}

func OccupiedBy(bookingID uuid.UUID) Occupancy {
	return Occupancy{bookingID: &bookingID}
}

// FromBookingRef builds an Occupancy from a nullable booking reference as
// stored in the rooms table.
func FromBookingRef(bookingID *uuid.UUID) Occupancy {
	if bookingID == nil {
		return Occupancy{}
	}
	id := *bookingID
	return Occupancy{bookingID: &id}
}

func (o Occupancy) IsFree() bool {
	return o.bookingID == nil
}

func (o Occupancy) BookingID() (uuid.UUID, bool) {
	if o.bookingID == nil {
		return uuid.Nil, false
	}
	return *o.bookingID, true
}

func (o Occupancy) Status() BookingStatus {
	if o.IsFree() {
		return StatusAvailable
	}
	return StatusUnavailable
}

// AggregateRating is the derived pair stored on a room: the mean of all
// admitted review scores rounded to 2 decimals, and how many there are.
type AggregateRating struct {
	average float64
	count   int32
}

func NewAggregateRating(average float64, count int32) AggregateRating {
	return AggregateRating{average: average, count: count}
}

func (r AggregateRating) Average() float64 { return r.average }
func (r AggregateRating) Count() int32     { return r.count }

// Add folds one new score into the mean without re-scanning prior reviews.
func (r AggregateRating) Add(score int) (AggregateRating, error) {
	if score < 1 || score > 5 {
		return AggregateRating{}, ErrInvalidScore
	}
	next := (r.average*float64(r.count) + float64(score)) / float64(r.count+1)
	return AggregateRating{average: round2(next), count: r.count + 1}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

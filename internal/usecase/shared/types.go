package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on read-side query types
type RoomSnapshot struct {
	ID             uuid.UUID
	Name           string
	PriceCents     int64
	BookingID      *uuid.UUID
	SpecialOfferID *uuid.UUID
	Rating         float64
	ReviewCount    int32
}

type BookingSnapshot struct {
	ID         uuid.UUID
	RoomID     uuid.UUID
	BookedBy   string
	CheckIn    time.Time
	CheckOut   time.Time
	GuestName  string
	GuestPhone string
}

// RoomPatch carries the optional room fields a PATCH may touch;
// nil means "leave unchanged".
type RoomPatch struct {
	Name           *string
	Description    *string
	ImageURL       *string
	PriceCents     *int64
	SpecialOfferID *uuid.UUID
	ClearOffer     bool
}

func (p RoomPatch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.ImageURL == nil &&
		p.PriceCents == nil && p.SpecialOfferID == nil && !p.ClearOffer
}

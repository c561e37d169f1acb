package queries

import (
	"time"

	"github.com/google/uuid"
)

// DiscountView represents read-optimized discount data, inlined into room
// views when the room carries a special offer.
type DiscountView struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	PercentOff  float64    `json:"percent_off"`
	Description string     `json:"description,omitempty"`
	ValidUntil  *time.Time `json:"valid_until,omitempty"`
}

// RoomView represents read-optimized room data. The occupancy slot itself is
// never serialized; readers only see the derived booking status.
type RoomView struct {
	ID            uuid.UUID     `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description,omitempty"`
	ImageURL      string        `json:"image_url,omitempty"`
	PriceCents    int64         `json:"price_cents"`
	BookingStatus string        `json:"booking_status"`
	SpecialOffer  *DiscountView `json:"special_offer,omitempty"`
	Rating        float64       `json:"rating"`
	ReviewCount   int32         `json:"review_count"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

type RoomListItem struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	ImageURL      string    `json:"image_url,omitempty"`
	PriceCents    int64     `json:"price_cents"`
	BookingStatus string    `json:"booking_status"`
	Rating        float64   `json:"rating"`
	ReviewCount   int32     `json:"review_count"`
}

type BookingView struct {
	ID         uuid.UUID `json:"id"`
	RoomID     uuid.UUID `json:"room_id"`
	RoomName   string    `json:"room_name"`
	BookedBy   string    `json:"booked_by"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	GuestName  string    `json:"guest_name"`
	GuestPhone string    `json:"guest_phone"`
	CreatedAt  time.Time `json:"created_at"`
}

// ReviewListItem is the public projection of a review. The reviewer's email
// stays server-side; only the display name and image are exposed.
type ReviewListItem struct {
	ID            uuid.UUID `json:"id"`
	RoomID        uuid.UUID `json:"room_id"`
	ReviewerName  string    `json:"reviewer_name"`
	ReviewerImage string    `json:"reviewer_image,omitempty"`
	Rating        int32     `json:"rating"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"created_at"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Name     string    `json:"name"`
	ImageURL string    `json:"image_url,omitempty"`
	IsActive bool      `json:"is_active"`
}

package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID     uuid.UUID `json:"room_id" binding:"required"`
	BookedBy   string    `json:"booked_by" binding:"required,email"`
	CheckIn    time.Time `json:"check_in" binding:"required"`
	CheckOut   time.Time `json:"check_out" binding:"required"`
	GuestName  string    `json:"guest_name" binding:"required"`
	GuestPhone string    `json:"guest_phone"`
}

type UpdateBookingDatesRequest struct {
	CheckIn  *time.Time `json:"check_in,omitempty"`
	CheckOut *time.Time `json:"check_out,omitempty"`
}

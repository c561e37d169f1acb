package response

import (
	"roomstay/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingCreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

type BookingListResponse struct {
	Bookings []*queries.BookingView `json:"bookings"`
}

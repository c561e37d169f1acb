package request

import (
	"github.com/google/uuid"
)

type ReviewerProfile struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name" binding:"required"`
	Image string `json:"image"`
}

type SubmitReviewRequest struct {
	BookingID uuid.UUID       `json:"booking_id" binding:"required"`
	RoomID    uuid.UUID       `json:"room_id" binding:"required"`
	User      ReviewerProfile `json:"user" binding:"required"`
	Rating    int             `json:"rating" binding:"required,min=1,max=5"`
	Comment   string          `json:"comment" binding:"required"`
}

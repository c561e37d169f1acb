package review

import (
	"time"

	"github.com/google/uuid"
)

// Review is immutable once created: there is no update or delete path.
type Review struct {
	id        uuid.UUID
	bookingID uuid.UUID
	roomID    uuid.UUID
	reviewer  Reviewer
	rating    Rating
	comment   Comment
	createdAt time.Time
}

func NewReview(bookingID, roomID uuid.UUID, reviewer Reviewer, rating Rating, comment Comment, now time.Time) *Review {
	return &Review{
		id:        uuid.New(),
		bookingID: bookingID,
		roomID:    roomID,
		reviewer:  reviewer,
		rating:    rating,
		comment:   comment,
		createdAt: now,
	}
}

func (r *Review) ID() uuid.UUID        { return r.id }
func (r *Review) BookingID() uuid.UUID { return r.bookingID }
func (r *Review) RoomID() uuid.UUID    { return r.roomID }
func (r *Review) Reviewer() Reviewer   { return r.reviewer }
func (r *Review) Rating() Rating       { return r.rating }
func (r *Review) Comment() Comment     { return r.comment }
func (r *Review) CreatedAt() time.Time { return r.createdAt }

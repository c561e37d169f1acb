package booking

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	id         uuid.UUID
	roomID     uuid.UUID
	bookedBy   string
	period     StayPeriod
	guestName  string
	guestPhone string
	createdAt  time.Time
}

func NewBooking(roomID uuid.UUID, bookedBy string, period StayPeriod, guestName, guestPhone string, now time.Time) *Booking {
	return &Booking{
		id:         uuid.New(),
		roomID:     roomID,
		bookedBy:   bookedBy,
		period:     period,
		guestName:  guestName,
		guestPhone: guestPhone,
		createdAt:  now,
	}
}

func Reconstruct(id, roomID uuid.UUID, bookedBy string, period StayPeriod, guestName, guestPhone string, createdAt time.Time) *Booking {
	return &Booking{
		id:         id,
		roomID:     roomID,
		bookedBy:   bookedBy,
		period:     period,
		guestName:  guestName,
		guestPhone: guestPhone,
		createdAt:  createdAt,
	}
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) RoomID() uuid.UUID    { return b.roomID }
func (b *Booking) BookedBy() string     { return b.bookedBy }
func (b *Booking) Period() StayPeriod   { return b.period }
func (b *Booking) GuestName() string    { return b.guestName }
func (b *Booking) GuestPhone() string   { return b.guestPhone }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }

func (b *Booking) IsOwnedBy(email string) bool {
	return b.bookedBy == email
}

// Reschedule replaces the stay dates. The single-slot occupancy model means
// no cross-booking validation is needed here.
func (b *Booking) Reschedule(period StayPeriod) {
	b.period = period
}

func (b *Booking) CancellableAt(now time.Time, policy CancellationPolicy) error {
	if !policy.CanCancel(now, b.period.CheckIn()) {
		return ErrCancellationClosed
	}
	return nil
}

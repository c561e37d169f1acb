//go:build unit || e2e

package builder

import (
	"time"

	dombooking "roomstay/internal/domain/booking"
	reqdto "roomstay/internal/handler/dto/request"
	"roomstay/internal/usecase/commands"
	"roomstay/internal/usecase/queries"
	"roomstay/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID         uuid.UUID
	RoomID     uuid.UUID
	BookedBy   string
	CheckIn    time.Time
	CheckOut   time.Time
	GuestName  string
	GuestPhone string
	CreatedAt  time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now().UTC()
	return &BookingBuilder{
		ID:         uuid.New(),
		RoomID:     uuid.New(),
		BookedBy:   "guest@example.com",
		CheckIn:    now.AddDate(0, 0, 7),
		CheckOut:   now.AddDate(0, 0, 10),
		GuestName:  "Test Guest",
		GuestPhone: "+1-555-0100",
		CreatedAt:  now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithRoomID(id uuid.UUID) *BookingBuilder {
	b.RoomID = id
	return b
}

func (b *BookingBuilder) WithBookedBy(email string) *BookingBuilder {
	b.BookedBy = email
	return b
}

func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time) *BookingBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	period, err := dombooking.NewStayPeriod(b.CheckIn, b.CheckOut)
	if err != nil {
		return nil, err
	}
	return dombooking.NewBooking(b.RoomID, b.BookedBy, period, b.GuestName, b.GuestPhone, b.CreatedAt), nil
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		RoomID:     b.RoomID,
		BookedBy:   b.BookedBy,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		GuestName:  b.GuestName,
		GuestPhone: b.GuestPhone,
	}
}

func (b *BookingBuilder) BuildCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		RoomID:     b.RoomID,
		BookedBy:   b.BookedBy,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		GuestName:  b.GuestName,
		GuestPhone: b.GuestPhone,
	}
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:         b.ID,
		RoomID:     b.RoomID,
		BookedBy:   b.BookedBy,
		CheckIn:    truncateToDate(b.CheckIn),
		CheckOut:   truncateToDate(b.CheckOut),
		GuestName:  b.GuestName,
		GuestPhone: b.GuestPhone,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:         b.ID,
		RoomID:     b.RoomID,
		RoomName:   "Garden View Suite",
		BookedBy:   b.BookedBy,
		CheckIn:    truncateToDate(b.CheckIn),
		CheckOut:   truncateToDate(b.CheckOut),
		GuestName:  b.GuestName,
		GuestPhone: b.GuestPhone,
		CreatedAt:  b.CreatedAt,
	}
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

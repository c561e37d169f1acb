package commands

import (
	"context"
	"time"

	dombooking "roomstay/internal/domain/booking"
	"roomstay/internal/domain/room"
	"roomstay/internal/infra"
	"roomstay/internal/pkg/clock"
	"roomstay/internal/pkg/errs"
	"roomstay/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrNotOwner                = errs.New("caller does not own this resource")
	ErrRoomNotFound            = errs.New("room not found")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrRoomAlreadyBooked       = errs.New("room already booked")
	ErrCancellationClosed      = errs.New("cancellation window has closed")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateBookingRequest struct {
	RoomID     uuid.UUID
	BookedBy   string
	CheckIn    time.Time
	CheckOut   time.Time
	GuestName  string
	GuestPhone string
}

type BookingDatesPatch struct {
	CheckIn  *time.Time
	CheckOut *time.Time
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, callerEmail string, req CreateBookingRequest) (uuid.UUID, error)
	UpdateBookingDates(ctx context.Context, callerEmail string, bookingID uuid.UUID, datesPatch BookingDatesPatch) error
	CancelBooking(ctx context.Context, callerEmail string, bookingID uuid.UUID) error
}

type bookingUseCaseImpl struct {
	uow    shared.UnitOfWork
	views  RoomViewInvalidator
	policy dombooking.CancellationPolicy
	clock  clock.Clock
}

func NewBookingUseCase(uow shared.UnitOfWork, views RoomViewInvalidator, policy dombooking.CancellationPolicy, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, views: views, policy: policy, clock: clk}
}

// CreateBooking admits a booking only while the room's slot is free. The
// occupancy check runs twice: a cheap read before any write so rule
// violations never leave partial state, and a conditional update inside the
// transaction that closes the window between two concurrent creates.
func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, callerEmail string, req CreateBookingRequest) (uuid.UUID, error) {
	if req.BookedBy != callerEmail {
		return uuid.Nil, ErrNotOwner
	}

	period, err := dombooking.NewStayPeriod(req.CheckIn, req.CheckOut)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	roomSnap, err := uc.uow.CommandReads().RoomByID(ctx, req.RoomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, ErrRoomNotFound
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !room.FromBookingRef(roomSnap.BookingID).IsFree() {
		return uuid.Nil, ErrRoomAlreadyBooked
	}

	entity := dombooking.NewBooking(req.RoomID, req.BookedBy, period, req.GuestName, req.GuestPhone, uc.clock.Now())

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, cerr := tx.Bookings().Create(ctx, tx.DB(), entity); cerr != nil {
			return errs.Mark(cerr, ErrDatabaseOperationFailed)
		}
		if oerr := tx.Rooms().Occupy(ctx, tx.DB(), req.RoomID, entity.ID()); oerr != nil {
			if infra.IsKind(oerr, infra.KindPreconditionFailed) {
				return ErrRoomAlreadyBooked
			}
			return errs.Mark(oerr, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	uc.views.InvalidateRoom(ctx, req.RoomID)
	return entity.ID(), nil
}

func (uc *bookingUseCaseImpl) UpdateBookingDates(ctx context.Context, callerEmail string, bookingID uuid.UUID, datesPatch BookingDatesPatch) error {
	snap, err := uc.fetchOwned(ctx, callerEmail, bookingID)
	if err != nil {
		return err
	}

	period, err := dombooking.NewStayPeriod(
		coalesce(datesPatch.CheckIn, snap.CheckIn),
		coalesce(datesPatch.CheckOut, snap.CheckOut),
	)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().UpdateDates(ctx, tx.DB(), bookingID, period.CheckIn(), period.CheckOut())
	})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// CancelBooking deletes the booking and frees the room in one transaction,
// gated by ownership and the cancellation window.
func (uc *bookingUseCaseImpl) CancelBooking(ctx context.Context, callerEmail string, bookingID uuid.UUID) error {
	snap, err := uc.fetchOwned(ctx, callerEmail, bookingID)
	if err != nil {
		return err
	}

	period, err := dombooking.NewStayPeriod(snap.CheckIn, snap.CheckOut)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}
	entity := dombooking.Reconstruct(snap.ID, snap.RoomID, snap.BookedBy, period, snap.GuestName, snap.GuestPhone, time.Time{})
	if cerr := entity.CancellableAt(uc.clock.Now(), uc.policy); cerr != nil {
		return errs.Mark(cerr, ErrCancellationClosed)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Bookings().Delete(ctx, tx.DB(), bookingID); derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		if rerr := tx.Rooms().Release(ctx, tx.DB(), snap.RoomID); rerr != nil {
			return errs.Mark(rerr, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.views.InvalidateRoom(ctx, snap.RoomID)
	return nil
}

func (uc *bookingUseCaseImpl) fetchOwned(ctx context.Context, callerEmail string, bookingID uuid.UUID) (*shared.BookingSnapshot, error) {
	snap, err := uc.uow.CommandReads().BookingByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if snap.BookedBy != callerEmail {
		return nil, ErrNotOwner
	}
	return snap, nil
}

func coalesce[T any](override *T, current T) T {
	if override != nil {
		return *override
	}
	return current
}

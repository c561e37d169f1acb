package queries

import (
	"context"

	"roomstay/internal/infra"
	"roomstay/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrBookingAccess   = errs.New("booking access denied")
)

type BookingQueries interface {
	GetByID(ctx context.Context, callerEmail string, id uuid.UUID) (*BookingView, error)
	ListByOwner(ctx context.Context, callerEmail, ownerEmail string) ([]*BookingView, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByOwner(ctx context.Context, ownerEmail string) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, callerEmail string, id uuid.UUID) (*BookingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if view.BookedBy != callerEmail {
		return nil, ErrBookingAccess
	}
	return view, nil
}

// ListByOwner only serves the caller's own bookings; asking for another
// owner's list is an access error, not an empty result.
func (q *bookingQueriesImpl) ListByOwner(ctx context.Context, callerEmail, ownerEmail string) ([]*BookingView, error) {
	if ownerEmail != callerEmail {
		return nil, ErrBookingAccess
	}
	return q.readStore.FindByOwner(ctx, ownerEmail)
}

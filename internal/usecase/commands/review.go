package commands

import (
	"context"

	domreview "roomstay/internal/domain/review"
	"roomstay/internal/domain/room"
	"roomstay/internal/infra"
	"roomstay/internal/pkg/clock"
	"roomstay/internal/pkg/errs"
	"roomstay/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReviewNotOwner  = errs.New("review identity does not match caller")
	ErrDuplicateReview = errs.New("booking already reviewed")
)

type SubmitReviewRequest struct {
	BookingID     uuid.UUID
	RoomID        uuid.UUID
	ReviewerEmail string
	ReviewerName  string
	ReviewerImage string
	Rating        int
	Comment       string
}

type ReviewCommands interface {
	SubmitReview(ctx context.Context, callerEmail string, req SubmitReviewRequest) (uuid.UUID, error)
}

type reviewUseCaseImpl struct {
	uow   shared.UnitOfWork
	views RoomViewInvalidator
	clock clock.Clock
}

func NewReviewUseCase(uow shared.UnitOfWork, views RoomViewInvalidator, clk clock.Clock) ReviewCommands {
	return &reviewUseCaseImpl{uow: uow, views: views, clock: clk}
}

// SubmitReview inserts the review and folds its rating into the room's
// running average in one transaction. The room row is locked for the
// duration so concurrent submissions serialize instead of losing counts.
func (uc *reviewUseCaseImpl) SubmitReview(ctx context.Context, callerEmail string, req SubmitReviewRequest) (uuid.UUID, error) {
	if req.ReviewerEmail != callerEmail {
		return uuid.Nil, ErrReviewNotOwner
	}

	booking, err := uc.uow.CommandReads().BookingByID(ctx, req.BookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, ErrBookingNotFound
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if booking.BookedBy != callerEmail {
		return uuid.Nil, ErrReviewNotOwner
	}

	reviewer, err := domreview.NewReviewer(req.ReviewerEmail, req.ReviewerName, req.ReviewerImage)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}
	rating, err := domreview.NewRating(req.Rating)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}
	comment, err := domreview.NewComment(req.Comment)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	exists, err := uc.uow.CommandReads().ReviewExistsForBooking(ctx, req.BookingID)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if exists {
		return uuid.Nil, ErrDuplicateReview
	}

	entity := domreview.NewReview(req.BookingID, req.RoomID, reviewer, rating, comment, uc.clock.Now())

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, rerr := tx.Reads().RoomForUpdate(ctx, req.RoomID)
		if rerr != nil {
			if infra.IsKind(rerr, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return errs.Mark(rerr, ErrDatabaseOperationFailed)
		}

		if _, cerr := tx.Reviews().Create(ctx, tx.DB(), entity); cerr != nil {
			if infra.IsKind(cerr, infra.KindDuplicateKey) {
				return ErrDuplicateReview
			}
			return errs.Mark(cerr, ErrDatabaseOperationFailed)
		}

		next, aerr := room.NewAggregateRating(snap.Rating, snap.ReviewCount).Add(rating.Value())
		if aerr != nil {
			return errs.Mark(aerr, ErrDomainValidation)
		}
		if uerr := tx.Rooms().UpdateRating(ctx, tx.DB(), req.RoomID, next.Average(), next.Count()); uerr != nil {
			return errs.Mark(uerr, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	uc.views.InvalidateRoom(ctx, req.RoomID)
	return entity.ID(), nil
}

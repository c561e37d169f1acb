//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"roomstay/internal/infra"
	"roomstay/internal/pkg/clock"
	"roomstay/internal/pkg/errs"
	"roomstay/internal/usecase/commands"
	"roomstay/internal/usecase/shared"
	"roomstay/tests/common/builder"
	commandsmock "roomstay/tests/mock/commands"
	sharedmock "roomstay/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewCommandsTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockUow     *sharedmock.MockUnitOfWork
	mockReads   *sharedmock.MockCommandReads
	mockTx      *sharedmock.MockTx
	mockReviews *sharedmock.MockReviewRepository
	mockRooms   *sharedmock.MockRoomRepository
	mockViews   *commandsmock.MockRoomViewInvalidator
	uc          commands.ReviewCommands
}

func (s *ReviewCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockUow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.mockReads = sharedmock.NewMockCommandReads(s.ctrl)
	s.mockTx = sharedmock.NewMockTx(s.ctrl)
	s.mockReviews = sharedmock.NewMockReviewRepository(s.ctrl)
	s.mockRooms = sharedmock.NewMockRoomRepository(s.ctrl)
	s.mockViews = commandsmock.NewMockRoomViewInvalidator(s.ctrl)

	s.mockUow.EXPECT().CommandReads().Return(s.mockReads).AnyTimes()
	s.mockTx.EXPECT().Reads().Return(s.mockReads).AnyTimes()
	s.mockTx.EXPECT().Reviews().Return(s.mockReviews).AnyTimes()
	s.mockTx.EXPECT().Rooms().Return(s.mockRooms).AnyTimes()
	s.mockTx.EXPECT().DB().Return(nil).AnyTimes()

	mockClock := clock.NewMockClock(time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC))
	s.uc = commands.NewReviewUseCase(s.mockUow, s.mockViews, mockClock)
}

func (s *ReviewCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReviewCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReviewCommandsTestSuite))
}

func (s *ReviewCommandsTestSuite) expectWithin() *gomock.Call {
	return s.mockUow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.mockTx)
		})
}

func (s *ReviewCommandsTestSuite) expectBookingOwnedBy(b *builder.ReviewBuilder, owner string) *gomock.Call {
	return s.mockReads.EXPECT().BookingByID(gomock.Any(), b.BookingID).
		Return(&shared.BookingSnapshot{ID: b.BookingID, RoomID: b.RoomID, BookedBy: owner}, nil)
}

func (s *ReviewCommandsTestSuite) TestSubmitReview() {
	const caller = "reviewer@example.com"

	s.Run("success: review stored and rating folded in", func() {
		b := builder.NewReviewBuilder().WithRating(5)
		roomSnap := builder.NewRoomBuilder().WithID(b.RoomID).WithRating(4.0, 2).BuildSnapshot()

		s.expectBookingOwnedBy(b, caller).Times(1)
		s.mockReads.EXPECT().ReviewExistsForBooking(gomock.Any(), b.BookingID).Return(false, nil).Times(1)
		s.expectWithin().Times(1)
		s.mockReads.EXPECT().RoomForUpdate(gomock.Any(), b.RoomID).Return(roomSnap, nil).Times(1)
		s.mockReviews.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil).Times(1)
		// (4.0*2 + 5) / 3 = 4.33
		s.mockRooms.EXPECT().UpdateRating(gomock.Any(), gomock.Any(), b.RoomID, 4.33, int32(3)).Return(nil).Times(1)
		s.mockViews.EXPECT().InvalidateRoom(gomock.Any(), b.RoomID).Times(1)

		id, err := s.uc.SubmitReview(context.Background(), caller, b.BuildCommand())
		s.NoError(err)
		s.NotEqual(uuid.Nil, id)
	})

	s.Run("success: first review sets the average", func() {
		b := builder.NewReviewBuilder().WithRating(4)
		roomSnap := builder.NewRoomBuilder().WithID(b.RoomID).WithRating(0, 0).BuildSnapshot()

		s.expectBookingOwnedBy(b, caller).Times(1)
		s.mockReads.EXPECT().ReviewExistsForBooking(gomock.Any(), b.BookingID).Return(false, nil).Times(1)
		s.expectWithin().Times(1)
		s.mockReads.EXPECT().RoomForUpdate(gomock.Any(), b.RoomID).Return(roomSnap, nil).Times(1)
		s.mockReviews.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil).Times(1)
		s.mockRooms.EXPECT().UpdateRating(gomock.Any(), gomock.Any(), b.RoomID, 4.0, int32(1)).Return(nil).Times(1)
		s.mockViews.EXPECT().InvalidateRoom(gomock.Any(), b.RoomID).Times(1)

		_, err := s.uc.SubmitReview(context.Background(), caller, b.BuildCommand())
		s.NoError(err)
	})

	s.Run("error: reviewer email does not match caller", func() {
		b := builder.NewReviewBuilder().WithReviewer("impostor@example.com", "Impostor")

		_, err := s.uc.SubmitReview(context.Background(), caller, b.BuildCommand())
		s.ErrorIs(err, commands.ErrReviewNotOwner)
	})

	s.Run("error: booking belongs to another guest", func() {
		b := builder.NewReviewBuilder()

		s.expectBookingOwnedBy(b, "other@example.com").Times(1)

		_, err := s.uc.SubmitReview(context.Background(), caller, b.BuildCommand())
		s.ErrorIs(err, commands.ErrReviewNotOwner)
	})

	s.Run("error: booking does not exist", func() {
		b := builder.NewReviewBuilder()

		s.mockReads.EXPECT().BookingByID(gomock.Any(), b.BookingID).
			Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)).Times(1)

		_, err := s.uc.SubmitReview(context.Background(), caller, b.BuildCommand())
		s.ErrorIs(err, commands.ErrBookingNotFound)
	})

	s.Run("error: invalid rating", func() {
		b := builder.NewReviewBuilder().WithRating(6)

		s.expectBookingOwnedBy(b, caller).Times(1)

		_, err := s.uc.SubmitReview(context.Background(), caller, b.BuildCommand())
		s.True(errs.Is(err, commands.ErrDomainValidation))
	})

	s.Run("error: empty comment", func() {
		b := builder.NewReviewBuilder().WithComment("  ")

		s.expectBookingOwnedBy(b, caller).Times(1)

		_, err := s.uc.SubmitReview(context.Background(), caller, b.BuildCommand())
		s.True(errs.Is(err, commands.ErrDomainValidation))
	})

	s.Run("error: booking already reviewed", func() {
		b := builder.NewReviewBuilder()

		s.expectBookingOwnedBy(b, caller).Times(1)
		s.mockReads.EXPECT().ReviewExistsForBooking(gomock.Any(), b.BookingID).Return(true, nil).Times(1)

		_, err := s.uc.SubmitReview(context.Background(), caller, b.BuildCommand())
		s.ErrorIs(err, commands.ErrDuplicateReview)
	})

	s.Run("error: duplicate insert loses the race inside the transaction", func() {
		b := builder.NewReviewBuilder()
		roomSnap := builder.NewRoomBuilder().WithID(b.RoomID).BuildSnapshot()

		s.expectBookingOwnedBy(b, caller).Times(1)
		s.mockReads.EXPECT().ReviewExistsForBooking(gomock.Any(), b.BookingID).Return(false, nil).Times(1)
		s.expectWithin().Times(1)
		s.mockReads.EXPECT().RoomForUpdate(gomock.Any(), b.RoomID).Return(roomSnap, nil).Times(1)
		s.mockReviews.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("duplicate", nil, infra.KindDuplicateKey)).Times(1)

		_, err := s.uc.SubmitReview(context.Background(), caller, b.BuildCommand())
		s.ErrorIs(err, commands.ErrDuplicateReview)
	})

	s.Run("error: room gone when locking", func() {
		b := builder.NewReviewBuilder()

		s.expectBookingOwnedBy(b, caller).Times(1)
		s.mockReads.EXPECT().ReviewExistsForBooking(gomock.Any(), b.BookingID).Return(false, nil).Times(1)
		s.expectWithin().Times(1)
		s.mockReads.EXPECT().RoomForUpdate(gomock.Any(), b.RoomID).
			Return(nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)).Times(1)

		_, err := s.uc.SubmitReview(context.Background(), caller, b.BuildCommand())
		s.ErrorIs(err, commands.ErrRoomNotFound)
	})

	s.Run("error: rating update failure rolls back", func() {
		b := builder.NewReviewBuilder()
		roomSnap := builder.NewRoomBuilder().WithID(b.RoomID).BuildSnapshot()

		s.expectBookingOwnedBy(b, caller).Times(1)
		s.mockReads.EXPECT().ReviewExistsForBooking(gomock.Any(), b.BookingID).Return(false, nil).Times(1)
		s.expectWithin().Times(1)
		s.mockReads.EXPECT().RoomForUpdate(gomock.Any(), b.RoomID).Return(roomSnap, nil).Times(1)
		s.mockReviews.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil).Times(1)
		s.mockRooms.EXPECT().UpdateRating(gomock.Any(), gomock.Any(), b.RoomID, gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("update failed", errs.New("io error"))).Times(1)

		_, err := s.uc.SubmitReview(context.Background(), caller, b.BuildCommand())
		s.True(errs.Is(err, commands.ErrDatabaseOperationFailed))
	})
}

//go:build unit

package queries_test

import (
	"context"
	"testing"

	"roomstay/internal/infra"
	"roomstay/internal/usecase/queries"
	"roomstay/tests/common/builder"
	queriesmock "roomstay/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingQueriesTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockReadStore *queriesmock.MockBookingReadStore
	queries       queries.BookingQueries
}

func (s *BookingQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockReadStore = queriesmock.NewMockBookingReadStore(s.ctrl)
	s.queries = queries.NewBookingQueries(s.mockReadStore)
}

func (s *BookingQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBookingQueriesSuite(t *testing.T) {
	suite.Run(t, new(BookingQueriesTestSuite))
}

func (s *BookingQueriesTestSuite) TestGetByID() {
	const caller = "guest@example.com"

	s.Run("owner can read the booking", func() {
		view := builder.NewBookingBuilder().WithBookedBy(caller).BuildView()

		s.mockReadStore.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		got, err := s.queries.GetByID(context.Background(), caller, view.ID)
		s.NoError(err)
		s.Equal(view, got)
	})

	s.Run("someone else's booking is access denied", func() {
		view := builder.NewBookingBuilder().WithBookedBy("other@example.com").BuildView()

		s.mockReadStore.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		_, err := s.queries.GetByID(context.Background(), caller, view.ID)
		s.ErrorIs(err, queries.ErrBookingAccess)
	})

	s.Run("missing booking maps to not found", func() {
		id := uuid.New()

		s.mockReadStore.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)).Times(1)

		_, err := s.queries.GetByID(context.Background(), caller, id)
		s.ErrorIs(err, queries.ErrBookingNotFound)
	})
}

func (s *BookingQueriesTestSuite) TestListByOwner() {
	const caller = "guest@example.com"

	s.Run("caller lists own bookings", func() {
		views := []*queries.BookingView{
			builder.NewBookingBuilder().WithBookedBy(caller).BuildView(),
			builder.NewBookingBuilder().WithBookedBy(caller).BuildView(),
		}

		s.mockReadStore.EXPECT().FindByOwner(gomock.Any(), caller).Return(views, nil).Times(1)

		got, err := s.queries.ListByOwner(context.Background(), caller, caller)
		s.NoError(err)
		s.Len(got, 2)
	})

	s.Run("asking for another owner's list is denied, not empty", func() {
		_, err := s.queries.ListByOwner(context.Background(), caller, "other@example.com")
		s.ErrorIs(err, queries.ErrBookingAccess)
	})
}

//go:build unit

package queries_test

import (
	"context"
	"testing"

	"roomstay/internal/infra"
	"roomstay/internal/pkg/errs"
	"roomstay/internal/usecase/queries"
	"roomstay/tests/common/builder"
	queriesmock "roomstay/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoomQueriesTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockReadStore *queriesmock.MockRoomReadStore
	mockCache     *queriesmock.MockRoomViewCache
	queries       queries.RoomQueries
}

func (s *RoomQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockReadStore = queriesmock.NewMockRoomReadStore(s.ctrl)
	s.mockCache = queriesmock.NewMockRoomViewCache(s.ctrl)
	s.queries = queries.NewRoomQueries(s.mockReadStore, s.mockCache)
}

func (s *RoomQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestRoomQueriesSuite(t *testing.T) {
	suite.Run(t, new(RoomQueriesTestSuite))
}

func (s *RoomQueriesTestSuite) TestGetByID() {
	s.Run("cache hit skips the read store", func() {
		view := builder.NewRoomBuilder().BuildView()

		s.mockCache.EXPECT().GetRoom(gomock.Any(), view.ID).Return(view, true, nil).Times(1)

		got, err := s.queries.GetByID(context.Background(), view.ID)
		s.NoError(err)
		s.Equal(view, got)
	})

	s.Run("cache miss falls through and populates the cache", func() {
		view := builder.NewRoomBuilder().BuildView()

		s.mockCache.EXPECT().GetRoom(gomock.Any(), view.ID).Return(nil, false, nil).Times(1)
		s.mockReadStore.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil).Times(1)
		s.mockCache.EXPECT().SetRoom(gomock.Any(), view).Return(nil).Times(1)

		got, err := s.queries.GetByID(context.Background(), view.ID)
		s.NoError(err)
		s.Equal(view, got)
	})

	s.Run("cache read failure is soft", func() {
		view := builder.NewRoomBuilder().BuildView()

		s.mockCache.EXPECT().GetRoom(gomock.Any(), view.ID).Return(nil, false, errs.New("redis down")).Times(1)
		s.mockReadStore.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil).Times(1)
		s.mockCache.EXPECT().SetRoom(gomock.Any(), view).Return(errs.New("redis down")).Times(1)

		got, err := s.queries.GetByID(context.Background(), view.ID)
		s.NoError(err)
		s.Equal(view, got)
	})

	s.Run("missing room maps to not found", func() {
		id := uuid.New()

		s.mockCache.EXPECT().GetRoom(gomock.Any(), id).Return(nil, false, nil).Times(1)
		s.mockReadStore.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)).Times(1)

		_, err := s.queries.GetByID(context.Background(), id)
		s.ErrorIs(err, queries.ErrRoomNotFound)
	})
}

func (s *RoomQueriesTestSuite) TestList() {
	s.Run("filters pass through to the read store", func() {
		minPrice := int64(10000)
		filters := queries.RoomFilters{MinPriceCents: &minPrice}
		items := []*queries.RoomListItem{
			builder.NewRoomBuilder().WithPriceCents(12900).BuildListItem(),
			builder.NewRoomBuilder().WithPriceCents(15900).BuildListItem(),
		}

		s.mockReadStore.EXPECT().FindAll(gomock.Any(), filters).Return(items, nil).Times(1)

		got, err := s.queries.List(context.Background(), filters)
		s.NoError(err)
		s.Len(got, 2)
	})
}

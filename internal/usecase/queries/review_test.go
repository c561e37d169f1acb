//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"roomstay/internal/usecase/queries"
	"roomstay/tests/common/builder"
	queriesmock "roomstay/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewQueriesTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockReadStore *queriesmock.MockReviewReadStore
	queries       queries.ReviewQueries
}

func (s *ReviewQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockReadStore = queriesmock.NewMockReviewReadStore(s.ctrl)
	s.queries = queries.NewReviewQueries(s.mockReadStore)
}

func (s *ReviewQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReviewQueriesSuite(t *testing.T) {
	suite.Run(t, new(ReviewQueriesTestSuite))
}

func makeItems(n int) []*queries.ReviewListItem {
	items := make([]*queries.ReviewListItem, 0, n)
	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	for i := range n {
		item := builder.NewReviewBuilder().BuildListItem()
		item.CreatedAt = base.Add(-time.Duration(i) * time.Hour)
		items = append(items, item)
	}
	return items
}

func (s *ReviewQueriesTestSuite) TestList() {
	s.Run("first page without cursor", func() {
		// limit+1 checks whether a next page exists
		s.mockReadStore.EXPECT().FindFirstPage(gomock.Any(), nil, int32(3)).
			Return(makeItems(2), nil).Times(1)

		items, next, err := s.queries.List(context.Background(), queries.ReviewFilters{}, nil, 2)
		s.NoError(err)
		s.Len(items, 2)
		s.Nil(next)
	})

	s.Run("full page yields a next cursor", func() {
		rows := makeItems(3)
		s.mockReadStore.EXPECT().FindFirstPage(gomock.Any(), nil, int32(3)).
			Return(rows, nil).Times(1)

		items, next, err := s.queries.List(context.Background(), queries.ReviewFilters{}, nil, 2)
		s.NoError(err)
		s.Len(items, 2)
		s.Require().NotNil(next)

		// The cursor points at the last returned row.
		gotTime, gotID, derr := queries.DecodeAfterCursor(next.After)
		s.Require().NoError(derr)
		s.Equal(rows[1].CreatedAt.UnixMicro(), gotTime.UnixMicro())
		s.Equal(rows[1].ID, gotID)
	})

	s.Run("cursor page uses keyset lookup", func() {
		lastCreatedAt := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
		lastID := uuid.New()
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(lastCreatedAt, lastID)}

		s.mockReadStore.EXPECT().
			FindKeyset(gomock.Any(), nil, gomock.Any(), lastID, int32(21)).
			Return(makeItems(1), nil).Times(1)

		items, next, err := s.queries.List(context.Background(), queries.ReviewFilters{}, cursor, 0)
		s.NoError(err)
		s.Len(items, 1)
		s.Nil(next)
	})

	s.Run("room filter is forwarded", func() {
		roomID := uuid.New()
		s.mockReadStore.EXPECT().FindFirstPage(gomock.Any(), &roomID, int32(21)).
			Return(nil, nil).Times(1)

		items, next, err := s.queries.List(context.Background(), queries.ReviewFilters{RoomID: &roomID}, nil, 0)
		s.NoError(err)
		s.Empty(items)
		s.Nil(next)
	})

	s.Run("garbage cursor is rejected", func() {
		cursor := &queries.Cursor{After: "garbage"}

		_, _, err := s.queries.List(context.Background(), queries.ReviewFilters{}, cursor, 10)
		s.ErrorIs(err, queries.ErrInvalidCursor)
	})
}

//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"roomstay/internal/handler/api"
	resdto "roomstay/internal/handler/dto/response"
	"roomstay/internal/pkg/errs"
	"roomstay/internal/usecase/commands"
	"roomstay/internal/usecase/queries"
	"roomstay/internal/usecase/shared"
	"roomstay/tests/common/builder"
	"roomstay/tests/common/httptest"
	commandsmock "roomstay/tests/mock/commands"
	queriesmock "roomstay/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoomHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRoomCommands
	mockQueries  *queriesmock.MockRoomQueries
	handler      *api.RoomHandler
}

func (s *RoomHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRoomCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRoomQueries(s.mockCtrl)
	s.handler = api.NewRoomHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/rooms", s.handler.ListRooms)
	s.router.GET("/rooms/:id", s.handler.GetRoom)
	s.router.PATCH("/rooms/:id", s.handler.UpdateRoom)
}

func (s *RoomHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}

// ================================================================================
// TestGetRoom
// ================================================================================

func (s *RoomHandlerTestSuite) TestGetRoom() {
	roomID := uuid.New()
	url := "/rooms/" + roomID.String()

	s.Run("success: returns 200 OK with the room view", func() {
		view := builder.NewRoomBuilder().WithID(roomID).BuildView()

		s.mockQueries.EXPECT().GetByID(gomock.Any(), roomID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body queries.RoomView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(roomID, body.ID)
		s.Equal(view.BookingStatus, body.BookingStatus)
	})

	s.Run("error: 404 when the room does not exist", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), roomID).
			Return(nil, queries.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})

	s.Run("error: 400 on malformed room ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid room ID")
	})

	s.Run("error: 500 on read store failure", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), roomID).
			Return(nil, errs.New("read store down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestListRooms
// ================================================================================

func (s *RoomHandlerTestSuite) TestListRooms() {
	url := "/rooms"

	s.Run("success: returns 200 OK with all rooms", func() {
		items := []*queries.RoomListItem{
			builder.NewRoomBuilder().BuildListItem(),
			builder.NewRoomBuilder().WithPriceCents(24900).BuildListItem(),
		}

		s.mockQueries.EXPECT().List(gomock.Any(), queries.RoomFilters{}).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.RoomListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Rooms, 2)
	})

	s.Run("success: price bounds are forwarded to the query", func() {
		s.mockQueries.EXPECT().
			List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, f queries.RoomFilters) ([]*queries.RoomListItem, error) {
				s.Require().NotNil(f.MinPriceCents)
				s.Require().NotNil(f.MaxPriceCents)
				s.Equal(int64(10000), *f.MinPriceCents)
				s.Equal(int64(30000), *f.MaxPriceCents)
				return nil, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?min_price=10000&max_price=30000", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on malformed price filter", func() {
		for _, q := range []string{"?min_price=cheap", "?max_price=12.5"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+q, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid price filter")
		}
	})
}

// ================================================================================
// TestUpdateRoom
// ================================================================================

func (s *RoomHandlerTestSuite) TestUpdateRoom() {
	roomID := uuid.New()
	url := "/rooms/" + roomID.String()

	s.Run("success: returns 200 OK with the fresh view", func() {
		newName := "Renovated Loft"
		patchBody := map[string]any{"name": newName, "price_cents": 15900}
		view := builder.NewRoomBuilder().WithID(roomID).With(func(b *builder.RoomBuilder) {
			b.Name = newName
			b.PriceCents = 15900
		}).BuildView()

		s.mockCommands.EXPECT().
			UpdateRoom(gomock.Any(), roomID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, patch shared.RoomPatch) error {
				s.Require().NotNil(patch.Name)
				s.Equal(newName, *patch.Name)
				s.Require().NotNil(patch.PriceCents)
				s.Equal(int64(15900), *patch.PriceCents)
				return nil
			}).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), roomID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, patchBody, "")

		var body queries.RoomView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(newName, body.Name)
		s.Equal(int64(15900), body.PriceCents)
	})

	s.Run("error: 400 when the patch has no fields", func() {
		s.mockCommands.EXPECT().UpdateRoom(gomock.Any(), roomID, gomock.Any()).
			Return(commands.ErrEmptyRoomPatch).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "no fields")
	})

	s.Run("error: 404 when the room does not exist", func() {
		s.mockCommands.EXPECT().UpdateRoom(gomock.Any(), roomID, gomock.Any()).
			Return(commands.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"name": "X"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})

	s.Run("error: 400 on malformed room ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/rooms/abc", map[string]any{"name": "X"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid room ID")
	})
}

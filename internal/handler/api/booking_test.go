//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"roomstay/internal/domain/user"
	"roomstay/internal/handler/api"
	resdto "roomstay/internal/handler/dto/response"
	"roomstay/internal/pkg/errs"
	"roomstay/internal/usecase"
	"roomstay/internal/usecase/commands"
	"roomstay/internal/usecase/queries"
	"roomstay/tests/common/builder"
	"roomstay/tests/common/httptest"
	"roomstay/tests/common/testutil"
	commandsmock "roomstay/tests/mock/commands"
	queriesmock "roomstay/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const bookingCallerEmail = "guest@example.com"

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("identity", usecase.Identity{
			UserID: uuid.New(),
			Email:  bookingCallerEmail,
			Role:   user.RoleGuest,
		})
		c.Next()
	}

	group := s.router.Group("/bookings", authMiddleware)
	group.POST("", s.handler.CreateBooking)
	group.GET("", s.handler.ListBookings)
	group.PATCH("/:id", s.handler.UpdateBookingDates)
	group.DELETE("/:id", s.handler.CancelBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
	returnID := uuid.New()

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), bookingCallerEmail, gomock.Any()).
			Return(returnID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.BookingCreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnID, body.ID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: room_id (required)", mutate: testutil.Field("room_id", nil)},
			{name: "missing field: booked_by (required)", mutate: testutil.Field("booked_by", nil)},
			{name: "missing field: check_in (required)", mutate: testutil.Field("check_in", nil)},
			{name: "missing field: check_out (required)", mutate: testutil.Field("check_out", nil)},
			{name: "missing field: guest_name (required)", mutate: testutil.Field("guest_name", nil)},
			{name: "booked_by not an email", mutate: testutil.Field("booked_by", "not-an-email")},
			{name: "check_in not a timestamp", mutate: testutil.Field("check_in", "tomorrow")},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "booked_by differs from caller",
				commandsError:  commands.ErrNotOwner,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "does not belong",
			},
			{
				name:           "room not found",
				commandsError:  commands.ErrRoomNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Room not found",
			},
			{
				name:           "room already booked",
				commandsError:  commands.ErrRoomAlreadyBooked,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "already booked",
			},
			{
				name:           "invalid stay dates carried as a mark",
				commandsError:  errs.Mark(errs.New("check-out before check-in"), commands.ErrDomainValidation),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid booking dates",
			},
			{
				name:           "internal server error",
				commandsError:  errs.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), bookingCallerEmail, gomock.Any()).
					Return(uuid.Nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestListBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestListBookings() {
	url := "/bookings"

	s.Run("success: defaults to the caller's own bookings", func() {
		views := []*queries.BookingView{
			builder.NewBookingBuilder().BuildView(),
			builder.NewBookingBuilder().BuildView(),
		}

		s.mockQueries.EXPECT().ListByOwner(gomock.Any(), bookingCallerEmail, bookingCallerEmail).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Bookings, 2)
	})

	s.Run("success: explicit email matching the caller", func() {
		s.mockQueries.EXPECT().ListByOwner(gomock.Any(), bookingCallerEmail, bookingCallerEmail).
			Return([]*queries.BookingView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?email="+bookingCallerEmail, nil, "bearer-token")

		var body resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.Bookings)
	})

	s.Run("error: 403 Forbidden when asking for another user's bookings", func() {
		s.mockQueries.EXPECT().ListByOwner(gomock.Any(), bookingCallerEmail, "other@example.com").
			Return(nil, queries.ErrBookingAccess).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?email=other@example.com", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "another user")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestUpdateBookingDates
// ================================================================================

func (s *BookingHandlerTestSuite) TestUpdateBookingDates() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	patch := map[string]any{"check_in": "2026-04-01T00:00:00Z", "check_out": "2026-04-05T00:00:00Z"}

	s.Run("success: returns 200 OK", func() {
		s.mockCommands.EXPECT().UpdateBookingDates(gomock.Any(), bookingCallerEmail, bookingID, gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, patch, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("success: partial patch with only check_out", func() {
		s.mockCommands.EXPECT().UpdateBookingDates(gomock.Any(), bookingCallerEmail, bookingID, gomock.Any()).
			DoAndReturn(func(_ any, _ string, _ uuid.UUID, p commands.BookingDatesPatch) error {
				s.Nil(p.CheckIn)
				s.Require().NotNil(p.CheckOut)
				return nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"check_out": "2026-04-05T00:00:00Z"}, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 on malformed booking ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/not-a-uuid", patch, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "not the owner", commandsError: commands.ErrNotOwner, expectedStatus: http.StatusForbidden},
			{name: "booking not found", commandsError: commands.ErrBookingNotFound, expectedStatus: http.StatusNotFound},
			{name: "invalid dates carried as a mark", commandsError: errs.Mark(errs.New("check-out before check-in"), commands.ErrDomainValidation), expectedStatus: http.StatusBadRequest},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().UpdateBookingDates(gomock.Any(), bookingCallerEmail, bookingID, gomock.Any()).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, patch, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

// ================================================================================
// TestCancelBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	s.Run("success: returns 200 OK", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), bookingCallerEmail, bookingID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 when the cancellation window has closed", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), bookingCallerEmail, bookingID).
			Return(errs.Mark(errs.New("one day of notice is not enough"), commands.ErrCancellationClosed)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Cancellation window")
	})

	s.Run("error: 403 when the booking belongs to someone else", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), bookingCallerEmail, bookingID).
			Return(commands.ErrNotOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "does not belong")
	})

	s.Run("error: 404 when the booking does not exist", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), bookingCallerEmail, bookingID).
			Return(commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 400 on malformed booking ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/123", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})
}

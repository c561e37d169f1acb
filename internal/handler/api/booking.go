package api

import (
	"net/http"

	reqdto "roomstay/internal/handler/dto/request"
	resdto "roomstay/internal/handler/dto/response"
	"roomstay/internal/handler/middleware"
	"roomstay/internal/pkg/errs"
	"roomstay/internal/usecase/commands"
	"roomstay/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Book a room for the authenticated guest
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingCreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	cmd := commands.CreateBookingRequest{
		RoomID:     req.RoomID,
		BookedBy:   req.BookedBy,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		GuestName:  req.GuestName,
		GuestPhone: req.GuestPhone,
	}

	id, err := h.bookingCommands.CreateBooking(c.Request.Context(), identity.Email, cmd)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.BookingCreatedResponse{ID: id})
}

// @Summary List bookings
// @Description List bookings owned by the authenticated guest
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param email query string false "Owner email, must match the caller"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	ownerEmail := c.Query("email")
	if ownerEmail == "" {
		ownerEmail = identity.Email
	}

	views, err := h.bookingQueries.ListByOwner(c.Request.Context(), identity.Email, ownerEmail)
	if err != nil {
		if errs.Is(err, queries.ErrBookingAccess) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Cannot list another user's bookings",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.BookingListResponse{Bookings: views})
}

// @Summary Update booking dates
// @Description Change the stay dates of an owned booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingDatesRequest true "Date patch"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [patch]
func (h *BookingHandler) UpdateBookingDates(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	var req reqdto.UpdateBookingDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	datesPatch := commands.BookingDatesPatch{
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
	}

	if err := h.bookingCommands.UpdateBookingDates(c.Request.Context(), identity.Email, id, datesPatch); err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// @Summary Cancel booking
// @Description Cancel an owned booking while the cancellation window is open
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	if err := h.bookingCommands.CancelBooking(c.Request.Context(), identity.Email, id); err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

func (h *BookingHandler) respondBookingError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Booking does not belong to the caller",
		})
	case errs.Is(err, commands.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Room not found",
		})
	case errs.Is(err, commands.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
	case errs.Is(err, commands.ErrRoomAlreadyBooked):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Room is already booked",
		})
	case errs.Is(err, commands.ErrCancellationClosed):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Cancellation window has closed",
		})
	case errs.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking dates",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

package api

import (
	"net/http"
	"strconv"

	reqdto "roomstay/internal/handler/dto/request"
	resdto "roomstay/internal/handler/dto/response"
	"roomstay/internal/handler/middleware"
	"roomstay/internal/pkg/errs"
	"roomstay/internal/usecase/commands"
	"roomstay/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	reviewCommands commands.ReviewCommands
	reviewQueries  queries.ReviewQueries
}

func NewReviewHandler(reviewCommands commands.ReviewCommands, reviewQueries queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{
		reviewCommands: reviewCommands,
		reviewQueries:  reviewQueries,
	}
}

// @Summary Submit review
// @Description Submit a review for a completed booking, one per booking
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SubmitReviewRequest true "Review request"
// @Success 201 {object} resdto.ReviewCreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reviews [post]
func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	cmd := commands.SubmitReviewRequest{
		BookingID:     req.BookingID,
		RoomID:        req.RoomID,
		ReviewerEmail: req.User.Email,
		ReviewerName:  req.User.Name,
		ReviewerImage: req.User.Image,
		Rating:        req.Rating,
		Comment:       req.Comment,
	}

	id, err := h.reviewCommands.SubmitReview(c.Request.Context(), identity.Email, cmd)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrReviewNotOwner):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Review identity does not match the caller",
			})
		case errs.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errs.Is(err, commands.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		case errs.Is(err, commands.ErrDuplicateReview):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Booking already reviewed",
			})
		case errs.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid review data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.ReviewCreatedResponse{ID: id})
}

// @Summary List reviews
// @Description List reviews newest first, optionally for one room
// @Tags reviews
// @Produce json
// @Param room_id query string false "Filter by room ID"
// @Param limit query int false "Page size"
// @Param after query string false "Pagination cursor"
// @Success 200 {object} resdto.ReviewListResponse
// @Failure 400 {object} map[string]string
// @Router /reviews [get]
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	var filters queries.ReviewFilters
	if raw := c.Query("room_id"); raw != "" {
		roomID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid room ID format",
			})
			return
		}
		filters.RoomID = &roomID
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid limit",
			})
			return
		}
		limit = v
	}

	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	items, next, err := h.reviewQueries.List(c.Request.Context(), filters, cursor, limit)
	if err != nil {
		if errs.Is(err, queries.ErrInvalidCursor) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid pagination cursor",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.ReviewListResponse{Reviews: items, Next: next})
}

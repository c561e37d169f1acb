//go:build unit || e2e

package builder

import (
	"time"

	domreview "roomstay/internal/domain/review"
	reqdto "roomstay/internal/handler/dto/request"
	"roomstay/internal/usecase/commands"
	"roomstay/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	BookingID     uuid.UUID
	RoomID        uuid.UUID
	ReviewerEmail string
	ReviewerName  string
	ReviewerImage string
	Rating        int
	Comment       string
	CreatedAt     time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		BookingID:     uuid.New(),
		RoomID:        uuid.New(),
		ReviewerEmail: "reviewer@example.com",
		ReviewerName:  "Test Reviewer",
		ReviewerImage: "https://example.com/avatar.png",
		Rating:        5,
		Comment:       "Excellent stay!",
		CreatedAt:     time.Now(),
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

func (r *ReviewBuilder) WithBookingID(id uuid.UUID) *ReviewBuilder {
	r.BookingID = id
	return r
}

func (r *ReviewBuilder) WithRoomID(id uuid.UUID) *ReviewBuilder {
	r.RoomID = id
	return r
}

func (r *ReviewBuilder) WithReviewer(email, name string) *ReviewBuilder {
	r.ReviewerEmail = email
	r.ReviewerName = name
	return r
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = comment
	return r
}

// Build methods
func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	reviewer, err := domreview.NewReviewer(r.ReviewerEmail, r.ReviewerName, r.ReviewerImage)
	if err != nil {
		return nil, err
	}
	rating, err := domreview.NewRating(r.Rating)
	if err != nil {
		return nil, err
	}
	comment, err := domreview.NewComment(r.Comment)
	if err != nil {
		return nil, err
	}
	return domreview.NewReview(r.BookingID, r.RoomID, reviewer, rating, comment, r.CreatedAt), nil
}

func (r *ReviewBuilder) BuildSubmitRequestDTO() reqdto.SubmitReviewRequest {
	return reqdto.SubmitReviewRequest{
		BookingID: r.BookingID,
		RoomID:    r.RoomID,
		User: reqdto.ReviewerProfile{
			Email: r.ReviewerEmail,
			Name:  r.ReviewerName,
			Image: r.ReviewerImage,
		},
		Rating:  r.Rating,
		Comment: r.Comment,
	}
}

func (r *ReviewBuilder) BuildCommand() commands.SubmitReviewRequest {
	return commands.SubmitReviewRequest{
		BookingID:     r.BookingID,
		RoomID:        r.RoomID,
		ReviewerEmail: r.ReviewerEmail,
		ReviewerName:  r.ReviewerName,
		ReviewerImage: r.ReviewerImage,
		Rating:        r.Rating,
		Comment:       r.Comment,
	}
}

func (r *ReviewBuilder) BuildListItem() *queries.ReviewListItem {
	return &queries.ReviewListItem{
		ID:            uuid.New(),
		RoomID:        r.RoomID,
		ReviewerName:  r.ReviewerName,
		ReviewerImage: r.ReviewerImage,
		Rating:        int32(r.Rating),
		Comment:       r.Comment,
		CreatedAt:     r.CreatedAt,
	}
}

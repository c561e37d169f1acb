package review

import (
	"errors"
	"strings"
)

var (
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrEmptyComment   = errors.New("comment cannot be empty")
	ErrCommentTooLong = errors.New("comment exceeds maximum length")
	ErrInvalidEmail   = errors.New("reviewer email is required")
)

const MaxCommentLength = 1000

type Rating struct {
	value int
}

func NewRating(v int) (Rating, error) {
	if v < 1 || v > 5 {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: v}, nil
}

func (r Rating) Value() int { return r.value }

type Comment struct {
	text string
}

func NewComment(s string) (Comment, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Comment{}, ErrEmptyComment
	}
	if len(t) > MaxCommentLength {
		return Comment{}, ErrCommentTooLong
	}
	return Comment{text: t}, nil
}

func (c Comment) String() string { return c.text }

// Reviewer is the profile snippet stored on a review. The email is kept for
// ownership checks but never leaves the service in read projections.
type Reviewer struct {
	email string
	name  string
	image string
}

func NewReviewer(email, name, image string) (Reviewer, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return Reviewer{}, ErrInvalidEmail
	}
	return Reviewer{email: email, name: strings.TrimSpace(name), image: image}, nil
}

func (r Reviewer) Email() string { return r.email }
func (r Reviewer) Name() string  { return r.name }
func (r Reviewer) Image() string { return r.image }

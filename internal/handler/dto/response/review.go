package response

import (
	"roomstay/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewCreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

type ReviewListResponse struct {
	Reviews []*queries.ReviewListItem `json:"reviews"`
	Next    *queries.Cursor           `json:"next,omitempty"`
}

package request

import (
	"roomstay/internal/usecase/shared"

	"github.com/google/uuid"
)

type UpdateRoomRequest struct {
	Name           *string    `json:"name,omitempty"`
	Description    *string    `json:"description,omitempty"`
	ImageURL       *string    `json:"image_url,omitempty"`
	PriceCents     *int64     `json:"price_cents,omitempty"`
	SpecialOfferID *uuid.UUID `json:"special_offer_id,omitempty"`
	ClearOffer     bool       `json:"clear_offer,omitempty"`
}

func (r UpdateRoomRequest) ToPatch() shared.RoomPatch {
	return shared.RoomPatch{
		Name:           r.Name,
		Description:    r.Description,
		ImageURL:       r.ImageURL,
		PriceCents:     r.PriceCents,
		SpecialOfferID: r.SpecialOfferID,
		ClearOffer:     r.ClearOffer,
	}
}

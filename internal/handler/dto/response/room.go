package response

import "roomstay/internal/usecase/queries"

type RoomListResponse struct {
	Rooms []*queries.RoomListItem `json:"rooms"`
}

type DiscountListResponse struct {
	Discounts []*queries.DiscountView `json:"discounts"`
}

package api

import (
	"net/http"

	resdto "roomstay/internal/handler/dto/response"
	"roomstay/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DiscountHandler struct {
	discountQueries queries.DiscountQueries
}

func NewDiscountHandler(discountQueries queries.DiscountQueries) *DiscountHandler {
	return &DiscountHandler{discountQueries: discountQueries}
}

// @Summary List discounts
// @Description List the property's active special offers
// @Tags discounts
// @Produce json
// @Success 200 {object} resdto.DiscountListResponse
// @Router /discounts [get]
func (h *DiscountHandler) ListDiscounts(c *gin.Context) {
	views, err := h.discountQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.DiscountListResponse{Discounts: views})
}

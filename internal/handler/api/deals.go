package api

import (
	"net/http"

	resdto "leafdeals/internal/handler/dto/response"
	"leafdeals/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DealsHandler struct {
	dealQueries queries.DealQueries
}

func NewDealsHandler(dealQueries queries.DealQueries) *DealsHandler {
	return &DealsHandler{dealQueries: dealQueries}
}

// ListDeals serves the public deal listing. Category, brand, and postal code
// filters all come from query params; all are optional.
func (h *DealsHandler) ListDeals(c *gin.Context) {
	filters := queries.DealFilters{
		Category:   optionalQuery(c, "category"),
		Brand:      optionalQuery(c, "brand"),
		PostalCode: optionalQuery(c, "postal"),
	}

	deals, err := h.dealQueries.ListDeals(c.Request.Context(), filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.DealResponse, len(deals))
	for i, v := range deals {
		response[i] = resdto.FromDealView(v)
	}
	c.JSON(http.StatusOK, gin.H{
		"deals": response,
		"count": len(response),
	})
}

func optionalQuery(c *gin.Context, key string) *string {
	if v := c.Query(key); v != "" {
		return &v
	}
	return nil
}

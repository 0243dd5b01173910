package response

import (
	"time"

	"leafdeals/internal/usecase/queries"

	"github.com/google/uuid"
)

type DealResponse struct {
	ID             uuid.UUID `json:"id"`
	SourceID       uuid.UUID `json:"source_id"`
	SourceName     string    `json:"source_name"`
	Category       string    `json:"category"`
	Title          string    `json:"title"`
	Brand          *string   `json:"brand,omitempty"`
	ProductName    *string   `json:"product_name,omitempty"`
	PriceText      string    `json:"price_text"`
	DisplayPrice   *string   `json:"display_price,omitempty"`
	Confidence     float64   `json:"confidence"`
	DistanceMeters *float64  `json:"distance_meters,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromDealView(v *queries.DealView) *DealResponse {
	return &DealResponse{
		ID:             v.ID,
		SourceID:       v.SourceID,
		SourceName:     v.SourceName,
		Category:       v.Category,
		Title:          v.Title,
		Brand:          v.Brand,
		ProductName:    v.ProductName,
		PriceText:      v.PriceText,
		DisplayPrice:   v.DisplayPrice,
		Confidence:     v.Confidence,
		DistanceMeters: v.DistanceMeters,
		CreatedAt:      v.CreatedAt,
	}
}

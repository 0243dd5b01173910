package queries

import (
	"context"
	"time"

	"leafdeals/internal/pkg/geo"

	"github.com/google/uuid"
)

// DealView is the read model for one published deal, joined with its source.
// The presentation fields are filled in by the query layer, not the store.
type DealView struct {
	ID          uuid.UUID `json:"id"`
	SourceID    uuid.UUID `json:"source_id"`
	SourceName  string    `json:"source_name"`
	SourceLat   *float64  `json:"source_lat,omitempty"`
	SourceLng   *float64  `json:"source_lng,omitempty"`
	Category    string    `json:"category"`
	Title       string    `json:"title"`
	Brand       *string   `json:"brand,omitempty"`
	ProductName *string   `json:"product_name,omitempty"`
	PriceText   string    `json:"price_text"`
	Confidence  float64   `json:"confidence"`
	CreatedAt   time.Time `json:"created_at"`

	DisplayPrice   *string  `json:"display_price,omitempty"`
	CategoryScore  int      `json:"-"`
	DistanceMeters *float64 `json:"distance_meters,omitempty"`
}

// DealFilters narrows the deal listing. Nil means "no filter".
type DealFilters struct {
	Category *string
	Brand    *string
	// PostalCode, when present and resolvable, becomes the ranking origin.
	PostalCode *string
}

type DealReadStore interface {
	ListFresh(ctx context.Context, filters DealFilters, since time.Time) ([]*DealView, error)
}

// PostalGeocoder resolves the requester's postal code for distance ranking.
// A (nil, nil) return means unresolvable; listing then proceeds unranked.
type PostalGeocoder interface {
	Resolve(ctx context.Context, postalCode string) (*geo.Location, error)
}

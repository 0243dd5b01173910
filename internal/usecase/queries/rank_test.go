package queries_test

import (
	"testing"

	"leafdeals/internal/pkg/geo"
	"leafdeals/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dealAt(title, price string, lat, lng *float64) *queries.DealView {
	return &queries.DealView{
		ID:        uuid.New(),
		SourceID:  uuid.New(),
		Title:     title,
		PriceText: price,
		SourceLat: lat,
		SourceLng: lng,
	}
}

func coords(lat, lng float64) (*float64, *float64) {
	return &lat, &lng
}

func TestRankNearestSourceWins(t *testing.T) {
	origin := &geo.Point{Lat: 42.3314, Lng: -83.0458}

	nearLat, nearLng := coords(42.36, -83.05)   // ~2 miles out
	farLat, farLng := coords(42.43, -83.10)     // ~7 miles out

	near := dealAt("OG Kush Eighth", "$25", nearLat, nearLng)
	far := dealAt("OG Kush Eighth", "$25", farLat, farLng)

	ranked := queries.Rank([]*queries.DealView{far, near}, origin)

	require.Len(t, ranked, 1)
	assert.Equal(t, near.ID, ranked[0].ID)
	require.NotNil(t, ranked[0].DistanceMeters)
}

func TestRankCoordinatelessSourceLoses(t *testing.T) {
	origin := &geo.Point{Lat: 42.3314, Lng: -83.0458}

	farLat, farLng := coords(42.43, -83.10)
	far := dealAt("OG Kush Eighth", "$25", farLat, farLng)
	unknown := dealAt("OG Kush Eighth", "$25", nil, nil)

	ranked := queries.Rank([]*queries.DealView{unknown, far}, origin)

	require.Len(t, ranked, 1)
	assert.Equal(t, far.ID, ranked[0].ID)
}

func TestRankNoOriginKeepsFirst(t *testing.T) {
	aLat, aLng := coords(42.36, -83.05)
	bLat, bLng := coords(42.43, -83.10)
	first := dealAt("OG Kush Eighth", "$25", aLat, aLng)
	second := dealAt("OG Kush Eighth", "$25", bLat, bLng)

	ranked := queries.Rank([]*queries.DealView{first, second}, nil)

	require.Len(t, ranked, 1)
	assert.Equal(t, first.ID, ranked[0].ID)
	assert.Nil(t, ranked[0].DistanceMeters)
}

func TestRankDifferentOffersAllKept(t *testing.T) {
	aLat, aLng := coords(42.36, -83.05)
	samePriceOtherTitle := dealAt("Blue Dream Eighth", "$25", aLat, aLng)
	sameTitleOtherPrice := dealAt("OG Kush Eighth", "$30", aLat, aLng)
	base := dealAt("OG Kush Eighth", "$25", aLat, aLng)

	ranked := queries.Rank([]*queries.DealView{base, samePriceOtherTitle, sameTitleOtherPrice}, nil)

	assert.Len(t, ranked, 3)
}

func TestRankNormalizesTitleAndPrice(t *testing.T) {
	aLat, aLng := coords(42.36, -83.05)
	bLat, bLng := coords(42.43, -83.10)
	messy := dealAt("  OG   KUSH eighth!! ", "$25.00", aLat, aLng)
	clean := dealAt("OG Kush Eighth", "$25.00", bLat, bLng)

	ranked := queries.Rank([]*queries.DealView{messy, clean}, nil)

	assert.Len(t, ranked, 1)
}

func TestRankPreservesInputOrderOfWinners(t *testing.T) {
	aLat, aLng := coords(42.36, -83.05)
	d1 := dealAt("Alpha Deal", "$10", aLat, aLng)
	d2 := dealAt("Beta Deal", "$20", aLat, aLng)
	d3 := dealAt("Gamma Deal", "$30", aLat, aLng)

	ranked := queries.Rank([]*queries.DealView{d1, d2, d3}, nil)

	require.Len(t, ranked, 3)
	assert.Equal(t, d1.ID, ranked[0].ID)
	assert.Equal(t, d2.ID, ranked[1].ID)
	assert.Equal(t, d3.ID, ranked[2].ID)
}

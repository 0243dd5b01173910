package geo_test

import (
	"testing"

	"leafdeals/internal/pkg/geo"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters(t *testing.T) {
	t.Run("zero distance for identical points", func(t *testing.T) {
		p := geo.Point{Lat: 42.3314, Lng: -83.0458}
		assert.Equal(t, 0.0, geo.DistanceMeters(p, p))
	})

	t.Run("Detroit to Ann Arbor is roughly 36 miles", func(t *testing.T) {
		detroit := geo.Point{Lat: 42.3314, Lng: -83.0458}
		annArbor := geo.Point{Lat: 42.2808, Lng: -83.7430}

		d := geo.DistanceMeters(detroit, annArbor)
		assert.InDelta(t, geo.MilesToMeters(36), d, geo.MilesToMeters(2))
	})

	t.Run("symmetric", func(t *testing.T) {
		a := geo.Point{Lat: 42.0, Lng: -83.0}
		b := geo.Point{Lat: 42.5, Lng: -83.5}
		assert.InDelta(t, geo.DistanceMeters(a, b), geo.DistanceMeters(b, a), 0.0001)
	})
}

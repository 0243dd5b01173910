package queries

import (
	"leafdeals/internal/domain/deal"
	"leafdeals/internal/pkg/geo"
)

// Rank collapses cross-source duplicates down to one winner per group.
// Deals sharing a normalized (title, price) pair are the same underlying
// offer seen through different sources; when an origin is known the
// geographically nearest source wins. Sources without coordinates lose to
// any source with them. With no origin, the first deal in input order wins.
// Input order is preserved among winners. Rank never mutates its input
// slice's elements beyond DistanceMeters.
func Rank(deals []*DealView, origin *geo.Point) []*DealView {
	type group struct {
		winner *DealView
		order  int
	}

	groups := make(map[string]*group)
	keys := make([]string, 0, len(deals))

	for i, d := range deals {
		if origin != nil && d.SourceLat != nil && d.SourceLng != nil {
			dist := geo.DistanceMeters(*origin, geo.Point{Lat: *d.SourceLat, Lng: *d.SourceLng})
			d.DistanceMeters = &dist
		}

		key := dedupKey(d)
		g, ok := groups[key]
		if !ok {
			groups[key] = &group{winner: d, order: i}
			keys = append(keys, key)
			continue
		}
		if origin != nil && closer(d, g.winner) {
			g.winner = d
		}
	}

	ranked := make([]*DealView, 0, len(keys))
	for _, key := range keys {
		ranked = append(ranked, groups[key].winner)
	}
	return ranked
}

func dedupKey(d *DealView) string {
	return deal.NormalizeTitle(d.Title) + "|" + deal.NormalizeText(d.PriceText)
}

// closer reports whether a beats b for the same offer. Known distance beats
// unknown; otherwise smaller wins. Ties keep the incumbent.
func closer(a, b *DealView) bool {
	if a.DistanceMeters == nil {
		return false
	}
	if b.DistanceMeters == nil {
		return true
	}
	return *a.DistanceMeters < *b.DistanceMeters
}

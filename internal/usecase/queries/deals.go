package queries

import (
	"context"
	"log/slog"
	"sort"

	"leafdeals/internal/domain/deal"
	"leafdeals/internal/pkg/clock"
	"leafdeals/internal/pkg/config"
	"leafdeals/internal/pkg/errs"
	"leafdeals/internal/pkg/geo"
)

var ErrDealListFailed = errs.New("failed to list deals")

// DealQueries serves the published deal listing: fresh, filtered, deduped
// across sources, and ordered for display.
type DealQueries interface {
	ListDeals(ctx context.Context, filters DealFilters) ([]*DealView, error)
}

type dealQueriesImpl struct {
	deals    DealReadStore
	geocoder PostalGeocoder
	cfg      config.QualityConfig
	clock    clock.Clock
}

func NewDealQueries(deals DealReadStore, geocoder PostalGeocoder, cfg config.QualityConfig, clk clock.Clock) DealQueries {
	return &dealQueriesImpl{deals: deals, geocoder: geocoder, cfg: cfg, clock: clk}
}

// ListDeals loads deals within the freshness window, resolves the requester's
// postal code when given, collapses cross-source duplicates keeping the
// nearest source, and orders by category weight then ascending price. A
// failing or unresolvable geocode degrades to unranked listing rather than
// failing the request.
func (q *dealQueriesImpl) ListDeals(ctx context.Context, filters DealFilters) ([]*DealView, error) {
	since := q.clock.Now().Add(-q.cfg.FreshnessWindow)

	views, err := q.deals.ListFresh(ctx, filters, since)
	if err != nil {
		return nil, errs.Mark(err, ErrDealListFailed)
	}

	origin := q.resolveOrigin(ctx, filters.PostalCode)
	ranked := Rank(views, origin)

	for _, v := range ranked {
		v.CategoryScore = deal.CategoryScore(v.Category)
		if _, ok := deal.LeadingPrice(v.PriceText); ok {
			display := deal.FormatPrice(v.PriceText)
			v.DisplayPrice = &display
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.CategoryScore != b.CategoryScore {
			return a.CategoryScore > b.CategoryScore
		}
		return lessByPrice(a, b)
	})
	return ranked, nil
}

func (q *dealQueriesImpl) resolveOrigin(ctx context.Context, postal *string) *geo.Point {
	if postal == nil || *postal == "" {
		return nil
	}
	loc, err := q.geocoder.Resolve(ctx, *postal)
	if err != nil {
		slog.Warn("postal geocode failed, listing unranked", "postal", *postal, "error", err)
		return nil
	}
	if loc == nil {
		return nil
	}
	return &loc.Point
}

// lessByPrice orders priced deals ascending; unpriced deals sort last.
func lessByPrice(a, b *DealView) bool {
	ap, aok := deal.LeadingPrice(a.PriceText)
	bp, bok := deal.LeadingPrice(b.PriceText)
	if aok != bok {
		return aok
	}
	if !aok {
		return false
	}
	return ap < bp
}

package readstore

import (
	"context"
	"time"

	"leafdeals/internal/infra"
	"leafdeals/internal/infra/db"
	"leafdeals/internal/pkg/pgconv"
	"leafdeals/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type DealReadStore struct {
	db db.DBTX
}

func NewDealReadStore(dbtx db.DBTX) *DealReadStore {
	return &DealReadStore{db: dbtx}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ListFresh returns accepted, non-review-flagged deals created within the
// freshness window, optionally filtered by category and brand.
func (r *DealReadStore) ListFresh(ctx context.Context, filters queries.DealFilters, since time.Time) ([]*queries.DealView, error) {
	builder := psql.
		Select(
			"d.id", "d.source_id", "s.name", "s.lat", "s.lng",
			"d.category", "d.title", "d.brand", "d.product_name",
			"d.price_text", "d.confidence", "d.created_at",
		).
		From("deals d").
		Join("sources s ON s.id = d.source_id").
		Where(sq.Eq{"d.is_valid": true, "d.needs_review": false}).
		Where(sq.GtOrEq{"d.created_at": since}).
		OrderBy("d.created_at DESC")

	if filters.Category != nil {
		builder = builder.Where(sq.Eq{"d.category": *filters.Category})
	}
	if filters.Brand != nil {
		builder = builder.Where("lower(d.brand) = lower(?)", *filters.Brand)
	}

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build deals query", err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list fresh deals", err)
	}
	defer rows.Close()

	var views []*queries.DealView
	for rows.Next() {
		var (
			id, sourceID   uuid.UUID
			sourceName     string
			lat, lng       pgtype.Float8
			category       string
			title          string
			brand, product pgtype.Text
			priceText      string
			confidence     float64
			createdAt      pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &sourceID, &sourceName, &lat, &lng, &category, &title,
			&brand, &product, &priceText, &confidence, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan deal view", err)
		}

		views = append(views, &queries.DealView{
			ID:          id,
			SourceID:    sourceID,
			SourceName:  sourceName,
			SourceLat:   pgconv.Float64PtrFromPgtype(lat),
			SourceLng:   pgconv.Float64PtrFromPgtype(lng),
			Category:    category,
			Title:       title,
			Brand:       pgconv.StringPtrFromPgtype(brand),
			ProductName: pgconv.StringPtrFromPgtype(product),
			PriceText:   priceText,
			Confidence:  confidence,
			CreatedAt:   pgconv.TimeFromPgtype(createdAt),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read deal views", err)
	}
	return views, nil
}

package readstore

import (
	"context"

	"leafdeals/internal/domain/source"
	"leafdeals/internal/infra"
	"leafdeals/internal/infra/db"
	"leafdeals/internal/pkg/geo"
	"leafdeals/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type SourceReadStore struct {
	db db.DBTX
}

func NewSourceReadStore(dbtx db.DBTX) *SourceReadStore {
	return &SourceReadStore{db: dbtx}
}

const sourceColumns = `
s.id, s.external_id, s.name, s.address, s.lat, s.lng, s.phone, s.website,
s.menu_url, s.menu_provider, s.reliability, s.active, s.created_at`

// ListActive returns every active source.
func (r *SourceReadStore) ListActive(ctx context.Context) ([]*source.Source, error) {
	rows, err := r.db.Query(ctx, `SELECT `+sourceColumns+` FROM sources s WHERE s.active`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active sources", err)
	}
	defer rows.Close()
	return scanSources(rows)
}

// ListZoneLinkedActive returns active sources linked to zones that have at
// least one subscriber.
func (r *SourceReadStore) ListZoneLinkedActive(ctx context.Context) ([]*source.Source, error) {
	const sql = `
SELECT DISTINCT ` + sourceColumns + `
FROM sources s
JOIN zone_sources zs ON zs.source_id = s.id
WHERE s.active
  AND EXISTS (SELECT 1 FROM zone_subscribers sub WHERE sub.zone_id = zs.zone_id)`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list zone-linked sources", err)
	}
	defer rows.Close()
	return scanSources(rows)
}

// SubscriberZonePoints returns the coordinates of every geocoded zone with
// at least one active subscriber. Used for the radius leg of the dispatcher
// candidate merge.
func (r *SourceReadStore) SubscriberZonePoints(ctx context.Context) ([]geo.Point, error) {
	const sql = `
SELECT DISTINCT z.lat, z.lng
FROM zones z
JOIN zone_subscribers sub ON sub.zone_id = z.id
WHERE z.status = 'active' AND z.lat IS NOT NULL AND z.lng IS NOT NULL`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list subscriber zone points", err)
	}
	defer rows.Close()

	var points []geo.Point
	for rows.Next() {
		var p geo.Point
		if err := rows.Scan(&p.Lat, &p.Lng); err != nil {
			return nil, infra.WrapRepoErr("failed to scan zone point", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read zone points", err)
	}
	return points, nil
}

func scanSources(rows pgx.Rows) ([]*source.Source, error) {
	var sources []*source.Source
	for rows.Next() {
		var (
			id                      uuid.UUID
			externalID              pgtype.Text
			name                    string
			address                 pgtype.Text
			lat, lng                pgtype.Float8
			phone, website, menuURL pgtype.Text
			menuProvider            string
			reliability             float64
			active                  bool
			createdAt               pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &externalID, &name, &address, &lat, &lng,
			&phone, &website, &menuURL, &menuProvider, &reliability, &active, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan source", err)
		}

		sources = append(sources, source.Reconstitute(
			id,
			pgconv.StringPtrFromPgtype(externalID),
			name,
			pgconv.StringPtrFromPgtype(address),
			pgconv.Float64PtrFromPgtype(lat), pgconv.Float64PtrFromPgtype(lng),
			pgconv.StringPtrFromPgtype(phone), pgconv.StringPtrFromPgtype(website),
			pgconv.StringPtrFromPgtype(menuURL),
			menuProvider,
			reliability,
			active,
			pgconv.TimeFromPgtype(createdAt),
		))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read sources", err)
	}
	return sources, nil
}

package repository

import (
	"context"
	"time"

	"leafdeals/internal/infra"
	"leafdeals/internal/infra/db"
	"leafdeals/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SourceRepository struct {
	db db.DBTX
}

func NewSourceRepository(dbtx db.DBTX) *SourceRepository {
	return &SourceRepository{db: dbtx}
}

// DiscoveredSourceRecord carries the fields a discovery result may update.
type DiscoveredSourceRecord struct {
	ExternalID *string
	Name       string
	Address    *string
	Lat        *float64
	Lng        *float64
	Phone      *string
	Website    *string
}

// Upsert inserts a discovered source or refreshes its mutable fields.
// Identity is the external stable ID when present, otherwise the
// case-insensitive name.
func (r *SourceRepository) Upsert(ctx context.Context, rec DiscoveredSourceRecord, now time.Time) (uuid.UUID, error) {
	var sql string
	var args []any

	if rec.ExternalID != nil && *rec.ExternalID != "" {
		sql = `
INSERT INTO sources (id, external_id, name, address, lat, lng, phone, website, reliability, active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 0.7, true, $9, $9)
ON CONFLICT (external_id) DO UPDATE
SET address = COALESCE(EXCLUDED.address, sources.address),
    lat = COALESCE(EXCLUDED.lat, sources.lat),
    lng = COALESCE(EXCLUDED.lng, sources.lng),
    phone = COALESCE(EXCLUDED.phone, sources.phone),
    website = COALESCE(EXCLUDED.website, sources.website),
    updated_at = EXCLUDED.updated_at
RETURNING id`
		args = []any{uuid.New(), *rec.ExternalID, rec.Name,
			pgconv.StringPtrToPgtype(rec.Address),
			pgconv.Float64PtrToPgtype(rec.Lat), pgconv.Float64PtrToPgtype(rec.Lng),
			pgconv.StringPtrToPgtype(rec.Phone), pgconv.StringPtrToPgtype(rec.Website), now}
	} else {
		sql = `
INSERT INTO sources (id, external_id, name, address, lat, lng, phone, website, reliability, active, created_at, updated_at)
VALUES ($1, NULL, $2, $3, $4, $5, $6, $7, 0.7, true, $8, $8)
ON CONFLICT ((lower(name))) DO UPDATE
SET address = COALESCE(EXCLUDED.address, sources.address),
    lat = COALESCE(EXCLUDED.lat, sources.lat),
    lng = COALESCE(EXCLUDED.lng, sources.lng),
    phone = COALESCE(EXCLUDED.phone, sources.phone),
    website = COALESCE(EXCLUDED.website, sources.website),
    updated_at = EXCLUDED.updated_at
RETURNING id`
		args = []any{uuid.New(), rec.Name,
			pgconv.StringPtrToPgtype(rec.Address),
			pgconv.Float64PtrToPgtype(rec.Lat), pgconv.Float64PtrToPgtype(rec.Lng),
			pgconv.StringPtrToPgtype(rec.Phone), pgconv.StringPtrToPgtype(rec.Website), now}
	}

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to upsert source", err)
	}
	return id, nil
}

// LinkToZone records that a source was discovered within a zone's radius.
// Idempotent across repeated refreshes.
func (r *SourceRepository) LinkToZone(ctx context.Context, zoneID, sourceID uuid.UUID) error {
	const sql = `
INSERT INTO zone_sources (zone_id, source_id) VALUES ($1, $2)
ON CONFLICT DO NOTHING`

	if _, err := r.db.Exec(ctx, sql, zoneID, sourceID); err != nil {
		return infra.WrapRepoErr("failed to link source to zone", err)
	}
	return nil
}

// RecordAttempt persists the post-attempt reliability score and active flag.
// Safe as a plain read-modify-write because no two concurrent dispatcher
// tasks ever target the same source within one run.
func (r *SourceRepository) RecordAttempt(ctx context.Context, sourceID uuid.UUID, reliability float64, active bool) error {
	const sql = `
UPDATE sources SET reliability = $2, active = $3, updated_at = now()
WHERE id = $1`

	if _, err := r.db.Exec(ctx, sql, sourceID, reliability, active); err != nil {
		return infra.WrapRepoErr("failed to record source attempt", err)
	}
	return nil
}

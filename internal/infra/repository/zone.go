package repository

import (
	"context"
	"time"

	"leafdeals/internal/domain/zone"
	"leafdeals/internal/infra"
	"leafdeals/internal/infra/db"
	"leafdeals/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ZoneRepository struct {
	db db.DBTX
}

func NewZoneRepository(dbtx db.DBTX) *ZoneRepository {
	return &ZoneRepository{db: dbtx}
}

// claimDueZonesSQL stamps a fresh lease onto due, unleased (or lease-expired)
// zones and returns them in one round trip. The subselect with FOR UPDATE
// SKIP LOCKED makes the claim-and-stamp atomic: two concurrent triggers can
// never claim the same zone, and neither blocks the other.
const claimDueZonesSQL = `
UPDATE zones z
SET lease_token = $1, lease_expires_at = $2, updated_at = $3
WHERE z.id IN (
    SELECT id FROM zones
    WHERE status = 'active'
      AND next_due <= $3
      AND (lease_token IS NULL OR lease_expires_at < $3)
    ORDER BY next_due ASC
    LIMIT $4
    FOR UPDATE SKIP LOCKED
)
RETURNING z.id, z.postal_code, z.status, z.next_due, z.lease_token,
          z.lease_expires_at, z.last_processed_at, z.refresh_interval_secs,
          z.lat, z.lng, z.created_at`

func (r *ZoneRepository) ClaimDue(
	ctx context.Context,
	batchSize int,
	leaseToken uuid.UUID,
	now time.Time,
	leaseFor time.Duration,
) ([]*zone.Zone, error) {
	rows, err := r.db.Query(ctx, claimDueZonesSQL, leaseToken, now.Add(leaseFor), now, batchSize)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim due zones", err)
	}
	defer rows.Close()

	var zones []*zone.Zone
	for rows.Next() {
		var (
			id              uuid.UUID
			postalCode      string
			status          string
			nextDue         pgtype.Timestamptz
			token           pgtype.UUID
			leaseExpiresAt  pgtype.Timestamptz
			lastProcessedAt pgtype.Timestamptz
			intervalSecs    int64
			lat, lng        pgtype.Float8
			createdAt       pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &postalCode, &status, &nextDue, &token, &leaseExpiresAt,
			&lastProcessedAt, &intervalSecs, &lat, &lng, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan claimed zone", err)
		}

		var loc *zone.Coordinates
		if lat.Valid && lng.Valid {
			loc = &zone.Coordinates{Lat: lat.Float64, Lng: lng.Float64}
		}

		z, err := zone.Reconstitute(
			id, postalCode, zone.Status(status),
			pgconv.TimeFromPgtype(nextDue),
			pgconv.UUIDPtrFromPgtype(token),
			pgconv.TimePtrFromPgtype(leaseExpiresAt),
			pgconv.TimePtrFromPgtype(lastProcessedAt),
			time.Duration(intervalSecs)*time.Second,
			loc,
			pgconv.TimeFromPgtype(createdAt),
		)
		if err != nil {
			return nil, infra.WrapRepoErr("claimed zone has invalid state", err)
		}
		zones = append(zones, z)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read claimed zones", err)
	}

	return zones, nil
}

// ReleaseSuccess clears the lease after a successful refresh and schedules
// the next run. The lease_token guard makes the release a no-op if the lease
// already lapsed and was re-claimed by another run.
func (r *ZoneRepository) ReleaseSuccess(
	ctx context.Context,
	zoneID, leaseToken uuid.UUID,
	processedAt, nextDue time.Time,
) error {
	const sql = `
UPDATE zones
SET lease_token = NULL, lease_expires_at = NULL,
    last_processed_at = $3, next_due = $4, updated_at = $3
WHERE id = $1 AND lease_token = $2`

	if _, err := r.db.Exec(ctx, sql, zoneID, leaseToken, processedAt, nextDue); err != nil {
		return infra.WrapRepoErr("failed to release zone lease", err)
	}
	return nil
}

// ReleaseBackoff clears the lease without marking the zone processed and
// reschedules it after a failure.
func (r *ZoneRepository) ReleaseBackoff(
	ctx context.Context,
	zoneID, leaseToken uuid.UUID,
	nextDue time.Time,
) error {
	const sql = `
UPDATE zones
SET lease_token = NULL, lease_expires_at = NULL, next_due = $3, updated_at = now()
WHERE id = $1 AND lease_token = $2`

	if _, err := r.db.Exec(ctx, sql, zoneID, leaseToken, nextDue); err != nil {
		return infra.WrapRepoErr("failed to reschedule zone", err)
	}
	return nil
}

func (r *ZoneRepository) UpdateLocation(
	ctx context.Context,
	zoneID uuid.UUID,
	lat, lng float64,
	city, region string,
) error {
	const sql = `
UPDATE zones SET lat = $2, lng = $3, city = $4, region = $5, updated_at = now()
WHERE id = $1`

	if _, err := r.db.Exec(ctx, sql, zoneID, lat, lng, city, region); err != nil {
		return infra.WrapRepoErr("failed to update zone location", err)
	}
	return nil
}

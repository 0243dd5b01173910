package repository

import (
	"context"
	"time"

	"leafdeals/internal/infra"
	"leafdeals/internal/infra/db"

	"github.com/google/uuid"
)

type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(dbtx db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: dbtx}
}

// CreateZoneRefreshed inserts one zone_refreshed notification per subscriber
// of the zone. Idempotent: the unique constraint on
// (user_id, zone_id, kind, notify_date) makes repeated refreshes in the same
// day no-ops.
func (r *NotificationRepository) CreateZoneRefreshed(ctx context.Context, zoneID uuid.UUID, now time.Time) (int64, error) {
	const sql = `
INSERT INTO notifications (id, user_id, zone_id, kind, notify_date, created_at)
SELECT gen_random_uuid(), zs.user_id, zs.zone_id, 'zone_refreshed', $2::date, $2
FROM zone_subscribers zs
WHERE zs.zone_id = $1
ON CONFLICT DO NOTHING`

	tag, err := r.db.Exec(ctx, sql, zoneID, now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create zone notifications", err)
	}
	return tag.RowsAffected(), nil
}

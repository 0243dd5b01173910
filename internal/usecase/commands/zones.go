package commands

import (
	"context"
	"log/slog"
	"time"

	"leafdeals/internal/domain/zone"
	"leafdeals/internal/infra/repository"
	"leafdeals/internal/pkg/clock"
	"leafdeals/internal/pkg/config"
	"leafdeals/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrZoneClaimFailed = errs.New("failed to claim due zones")

const (
	geocodeFailureBackoff = time.Hour
	zoneFailureBackoff    = 15 * time.Minute
)

// RefreshStats summarizes one zone refresh run.
type RefreshStats struct {
	Claimed   int `json:"claimed"`
	Processed int `json:"processed"`
	Failed    int `json:"failed"`
	Skipped   int `json:"skipped"`
}

// ZoneCommands is the zone lease scheduler: it claims a bounded batch of due
// zones atomically, refreshes each zone's source list, and releases or
// re-schedules the lease on every exit path.
type ZoneCommands interface {
	ClaimDueZones(ctx context.Context, batchSize int) ([]*zone.Zone, error)
	RefreshZones(ctx context.Context, batchSize int) (RefreshStats, error)
}

type zoneCommandsImpl struct {
	zones         ZoneRepository
	sources       SourceRepository
	notifications NotificationRepository
	geocoder      Geocoder
	discovery     SourceDiscovery
	cfg           config.JobsConfig
	clock         clock.Clock
}

func NewZoneCommands(
	zones ZoneRepository,
	sources SourceRepository,
	notifications NotificationRepository,
	geocoder Geocoder,
	discovery SourceDiscovery,
	cfg config.JobsConfig,
	clk clock.Clock,
) ZoneCommands {
	return &zoneCommandsImpl{
		zones:         zones,
		sources:       sources,
		notifications: notifications,
		geocoder:      geocoder,
		discovery:     discovery,
		cfg:           cfg,
		clock:         clk,
	}
}

// ClaimDueZones atomically claims up to batchSize due zones, stamping each
// with a fresh lease token. Two concurrent triggers can never claim the same
// zone: the claim and the stamp are a single conditional update.
func (c *zoneCommandsImpl) ClaimDueZones(ctx context.Context, batchSize int) ([]*zone.Zone, error) {
	batchSize = c.clampBatchSize(batchSize)

	claimed, err := c.zones.ClaimDue(ctx, batchSize, uuid.New(), c.clock.Now(), c.cfg.LeaseDuration)
	if err != nil {
		return nil, errs.Mark(err, ErrZoneClaimFailed)
	}
	return claimed, nil
}

// RefreshZones claims a batch and processes each claimed zone sequentially.
// One zone's failure never aborts the batch.
func (c *zoneCommandsImpl) RefreshZones(ctx context.Context, batchSize int) (RefreshStats, error) {
	var stats RefreshStats

	claimed, err := c.ClaimDueZones(ctx, batchSize)
	if err != nil {
		return stats, err
	}
	stats.Claimed = len(claimed)

	for _, z := range claimed {
		switch c.refreshZone(ctx, z) {
		case refreshProcessed:
			stats.Processed++
		case refreshSkipped:
			stats.Skipped++
		case refreshFailed:
			stats.Failed++
		}
	}
	return stats, nil
}

type refreshOutcome int

const (
	refreshProcessed refreshOutcome = iota
	refreshSkipped
	refreshFailed
)

// refreshZone runs the per-zone pipeline: geocode, discover, upsert, notify.
// The lease is cleared on every exit path; a crash mid-run is covered by the
// lease expiry alone.
func (c *zoneCommandsImpl) refreshZone(ctx context.Context, z *zone.Zone) refreshOutcome {
	now := c.clock.Now()
	token := *z.LeaseToken()
	postal := z.PostalCode().String()

	loc, err := c.geocoder.Resolve(ctx, postal)
	if err != nil || loc == nil {
		// Unresolvable or failing geocodes get a long backoff to avoid a
		// retry storm against the geocoder.
		c.releaseBackoff(ctx, z.ID(), token, now.Add(geocodeFailureBackoff))
		if err != nil {
			slog.Warn("zone geocoding failed", "zone", postal, "error", err)
			return refreshFailed
		}
		slog.Info("zone postal code unresolvable", "zone", postal)
		return refreshSkipped
	}

	if err := c.zones.UpdateLocation(ctx, z.ID(), loc.Lat, loc.Lng, loc.City, loc.Region); err != nil {
		slog.Error("failed to persist zone location", "zone", postal, "error", err)
		c.releaseBackoff(ctx, z.ID(), token, now.Add(zoneFailureBackoff))
		return refreshFailed
	}

	found, err := c.discovery.Search(ctx, loc.Lat, loc.Lng, c.cfg.DiscoveryRadiusM, c.cfg.DiscoveryMax)
	if err != nil {
		slog.Warn("source discovery failed", "zone", postal, "error", err)
		c.releaseBackoff(ctx, z.ID(), token, now.Add(zoneFailureBackoff))
		return refreshFailed
	}

	for _, d := range found {
		if err := c.upsertDiscovered(ctx, z.ID(), d, now); err != nil {
			slog.Error("failed to persist discovered source",
				"zone", postal, "source", d.Name, "error", err)
			c.releaseBackoff(ctx, z.ID(), token, now.Add(zoneFailureBackoff))
			return refreshFailed
		}
	}

	// Side effect only: notification failures must not fail the zone.
	if _, err := c.notifications.CreateZoneRefreshed(ctx, z.ID(), now); err != nil {
		slog.Warn("failed to create zone notifications", "zone", postal, "error", err)
	}

	interval := z.RefreshInterval()
	if interval <= 0 {
		interval = c.cfg.RefreshInterval
	}
	if err := c.zones.ReleaseSuccess(ctx, z.ID(), token, now, now.Add(interval)); err != nil {
		slog.Error("failed to release zone lease", "zone", postal, "error", err)
		return refreshFailed
	}
	return refreshProcessed
}

func (c *zoneCommandsImpl) upsertDiscovered(ctx context.Context, zoneID uuid.UUID, d DiscoveredSource, now time.Time) error {
	lat, lng := d.Lat, d.Lng
	sourceID, err := c.sources.Upsert(ctx, repository.DiscoveredSourceRecord{
		ExternalID: d.StableID,
		Name:       d.Name,
		Address:    d.Address,
		Lat:        &lat,
		Lng:        &lng,
		Phone:      d.Phone,
		Website:    d.Website,
	}, now)
	if err != nil {
		return err
	}
	return c.sources.LinkToZone(ctx, zoneID, sourceID)
}

func (c *zoneCommandsImpl) releaseBackoff(ctx context.Context, zoneID, token uuid.UUID, nextDue time.Time) {
	if err := c.zones.ReleaseBackoff(ctx, zoneID, token, nextDue); err != nil {
		// The lease expiry still guarantees the zone becomes claimable.
		slog.Error("failed to reschedule zone", "zone_id", zoneID, "error", err)
	}
}

func (c *zoneCommandsImpl) clampBatchSize(batchSize int) int {
	if batchSize <= 0 {
		return c.cfg.ClaimBatchSize
	}
	if batchSize > c.cfg.ClaimBatchMax {
		return c.cfg.ClaimBatchMax
	}
	return batchSize
}

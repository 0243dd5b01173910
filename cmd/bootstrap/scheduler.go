package bootstrap

import (
	"context"
	"log/slog"

	"leafdeals/internal/pkg/config"
	"leafdeals/internal/usecase/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// SchedulerModule runs the zone refresh and ingestion jobs on cron schedules
// when SCHEDULER_ENABLED is set. Deployments that trigger jobs externally
// (via /api/jobs) leave it off; the lease protocol makes the two safe to mix.
var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(RegisterScheduler),
)

func RegisterScheduler(
	lc fx.Lifecycle,
	cfg config.Config,
	zoneCommands commands.ZoneCommands,
	ingestCommands commands.IngestCommands,
) error {
	if !cfg.Jobs.SchedulerEnabled {
		return nil
	}

	c := cron.New()

	if _, err := c.AddFunc(cfg.Jobs.ZoneCronSpec, func() {
		stats, err := zoneCommands.RefreshZones(context.Background(), 0)
		if err != nil {
			slog.Error("scheduled zone refresh failed", "error", err)
			return
		}
		slog.Info("scheduled zone refresh completed",
			"claimed", stats.Claimed, "processed", stats.Processed,
			"failed", stats.Failed, "skipped", stats.Skipped)
	}); err != nil {
		return err
	}

	if _, err := c.AddFunc(cfg.Jobs.IngestCronSpec, func() {
		stats, err := ingestCommands.RunIngestion(context.Background())
		if err != nil {
			slog.Error("scheduled ingestion failed", "error", err)
			return
		}
		slog.Info("scheduled ingestion completed",
			"sources_seen", stats.SourcesSeen, "processed", stats.Processed,
			"failed", stats.Failed, "deals_inserted", stats.DealsInserted)
	}); err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			c.Start()
			slog.Info("in-process scheduler started",
				"zone_spec", cfg.Jobs.ZoneCronSpec, "ingest_spec", cfg.Jobs.IngestCronSpec)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			stopCtx := c.Stop()
			select {
			case <-stopCtx.Done():
			case <-ctx.Done():
			}
			return nil
		},
	})
	return nil
}

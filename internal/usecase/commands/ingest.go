package commands

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"

	"leafdeals/internal/domain/deal"
	"leafdeals/internal/domain/source"
	"leafdeals/internal/pkg/config"
	"leafdeals/internal/pkg/errs"
	"leafdeals/internal/pkg/geo"
)

var ErrIngestCandidatesFailed = errs.New("failed to gather ingestion candidates")

// Menu providers that historically yield structured deal sections. These
// sort ahead of generic menu pages.
var highValueProviders = map[string]bool{
	"dutchie":    true,
	"iheartjane": true,
	"leafly":     true,
}

// IngestStats summarizes one ingestion run.
type IngestStats struct {
	SourcesSeen   int `json:"sources_seen"`
	Processed     int `json:"processed"`
	Skipped       int `json:"skipped"`
	Failed        int `json:"failed"`
	DealsInserted int `json:"deals_inserted"`
}

// IngestCommands is the ingestion dispatcher: it merges extraction candidates
// from multiple legs, orders them by expected yield, and runs extraction in
// bounded concurrent windows.
type IngestCommands interface {
	RunIngestion(ctx context.Context) (IngestStats, error)
}

type ingestCommandsImpl struct {
	sources    SourceReadStore
	sourceRepo SourceRepository
	extractor  ExtractionProvider
	admission  AdmissionCommands
	cfg        config.JobsConfig
}

func NewIngestCommands(
	sources SourceReadStore,
	sourceRepo SourceRepository,
	extractor ExtractionProvider,
	admission AdmissionCommands,
	cfg config.JobsConfig,
) IngestCommands {
	return &ingestCommandsImpl{
		sources:    sources,
		sourceRepo: sourceRepo,
		extractor:  extractor,
		admission:  admission,
		cfg:        cfg,
	}
}

// RunIngestion gathers candidate sources, orders them, and processes them in
// windows of at most cfg.IngestWindowSize concurrent extractions. A window
// must drain completely before the next one starts.
func (c *ingestCommandsImpl) RunIngestion(ctx context.Context) (IngestStats, error) {
	var stats IngestStats

	candidates, err := c.gatherCandidates(ctx)
	if err != nil {
		return stats, errs.Mark(err, ErrIngestCandidatesFailed)
	}
	stats.SourcesSeen = len(candidates)
	if len(candidates) == 0 {
		return stats, nil
	}

	c.prioritize(candidates)

	window := c.cfg.IngestWindowSize
	if window <= 0 {
		window = 1
	}

	var processed, skipped, failed, inserted int64
	for start := 0; start < len(candidates); start += window {
		end := start + window
		if end > len(candidates) {
			end = len(candidates)
		}

		var wg sync.WaitGroup
		for _, s := range candidates[start:end] {
			wg.Add(1)
			go func(s *source.Source) {
				defer wg.Done()
				switch n, outcome := c.ingestSource(ctx, s); outcome {
				case ingestProcessed:
					atomic.AddInt64(&processed, 1)
					atomic.AddInt64(&inserted, int64(n))
				case ingestSkipped:
					atomic.AddInt64(&skipped, 1)
				case ingestFailed:
					atomic.AddInt64(&failed, 1)
				}
			}(s)
		}
		wg.Wait()
	}

	stats.Processed = int(processed)
	stats.Skipped = int(skipped)
	stats.Failed = int(failed)
	stats.DealsInserted = int(inserted)
	return stats, nil
}

// gatherCandidates merges three legs and dedups by normalized name:
// sources near any subscriber zone, sources linked to subscribed zones, and
// any remaining active source with a known menu.
func (c *ingestCommandsImpl) gatherCandidates(ctx context.Context) ([]*source.Source, error) {
	active, err := c.sources.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	linked, err := c.sources.ListZoneLinkedActive(ctx)
	if err != nil {
		return nil, err
	}
	points, err := c.sources.SubscriberZonePoints(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var merged []*source.Source
	add := func(s *source.Source) {
		key := deal.NormalizeText(s.Name())
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		merged = append(merged, s)
	}

	radius := float64(c.cfg.DiscoveryRadiusM)
	for _, s := range active {
		if s.HasCoordinates() && withinAny(geo.Point{Lat: *s.Lat(), Lng: *s.Lng()}, points, radius) {
			add(s)
		}
	}
	for _, s := range linked {
		add(s)
	}
	for _, s := range active {
		if s.HasMenu() {
			add(s)
		}
	}
	return merged, nil
}

func withinAny(p geo.Point, origins []geo.Point, radiusMeters float64) bool {
	for _, o := range origins {
		if geo.DistanceMeters(p, o) <= radiusMeters {
			return true
		}
	}
	return false
}

// prioritize sorts in place: high-value menu providers first, then any menu
// target, then descending reliability. The sort is stable so the merge order
// breaks ties deterministically.
func (c *ingestCommandsImpl) prioritize(candidates []*source.Source) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		ar, br := tierOf(a), tierOf(b)
		if ar != br {
			return ar > br
		}
		return a.Reliability() > b.Reliability()
	})
}

func tierOf(s *source.Source) int {
	if s.HasMenu() && highValueProviders[s.MenuProvider()] {
		return 2
	}
	if s.HasMenu() {
		return 1
	}
	return 0
}

type ingestOutcome int

const (
	ingestProcessed ingestOutcome = iota
	ingestSkipped
	ingestFailed
)

// ingestSource extracts one source's menu and admits its candidates. A panic
// in any stage counts as a failure for that source only.
func (c *ingestCommandsImpl) ingestSource(ctx context.Context, s *source.Source) (inserted int, outcome ingestOutcome) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("ingestion panicked", "source", s.Name(), "panic", r)
			c.recordFailure(ctx, s)
			inserted, outcome = 0, ingestFailed
		}
	}()

	if !s.HasMenu() {
		slog.Debug("source has no extraction target", "source", s.Name())
		return 0, ingestSkipped
	}

	cands, err := c.extractor.Extract(ctx, ExtractionTarget{
		SourceID:   s.ID(),
		SourceName: s.Name(),
		MenuURL:    *s.MenuURL(),
	})
	if err != nil {
		slog.Warn("extraction failed", "source", s.Name(), "error", err)
		c.recordFailure(ctx, s)
		return 0, ingestFailed
	}
	if len(cands) == 0 {
		slog.Info("extraction yielded no candidates", "source", s.Name())
		c.recordFailure(ctx, s)
		return 0, ingestFailed
	}

	n, err := c.admission.AdmitBatch(ctx, cands, SourceContext{ID: s.ID(), Name: s.Name()})
	if err != nil {
		slog.Error("admission failed", "source", s.Name(), "error", err)
		c.recordFailure(ctx, s)
		return n, ingestFailed
	}

	s.RecordSuccess()
	if err := c.sourceRepo.RecordAttempt(ctx, s.ID(), s.Reliability(), s.Active()); err != nil {
		slog.Warn("failed to persist source reliability", "source", s.Name(), "error", err)
	}
	return n, ingestProcessed
}

func (c *ingestCommandsImpl) recordFailure(ctx context.Context, s *source.Source) {
	s.RecordFailure()
	if !s.Active() {
		slog.Info("source deactivated after repeated failures",
			"source", s.Name(), "reliability", s.Reliability())
	}
	if err := c.sourceRepo.RecordAttempt(ctx, s.ID(), s.Reliability(), s.Active()); err != nil {
		slog.Warn("failed to persist source reliability", "source", s.Name(), "error", err)
	}
}

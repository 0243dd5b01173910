package commands

import (
	"context"
	"time"

	"leafdeals/internal/domain/deal"
	"leafdeals/internal/domain/source"
	"leafdeals/internal/domain/zone"
	"leafdeals/internal/infra/repository"
	"leafdeals/internal/pkg/geo"

	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// External collaborator ports. Implementations live in internal/infra; the
// pipeline treats them as opaque.
// ---------------------------------------------------------------------------

// Geocoder resolves a postal code to coordinates and administrative
// metadata. A (nil, nil) return means "could not resolve"; unresolvable
// codes are not errors.
type Geocoder interface {
	Resolve(ctx context.Context, postalCode string) (*geo.Location, error)
}

// DiscoveredSource is a candidate upstream source returned by discovery.
type DiscoveredSource struct {
	StableID *string
	Name     string
	Address  *string
	Lat      float64
	Lng      float64
	Phone    *string
	Website  *string
}

// SourceDiscovery finds candidate retail locations around a point. May
// return an empty list.
type SourceDiscovery interface {
	Search(ctx context.Context, lat, lng float64, radiusMeters, maxResults int) ([]DiscoveredSource, error)
}

// ExtractionTarget identifies the document the provider should extract deals
// from.
type ExtractionTarget struct {
	SourceID   uuid.UUID
	SourceName string
	MenuURL    string
}

// ExtractionProvider extracts candidate deal records from a source's menu.
// May return an empty list; may error on transport failure.
type ExtractionProvider interface {
	Extract(ctx context.Context, target ExtractionTarget) ([]deal.Candidate, error)
}

// ---------------------------------------------------------------------------
// Persistence ports, implemented by internal/infra/repository and
// internal/infra/readstore.
// ---------------------------------------------------------------------------

type ZoneRepository interface {
	ClaimDue(ctx context.Context, batchSize int, leaseToken uuid.UUID, now time.Time, leaseFor time.Duration) ([]*zone.Zone, error)
	ReleaseSuccess(ctx context.Context, zoneID, leaseToken uuid.UUID, processedAt, nextDue time.Time) error
	ReleaseBackoff(ctx context.Context, zoneID, leaseToken uuid.UUID, nextDue time.Time) error
	UpdateLocation(ctx context.Context, zoneID uuid.UUID, lat, lng float64, city, region string) error
}

type SourceRepository interface {
	Upsert(ctx context.Context, rec repository.DiscoveredSourceRecord, now time.Time) (uuid.UUID, error)
	LinkToZone(ctx context.Context, zoneID, sourceID uuid.UUID) error
	RecordAttempt(ctx context.Context, sourceID uuid.UUID, reliability float64, active bool) error
}

type SourceReadStore interface {
	ListActive(ctx context.Context) ([]*source.Source, error)
	ListZoneLinkedActive(ctx context.Context) ([]*source.Source, error)
	SubscriberZonePoints(ctx context.Context) ([]geo.Point, error)
}

type DealRepository interface {
	ExistsExact(ctx context.Context, sourceID uuid.UUID, identityHash string, dealDate time.Time) (bool, error)
	FuzzyPriceTexts(ctx context.Context, sourceID uuid.UUID, titleNorm string, since time.Time) ([]string, error)
	Insert(ctx context.Context, rec repository.AcceptedDealRecord) (uuid.UUID, error)
}

type NotificationRepository interface {
	CreateZoneRefreshed(ctx context.Context, zoneID uuid.UUID, now time.Time) (int64, error)
}

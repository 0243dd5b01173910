package zone

import (
	"time"

	"leafdeals/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidPostalCode = errs.New("invalid postal code")
	ErrZonePaused        = errs.New("zone is paused")
)

type Status string

const (
	StatusActive Status = "active"
	StatusPaused Status = "paused"
)

// Zone is a geographic catchment keyed by postal code. At most one active
// lease may exist per zone at any instant; the lease is valid only while
// now < leaseExpiresAt.
type Zone struct {
	id              uuid.UUID
	postalCode      PostalCode
	status          Status
	nextDue         time.Time
	leaseToken      *uuid.UUID
	leaseExpiresAt  *time.Time
	lastProcessedAt *time.Time
	refreshInterval time.Duration
	location        *Coordinates
	createdAt       time.Time
}

// New creates a zone on first subscription to a postal code. The zone is due
// immediately so the next scheduler run discovers its sources.
func New(postalCode string, refreshInterval time.Duration, now time.Time) (*Zone, error) {
	pc, err := NewPostalCode(postalCode)
	if err != nil {
		return nil, err
	}

	return &Zone{
		id:              uuid.New(),
		postalCode:      pc,
		status:          StatusActive,
		nextDue:         now,
		refreshInterval: refreshInterval,
		createdAt:       now,
	}, nil
}

// Reconstitute rebuilds a zone from persisted state.
func Reconstitute(
	id uuid.UUID,
	postalCode string,
	status Status,
	nextDue time.Time,
	leaseToken *uuid.UUID,
	leaseExpiresAt *time.Time,
	lastProcessedAt *time.Time,
	refreshInterval time.Duration,
	location *Coordinates,
	createdAt time.Time,
) (*Zone, error) {
	pc, err := NewPostalCode(postalCode)
	if err != nil {
		return nil, err
	}

	return &Zone{
		id:              id,
		postalCode:      pc,
		status:          status,
		nextDue:         nextDue,
		leaseToken:      leaseToken,
		leaseExpiresAt:  leaseExpiresAt,
		lastProcessedAt: lastProcessedAt,
		refreshInterval: refreshInterval,
		location:        location,
		createdAt:       createdAt,
	}, nil
}

func (z *Zone) ID() uuid.UUID               { return z.id }
func (z *Zone) PostalCode() PostalCode      { return z.postalCode }
func (z *Zone) Status() Status              { return z.status }
func (z *Zone) NextDue() time.Time          { return z.nextDue }
func (z *Zone) LeaseToken() *uuid.UUID      { return z.leaseToken }
func (z *Zone) LeaseExpiresAt() *time.Time  { return z.leaseExpiresAt }
func (z *Zone) LastProcessedAt() *time.Time { return z.lastProcessedAt }
func (z *Zone) RefreshInterval() time.Duration {
	return z.refreshInterval
}
func (z *Zone) Location() *Coordinates { return z.location }
func (z *Zone) CreatedAt() time.Time   { return z.createdAt }

// LeaseActive reports whether the zone currently holds a valid lease.
// An expired lease counts as no lease; the expiry alone guarantees a
// crashed run eventually releases the zone.
func (z *Zone) LeaseActive(now time.Time) bool {
	return z.leaseToken != nil && z.leaseExpiresAt != nil && now.Before(*z.leaseExpiresAt)
}

// Claimable reports whether a scheduler run may claim this zone.
func (z *Zone) Claimable(now time.Time) bool {
	return z.status == StatusActive && !z.nextDue.After(now) && !z.LeaseActive(now)
}

// Pause soft-deletes the zone. Zones are never hard-deleted.
func (z *Zone) Pause() {
	z.status = StatusPaused
}

func (z *Zone) SetLocation(c Coordinates) {
	z.location = &c
}

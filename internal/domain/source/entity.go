package source

import (
	"strings"
	"time"

	"leafdeals/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrEmptyName = errs.New("source name is required")

const (
	// Reliability is a rolling score in [0,1]. Rewards are smaller than
	// penalties so repeatedly failing sources drift toward deactivation.
	InitialReliability = 0.7
	ReliabilityReward  = 0.05
	ReliabilityPenalty = 0.15
	// Sources below this floor are deactivated until manually reactivated.
	ReliabilityFloor = 0.3
)

// Source is an upstream retailer/location that may yield deal data.
// Identity is the external stable ID when the discovery provider supplies
// one; otherwise the name is the dedup key.
type Source struct {
	id           uuid.UUID
	externalID   *string
	name         string
	address      *string
	lat          *float64
	lng          *float64
	phone        *string
	website      *string
	menuURL      *string
	menuProvider string
	reliability  float64
	active       bool
	createdAt    time.Time
}

// New creates a source from a discovery result.
func New(externalID *string, name string, now time.Time) (*Source, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrEmptyName
	}

	return &Source{
		id:          uuid.New(),
		externalID:  externalID,
		name:        trimmed,
		reliability: InitialReliability,
		active:      true,
		createdAt:   now,
	}, nil
}

// Reconstitute rebuilds a source from persisted state.
func Reconstitute(
	id uuid.UUID,
	externalID *string,
	name string,
	address *string,
	lat, lng *float64,
	phone, website, menuURL *string,
	menuProvider string,
	reliability float64,
	active bool,
	createdAt time.Time,
) *Source {
	return &Source{
		id:           id,
		externalID:   externalID,
		name:         name,
		address:      address,
		lat:          lat,
		lng:          lng,
		phone:        phone,
		website:      website,
		menuURL:      menuURL,
		menuProvider: menuProvider,
		reliability:  reliability,
		active:       active,
		createdAt:    createdAt,
	}
}

func (s *Source) ID() uuid.UUID        { return s.id }
func (s *Source) ExternalID() *string  { return s.externalID }
func (s *Source) Name() string         { return s.name }
func (s *Source) Address() *string     { return s.address }
func (s *Source) Lat() *float64        { return s.lat }
func (s *Source) Lng() *float64        { return s.lng }
func (s *Source) Phone() *string       { return s.phone }
func (s *Source) Website() *string     { return s.website }
func (s *Source) MenuURL() *string     { return s.menuURL }
func (s *Source) MenuProvider() string { return s.menuProvider }
func (s *Source) Reliability() float64 { return s.reliability }
func (s *Source) Active() bool         { return s.active }
func (s *Source) CreatedAt() time.Time { return s.createdAt }

// HasCoordinates reports whether the source can participate in distance
// ranking.
func (s *Source) HasCoordinates() bool {
	return s.lat != nil && s.lng != nil
}

// HasMenu reports whether an extraction target is known for this source.
func (s *Source) HasMenu() bool {
	return s.menuURL != nil && *s.menuURL != ""
}

// Enrich updates the mutable discovery fields on re-discovery. Identity
// fields (externalID, name-as-key) are never changed here.
func (s *Source) Enrich(address *string, lat, lng *float64, phone, website *string) {
	if address != nil {
		s.address = address
	}
	if lat != nil && lng != nil {
		s.lat = lat
		s.lng = lng
	}
	if phone != nil {
		s.phone = phone
	}
	if website != nil {
		s.website = website
	}
}

func (s *Source) SetMenu(menuURL string, menuProvider string) {
	s.menuURL = &menuURL
	s.menuProvider = menuProvider
}

// RecordSuccess rewards a positive extraction yield, bounded at 1.0.
func (s *Source) RecordSuccess() {
	s.reliability = clamp(s.reliability + ReliabilityReward)
}

// RecordFailure penalizes a failed or empty extraction. Crossing the
// reliability floor deactivates the source until manual reactivation.
func (s *Source) RecordFailure() {
	s.reliability = clamp(s.reliability - ReliabilityPenalty)
	if s.reliability < ReliabilityFloor {
		s.active = false
	}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

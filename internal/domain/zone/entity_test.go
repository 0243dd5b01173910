package zone_test

import (
	"testing"
	"time"

	"leafdeals/internal/domain/zone"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewZone(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("new zone is active and due immediately", func(t *testing.T) {
		z, err := zone.New("48201", 6*time.Hour, now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, z.ID())
		assert.Equal(t, zone.StatusActive, z.Status())
		assert.Equal(t, now, z.NextDue())
		assert.True(t, z.Claimable(now))
	})

	t.Run("postal code validation", func(t *testing.T) {
		cases := []struct {
			name  string
			code  string
			errIs error
		}{
			{name: "valid", code: "48201"},
			{name: "valid with whitespace", code: " 48201 "},
			{name: "too short", code: "4820", errIs: zone.ErrInvalidPostalCode},
			{name: "too long", code: "482011", errIs: zone.ErrInvalidPostalCode},
			{name: "non numeric", code: "4820a", errIs: zone.ErrInvalidPostalCode},
			{name: "empty", code: "", errIs: zone.ErrInvalidPostalCode},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := zone.New(tc.code, 6*time.Hour, now)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})
}

func TestZoneLease(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	token := uuid.New()

	reconstitute := func(leaseToken *uuid.UUID, leaseExpiresAt *time.Time, nextDue time.Time, status zone.Status) *zone.Zone {
		z, err := zone.Reconstitute(
			uuid.New(), "48201", status, nextDue,
			leaseToken, leaseExpiresAt, nil, 6*time.Hour, nil, now.Add(-24*time.Hour),
		)
		require.NoError(t, err)
		return z
	}

	t.Run("active lease blocks claiming", func(t *testing.T) {
		exp := now.Add(5 * time.Minute)
		z := reconstitute(&token, &exp, now.Add(-time.Hour), zone.StatusActive)

		assert.True(t, z.LeaseActive(now))
		assert.False(t, z.Claimable(now))
	})

	t.Run("expired lease is claimable without intervention", func(t *testing.T) {
		exp := now.Add(-time.Minute)
		z := reconstitute(&token, &exp, now.Add(-time.Hour), zone.StatusActive)

		assert.False(t, z.LeaseActive(now))
		assert.True(t, z.Claimable(now))
	})

	t.Run("not yet due is not claimable", func(t *testing.T) {
		z := reconstitute(nil, nil, now.Add(time.Hour), zone.StatusActive)
		assert.False(t, z.Claimable(now))
	})

	t.Run("paused zone is never claimable", func(t *testing.T) {
		z := reconstitute(nil, nil, now.Add(-time.Hour), zone.StatusPaused)
		assert.False(t, z.Claimable(now))
	})
}

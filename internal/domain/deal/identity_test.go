package deal_test

import (
	"testing"
	"time"

	"leafdeals/internal/domain/deal"

	"github.com/stretchr/testify/assert"
)

func TestIdentityHash(t *testing.T) {
	date := time.Date(2025, 6, 1, 15, 30, 0, 0, time.UTC)

	t.Run("deterministic across repeated calls", func(t *testing.T) {
		h1 := deal.IdentityHash("Green Cross", "Brand X 1g — $15", "$15", date)
		h2 := deal.IdentityHash("Green Cross", "Brand X 1g — $15", "$15", date)
		assert.Equal(t, h1, h2)
		assert.Len(t, h1, 64)
	})

	t.Run("insensitive to case and whitespace noise", func(t *testing.T) {
		h1 := deal.IdentityHash("Green Cross", "Brand X 1g — $15", "$15", date)
		h2 := deal.IdentityHash("GREEN  CROSS", "brand x 1g   $15", " $15 ", date)
		assert.Equal(t, h1, h2)
	})

	t.Run("time of day does not change the hash", func(t *testing.T) {
		morning := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
		evening := time.Date(2025, 6, 1, 22, 0, 0, 0, time.UTC)
		h1 := deal.IdentityHash("Green Cross", "Brand X 1g", "$15", morning)
		h2 := deal.IdentityHash("Green Cross", "Brand X 1g", "$15", evening)
		assert.Equal(t, h1, h2)
	})

	t.Run("distinct per source, title, price, and date", func(t *testing.T) {
		base := deal.IdentityHash("Green Cross", "Brand X 1g", "$15", date)
		assert.NotEqual(t, base, deal.IdentityHash("Herbal Care", "Brand X 1g", "$15", date))
		assert.NotEqual(t, base, deal.IdentityHash("Green Cross", "Brand Y 1g", "$15", date))
		assert.NotEqual(t, base, deal.IdentityHash("Green Cross", "Brand X 1g", "$20", date))
		assert.NotEqual(t, base, deal.IdentityHash("Green Cross", "Brand X 1g", "$15", date.AddDate(0, 0, 1)))
	})
}

func TestNormalizeTitle(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "lowercases", in: "Brand X Flower", want: "brand x flower"},
		{name: "collapses whitespace", in: "  brand   x  ", want: "brand x"},
		{name: "strips punctuation to spaces", in: "Brand X, 1g — $15!", want: "brand x 1g $15"},
		{name: "keeps price symbols", in: "20% off $15.50", want: "20% off $15.50"},
		{name: "empty", in: "", want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, deal.NormalizeTitle(tc.in))
		})
	}
}

package deal_test

import (
	"testing"

	"leafdeals/internal/domain/deal"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalCategory(t *testing.T) {
	assert.Equal(t, "flower", deal.CanonicalCategory("Flower"))
	assert.Equal(t, "flower", deal.CanonicalCategory("  flower "))
	assert.Equal(t, "other", deal.CanonicalCategory("mystery"))
	assert.Equal(t, "other", deal.CanonicalCategory(""))
}

func TestTitleMatchesCategory(t *testing.T) {
	cases := []struct {
		name     string
		title    string
		category string
		want     bool
	}{
		{name: "flower keyword present", title: "Brand X Eighth $25", category: "flower", want: true},
		{name: "gram counts as flower", title: "Brand X 1g special", category: "flower", want: true},
		{name: "edible keyword present", title: "100mg Gummies 2-pack", category: "edibles", want: true},
		{name: "mismatched title", title: "Battery sale today", category: "flower", want: false},
		{name: "other always coheres", title: "Anything at all", category: "other", want: true},
		{name: "unknown category falls back to other", title: "Anything", category: "mystery", want: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, deal.TitleMatchesCategory(tc.title, tc.category))
		})
	}
}

func TestCategoryScore(t *testing.T) {
	assert.Greater(t, deal.CategoryScore("flower"), deal.CategoryScore("edibles"))
	assert.Greater(t, deal.CategoryScore("edibles"), deal.CategoryScore("other"))
	assert.Equal(t, deal.CategoryScore("other"), deal.CategoryScore("unknown-label"))
}

func TestSplitBrand(t *testing.T) {
	t.Run("structured brand wins", func(t *testing.T) {
		b, p := deal.SplitBrand(deal.Candidate{Brand: "Brand X", ProductName: "OG Kush 1g", Title: "whatever"})
		assert.Equal(t, "Brand X", b)
		assert.Equal(t, "OG Kush 1g", p)
	})

	t.Run("structured brand without product strips prefix from title", func(t *testing.T) {
		b, p := deal.SplitBrand(deal.Candidate{Brand: "Brand X", Title: "Brand X - OG Kush 1g"})
		assert.Equal(t, "Brand X", b)
		assert.Equal(t, "OG Kush 1g", p)
	})

	t.Run("title prefix heuristic", func(t *testing.T) {
		b, p := deal.SplitBrand(deal.Candidate{Title: "Brand X - OG Kush 1g"})
		assert.Equal(t, "Brand X", b)
		assert.Equal(t, "OG Kush 1g", p)
	})

	t.Run("no separator yields no brand", func(t *testing.T) {
		b, p := deal.SplitBrand(deal.Candidate{Title: "OG Kush 1g special"})
		assert.Equal(t, "", b)
		assert.Equal(t, "OG Kush 1g special", p)
	})
}

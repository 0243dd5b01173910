package deal_test

import (
	"testing"

	"leafdeals/internal/domain/deal"

	"github.com/stretchr/testify/assert"
)

func TestLeadingPrice(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want float64
		ok   bool
	}{
		{name: "plain dollar amount", in: "$15", want: 15, ok: true},
		{name: "amount with unit", in: "$15 / 1g", want: 15, ok: true},
		{name: "decimal", in: "15.50 each", want: 15.5, ok: true},
		{name: "leading text", in: "now only $12.99", want: 12.99, ok: true},
		{name: "multi-buy takes first number", in: "2 for $30", want: 2, ok: true},
		{name: "percentage", in: "25% off", want: 25, ok: true},
		{name: "no number", in: "BOGO free", ok: false},
		{name: "empty", in: "", ok: false},
		{name: "trailing dot not decimal", in: "$15. great deal", want: 15, ok: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := deal.LeadingPrice(tc.in)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$15", deal.FormatPrice("$15 / 1g"))
	assert.Equal(t, "$15.50", deal.FormatPrice("15.50 each"))
	assert.Equal(t, "BOGO free", deal.FormatPrice(" BOGO free "))
}

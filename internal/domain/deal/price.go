package deal

import (
	"fmt"
	"strconv"
	"strings"
)

// LeadingPrice extracts the first numeric amount from free-form price text
// ("$15 / 1g", "2 for $30", "15.50 each"). Returns false when no number is
// present, which is common for percentage-only or BOGO copy.
func LeadingPrice(priceText string) (float64, bool) {
	s := priceText
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			continue
		}
		j := i
		seenDot := false
		for j < len(s) {
			c = s[j]
			if c >= '0' && c <= '9' {
				j++
				continue
			}
			if c == '.' && !seenDot && j+1 < len(s) && s[j+1] >= '0' && s[j+1] <= '9' {
				seenDot = true
				j++
				continue
			}
			break
		}
		v, err := strconv.ParseFloat(s[i:j], 64)
		if err != nil {
			return 0, false
		}
		return v, true
	}
	return 0, false
}

// FormatPrice renders a display price from raw price text. Presentation
// only; never used for dedup or admission decisions.
func FormatPrice(priceText string) string {
	v, ok := LeadingPrice(priceText)
	if !ok {
		return strings.TrimSpace(priceText)
	}
	if v == float64(int64(v)) {
		return fmt.Sprintf("$%d", int64(v))
	}
	return fmt.Sprintf("$%.2f", v)
}

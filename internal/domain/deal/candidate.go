package deal

// Candidate is raw extraction output. It is never persisted directly; every
// candidate passes through the admission pipeline first.
type Candidate struct {
	Category    string
	Title       string
	Brand       string
	ProductName string
	PriceText   string
	Confidence  float64
}

// PlaceholderTitle is the single source-level summary row written when a
// batch falls below the low-confidence floor. One row per source per run,
// never one per candidate.
const PlaceholderTitle = "Deals available — check menu"

// Placeholder builds the summary candidate that signals activity at a source
// without publishing unreliable structure.
func Placeholder() Candidate {
	return Candidate{
		Category:   "other",
		Title:      PlaceholderTitle,
		PriceText:  "",
		Confidence: 1.0,
	}
}

package deal

import "strings"

// SplitBrand resolves display brand/product fields for a candidate. The
// extractor's structured brand field wins; otherwise a title-prefix
// heuristic takes the leading words before a separator. Display only;
// the result never affects admission outcomes.
func SplitBrand(c Candidate) (brand, product string) {
	if strings.TrimSpace(c.Brand) != "" {
		brand = strings.TrimSpace(c.Brand)
		product = strings.TrimSpace(c.ProductName)
		if product == "" {
			product = strings.TrimSpace(strings.TrimPrefix(c.Title, c.Brand))
			product = strings.TrimLeft(product, " -–:|")
		}
		return brand, product
	}

	for _, sep := range []string{" - ", " – ", ": ", " | "} {
		if idx := strings.Index(c.Title, sep); idx > 0 {
			return strings.TrimSpace(c.Title[:idx]), strings.TrimSpace(c.Title[idx+len(sep):])
		}
	}
	return "", strings.TrimSpace(c.Title)
}

package zone

import "strings"

type PostalCode struct {
	value string
}

// NewPostalCode validates a US 5-digit ZIP code.
func NewPostalCode(s string) (PostalCode, error) {
	t := strings.TrimSpace(s)
	if len(t) != 5 {
		return PostalCode{}, ErrInvalidPostalCode
	}
	for _, r := range t {
		if r < '0' || r > '9' {
			return PostalCode{}, ErrInvalidPostalCode
		}
	}
	return PostalCode{value: t}, nil
}

func (p PostalCode) String() string { return p.value }

type Coordinates struct {
	Lat float64
	Lng float64
}

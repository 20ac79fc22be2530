package record

import "strings"

// SubArea is a disciplinary category that selects the author-count
// weighting exponent.
type SubArea string

const (
	SubAreaAbsent SubArea = ""
	// SubAreaA is experimental physics with large collaborations.
	SubAreaA SubArea = "a"
	// SubAreaB is experimental physics with small collaborations.
	SubAreaB SubArea = "b"
	// SubAreaC is theoretical physics.
	SubAreaC SubArea = "c"
)

var exponents = map[SubArea]float64{
	SubAreaA: 1.0 / 3.0,
	SubAreaB: 1.0 / 3.0,
	SubAreaC: 1.0 / 2.0,
}

// NewSubArea normalizes a raw sub-area code.
func NewSubArea(s string) SubArea {
	return SubArea(strings.ToLower(strings.TrimSpace(s)))
}

// SubAreas returns all known sub-areas in a stable order.
func SubAreas() []SubArea {
	return []SubArea{SubAreaA, SubAreaB, SubAreaC}
}

// Exponent returns the author-count exponent of the sub-area.
func (sa SubArea) Exponent() (float64, bool) {
	e, ok := exponents[sa]
	return e, ok
}

// Known is true for a, b and c.
func (sa SubArea) Known() bool {
	_, ok := exponents[sa]
	return ok
}

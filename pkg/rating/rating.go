// Package rating computes the rating points of a single product.
//
// Points are assigned in this order:
//  1. a manual override keyed by handle wins over everything else;
//  2. otherwise a rule selected by the publication type applies;
//  3. publication types without a rule are fatal, they are never
//     scored as zero silently.
package rating

import (
	"math"

	"github.com/gnames/gnrating/pkg/record"
)

const (
	// Scale multiplies every weight.
	Scale = 6.0
	// DenominatorCap bounds the author-count penalty, so papers of
	// very large collaborations keep a minimal value.
	DenominatorCap = 10.0
)

// Overrides maps product handles to manually adjudicated points.
type Overrides map[string]float64

// zeroTypes are publication types that never earn points.
var zeroTypes = map[record.PubType]struct{}{
	record.JournalAbstract:    {},
	record.JournalTranslation: {},
	record.BookTranslation:    {},
	record.Preface:            {},
	record.ShortIntroduction:  {},
	record.ConferenceAbstract: {},
	record.Poster:             {},
}

// IsZeroType is true for publication types worth no points.
func IsZeroType(pt record.PubType) bool {
	_, ok := zeroTypes[pt]
	return ok
}

// Points returns the rating points of a product for a sub-area.
// A nil overrides map is the same as an empty one.
func Points(
	p record.Product,
	sa record.SubArea,
	overrides Overrides,
) (float64, error) {
	if v, ok := overrides[p.Handle]; ok {
		return v, nil
	}

	if IsZeroType(p.PubType) {
		return 0, nil
	}

	var w float64
	switch p.PubType {
	case record.JournalArticle:
		w = JournalWeight(p.ImpactFactor)
	case record.Proceedings:
		if p.ImpactFactor == nil {
			return 0, nil
		}
		w = 0.3
	case record.BookChapter:
		if p.ImpactFactor == nil {
			return 0, nil
		}
		w = 0.6
	default:
		return 0, UnscorableProductError(p)
	}

	if p.NumAuthors == nil || *p.NumAuthors < 1 {
		return 0, UnscorableProductError(p)
	}
	return Weighted(w, *p.NumAuthors, sa)
}

// JournalWeight returns the base weight of a journal article for
// its impact factor.
func JournalWeight(impactFactor *float64) float64 {
	switch {
	case impactFactor == nil:
		return 0.2
	case *impactFactor < 1:
		return 0.6
	case *impactFactor < 3:
		return 1.0
	default:
		return 1.3
	}
}

// Weighted divides a base weight by the author-count penalty of the
// sub-area: Scale*w / min(numAuthors^exponent, DenominatorCap).
func Weighted(w float64, numAuthors int, sa record.SubArea) (float64, error) {
	exp, ok := sa.Exponent()
	if !ok {
		return 0, UnknownSubAreaError(sa)
	}
	if numAuthors < 1 {
		numAuthors = 1
	}
	if capN, _ := CapAuthors(sa); numAuthors >= capN {
		return Scale * w / DenominatorCap, nil
	}
	den := math.Min(math.Pow(float64(numAuthors), exp), DenominatorCap)
	return Scale * w / den, nil
}

// CapAuthors returns the author count at which the penalty of a
// sub-area reaches DenominatorCap.
func CapAuthors(sa record.SubArea) (int, bool) {
	exp, ok := sa.Exponent()
	if !ok {
		return 0, false
	}
	return int(math.Round(math.Pow(DenominatorCap, 1/exp))), true
}

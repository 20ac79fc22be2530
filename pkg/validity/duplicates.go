package validity

import "github.com/gnames/gnrating/pkg/record"

// TitlePrefix is the number of leading title characters compared
// when identifiers do not settle the question.
const TitlePrefix = 75

// Pair is a duplicate found in a product list. Kept appears first in
// the list, Dropped later.
type Pair struct {
	Kept    record.Product
	Dropped record.Product
}

// IsDuplicateOf reports whether two products describe the same
// publication. That is the case when
//   - both DOIs are present and equal, or
//   - both are monographs with equal present ISBNs, or
//   - titles agree on the first TitlePrefix characters, and year and
//     journal are equal.
func IsDuplicateOf(a, b record.Product) bool {
	if a.DOI != nil && b.DOI != nil && *a.DOI == *b.DOI {
		return true
	}

	if a.PubType == record.Monograph && b.PubType == record.Monograph &&
		a.ISBN != nil && b.ISBN != nil && *a.ISBN == *b.ISBN {
		return true
	}

	if a.Title == nil || b.Title == nil {
		return false
	}
	return prefix(*a.Title) == prefix(*b.Title) &&
		equal(a.Year, b.Year) &&
		equal(a.Journal, b.Journal)
}

// DropDuplicates keeps the first occurrence of every publication
// and returns the later ones as pairs.
func DropDuplicates(products []record.Product) ([]record.Product, []Pair) {
	var unique []record.Product
	var pairs []Pair
	for _, p := range products {
		dup := -1
		for i := range unique {
			if IsDuplicateOf(p, unique[i]) {
				dup = i
				break
			}
		}
		if dup < 0 {
			unique = append(unique, p)
			continue
		}
		pairs = append(pairs, Pair{Kept: unique[dup], Dropped: p})
	}
	return unique, pairs
}

func prefix(s string) string {
	r := []rune(s)
	if len(r) > TitlePrefix {
		r = r[:TitlePrefix]
	}
	return string(r)
}

// equal compares optional values, two absent values are equal.
func equal[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

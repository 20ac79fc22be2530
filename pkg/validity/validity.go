// Package validity marks products that must not take part in the
// rating and finds duplicates that nobody declared.
//
// Every stage returns a new collection. Input collections are never
// modified.
package validity

import (
	"slices"
	"strings"

	"github.com/gnames/gnrating/pkg/collection"
	"github.com/gnames/gnrating/pkg/record"
)

// Products is a collection of publications.
type Products = collection.Collection[record.Product]

// Exclusion names which manually curated row lists make a product
// invalid.
type Exclusion string

const (
	// ExcludeDuplicates invalidates only declared duplicates.
	ExcludeDuplicates Exclusion = "duplicates"
	// ExcludeDuplicatesErrata invalidates declared duplicates and
	// errata.
	ExcludeDuplicatesErrata Exclusion = "duplicates+errata"
)

// ParseExclusion converts a policy value to an Exclusion. There is
// no default: an empty or unknown value is an error.
func ParseExclusion(s string) (Exclusion, error) {
	ex := Exclusion(strings.ToLower(strings.TrimSpace(s)))
	switch ex {
	case ExcludeDuplicates, ExcludeDuplicatesErrata:
		return ex, nil
	default:
		return "", ExclusionError(s)
	}
}

// RowSet is a set of source row indices.
type RowSet map[int]struct{}

// Has is true if the row is in the set.
func (rs RowSet) Has(row int) bool {
	_, ok := rs[row]
	return ok
}

// Sorted returns the rows in ascending order.
func (rs RowSet) Sorted() []int {
	res := make([]int, 0, len(rs))
	for k := range rs {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}

// InvalidRows merges the curated row lists selected by the
// exclusion variant into one set.
func InvalidRows(duplicates, errata []int, ex Exclusion) RowSet {
	res := make(RowSet, len(duplicates)+len(errata))
	for _, v := range duplicates {
		res[v] = struct{}{}
	}
	if ex == ExcludeDuplicatesErrata {
		for _, v := range errata {
			res[v] = struct{}{}
		}
	}
	return res
}

// Apply returns a copy of products where every product with a row
// index in rows has Valid set to false. Products that are already
// invalid stay invalid.
func Apply(products *Products, rows RowSet) *Products {
	res := make([]record.Product, products.Len())
	for i, p := range products.Items() {
		if rows.Has(p.RowIndex) {
			p.Valid = false
		}
		res[i] = p
	}
	return collection.New(res)
}

// FillImpactFactors sets the impact factor of journal articles that
// have none, taking it from a table keyed by journal name. Journal
// names are compared ignoring case. It returns the new collection
// and the handles of patched products.
func FillImpactFactors(
	products *Products,
	table map[string]float64,
) (*Products, []string) {
	if len(table) == 0 {
		return products, nil
	}
	lookup := make(map[string]float64, len(table))
	for k, v := range table {
		lookup[strings.ToLower(strings.TrimSpace(k))] = v
	}

	var patched []string
	res := make([]record.Product, products.Len())
	for i, p := range products.Items() {
		if p.PubType == record.JournalArticle &&
			p.ImpactFactor == nil && p.Journal != nil {
			if v, ok := lookup[strings.ToLower(*p.Journal)]; ok {
				p.ImpactFactor = record.Ptr(v)
				patched = append(patched, p.Handle)
			}
		}
		res[i] = p
	}
	return collection.New(res), patched
}

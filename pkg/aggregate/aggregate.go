// Package aggregate sums the rating points of every person and
// ranks people within their sub-area.
package aggregate

import (
	"slices"

	"github.com/gnames/gnrating/pkg/collection"
	"github.com/gnames/gnrating/pkg/rating"
	"github.com/gnames/gnrating/pkg/record"
	"github.com/gnames/gnrating/pkg/validity"
)

// NotRanked is the Ranking of people left out of a ranked list.
const NotRanked = -1

// Persons is a collection of staff members.
type Persons = collection.Collection[record.Person]

// Products is a collection of publications.
type Products = collection.Collection[record.Product]

// Options control which products count and who gets ranked.
type Options struct {
	// CollabThreshold is the number of authors above which a product
	// counts as a large collaboration. It affects statistics only.
	CollabThreshold int

	// MinProducts is the smallest number of valid products a person
	// needs to be ranked.
	MinProducts int

	// DropDuplicates removes undeclared duplicates from the product
	// list of every person before scoring.
	DropDuplicates bool

	// Year limits products to one publication year. Zero means all
	// years.
	Year int
}

// DefaultOptions returns the options used when nothing is
// configured.
func DefaultOptions() Options {
	return Options{
		CollabThreshold: 20,
		MinProducts:     2,
		DropDuplicates:  true,
	}
}

// Stats are the aggregate values of the products of one person.
type Stats struct {
	Rating            float64
	NumProducts       int
	NumCollabProducts int

	// Author count statistics ignore products without an author
	// count. They are nil when no product has one.
	MinNumAuthors  *int
	MeanNumAuthors *float64
	MaxNumAuthors  *int
}

// Standing is the outcome of the rating for one person.
type Standing struct {
	Person record.Person
	Stats

	// Ranking is the 0-based position within the sub-area, or
	// NotRanked.
	Ranking int

	// Dropped lists undeclared duplicates removed before scoring.
	Dropped []validity.Pair
}

// SubAreaRanking is the ranked list of one sub-area.
type SubAreaRanking struct {
	SubArea record.SubArea

	// Standings are sorted by rating, highest first.
	Standings []Standing

	// Excluded are people with fewer than Options.MinProducts
	// products, in roster order.
	Excluded []Standing
}

// Result holds the rankings of all sub-areas.
type Result struct {
	SubAreas []SubAreaRanking

	// Unassigned are people without a known sub-area.
	Unassigned []record.Person
}

// SubArea returns the ranking of a sub-area.
func (r Result) SubArea(sa record.SubArea) (SubAreaRanking, bool) {
	for _, v := range r.SubAreas {
		if v.SubArea == sa {
			return v, true
		}
	}
	return SubAreaRanking{}, false
}

// Rank computes the standings of all persons. Products must
// already carry their validity flags. The first product that cannot
// be scored stops the run with an error.
func Rank(
	persons *Persons,
	products *Products,
	overrides rating.Overrides,
	opts Options,
) (Result, error) {
	var res Result
	idx, err := index(products, opts.Year)
	if err != nil {
		return res, err
	}

	bySubArea := make(map[record.SubArea][]record.Person)
	for _, p := range persons.Items() {
		if !p.SubArea.Known() {
			res.Unassigned = append(res.Unassigned, p)
			continue
		}
		bySubArea[p.SubArea] = append(bySubArea[p.SubArea], p)
	}

	for _, sa := range record.SubAreas() {
		sr := SubAreaRanking{SubArea: sa}
		for _, p := range bySubArea[sa] {
			st, err := evaluate(p, idx[p.FullName], overrides, opts)
			if err != nil {
				return res, err
			}
			if st.NumProducts < opts.MinProducts {
				sr.Excluded = append(sr.Excluded, st)
				continue
			}
			sr.Standings = append(sr.Standings, st)
		}

		slices.SortStableFunc(sr.Standings, func(a, b Standing) int {
			switch {
			case a.Rating > b.Rating:
				return -1
			case a.Rating < b.Rating:
				return 1
			default:
				return 0
			}
		})
		for i := range sr.Standings {
			sr.Standings[i].Ranking = i
		}
		res.SubAreas = append(res.SubAreas, sr)
	}
	return res, nil
}

// Evaluate computes the standing of one person without ranking it.
func Evaluate(
	person record.Person,
	products *Products,
	overrides rating.Overrides,
	opts Options,
) (Standing, error) {
	idx, err := index(products, opts.Year)
	if err != nil {
		return Standing{Person: person, Ranking: NotRanked}, err
	}
	return evaluate(person, idx[person.FullName], overrides, opts)
}

// Item is a product with the points it earned.
type Item struct {
	Product record.Product
	Points  float64

	// Duplicate is true for undeclared duplicates, they earn
	// nothing.
	Duplicate bool
}

// Breakdown lists the products that count for a person with their
// points, in source order.
func Breakdown(
	person record.Person,
	products *Products,
	overrides rating.Overrides,
	opts Options,
) ([]Item, error) {
	idx, err := index(products, opts.Year)
	if err != nil {
		return nil, err
	}
	prods := idx[person.FullName]
	dups := make(map[string]struct{})
	if opts.DropDuplicates {
		_, pairs := validity.DropDuplicates(prods)
		for _, v := range pairs {
			dups[v.Dropped.Handle] = struct{}{}
		}
	}

	res := make([]Item, 0, len(prods))
	for _, p := range prods {
		if _, ok := dups[p.Handle]; ok {
			res = append(res, Item{Product: p, Duplicate: true})
			continue
		}
		pts, err := rating.Points(p, person.SubArea, overrides)
		if err != nil {
			return nil, err
		}
		res = append(res, Item{Product: p, Points: pts})
	}
	return res, nil
}

func evaluate(
	person record.Person,
	prods []record.Product,
	overrides rating.Overrides,
	opts Options,
) (Standing, error) {
	res := Standing{Person: person, Ranking: NotRanked}
	if opts.DropDuplicates {
		prods, res.Dropped = validity.DropDuplicates(prods)
	}

	var sumAuthors, withAuthors int
	for _, p := range prods {
		pts, err := rating.Points(p, person.SubArea, overrides)
		if err != nil {
			return res, err
		}
		res.Rating += pts
		res.NumProducts++

		if p.NumAuthors == nil {
			continue
		}
		n := *p.NumAuthors
		if n > opts.CollabThreshold {
			res.NumCollabProducts++
		}
		if res.MinNumAuthors == nil || n < *res.MinNumAuthors {
			res.MinNumAuthors = record.Ptr(n)
		}
		if res.MaxNumAuthors == nil || n > *res.MaxNumAuthors {
			res.MaxNumAuthors = record.Ptr(n)
		}
		sumAuthors += n
		withAuthors++
	}
	if withAuthors > 0 {
		res.MeanNumAuthors = record.Ptr(float64(sumAuthors) / float64(withAuthors))
	}
	return res, nil
}

// index groups valid products by the full name of the staff author.
func index(products *Products, year int) (map[any][]record.Product, error) {
	sel := products.Filter(func(p record.Product) bool {
		if !p.Valid {
			return false
		}
		return year == 0 || (p.Year != nil && *p.Year == year)
	})
	return sel.Index(record.FieldAuthorFullName)
}

// Package ranking runs the whole rating pipeline on a loaded roster:
// impact factor fallback, curated exclusions, scoring and ranking.
// It performs no I/O, loaders and exporters live in internal/.
package ranking

import (
	"context"
	"strings"

	"github.com/gnames/gnrating/pkg/aggregate"
	"github.com/gnames/gnrating/pkg/collection"
	"github.com/gnames/gnrating/pkg/diagnose"
	"github.com/gnames/gnrating/pkg/policy"
	"github.com/gnames/gnrating/pkg/rating"
	"github.com/gnames/gnrating/pkg/record"
	"github.com/gnames/gnrating/pkg/source"
	"github.com/gnames/gnrating/pkg/validity"
)

// Exporter persists a finished run and returns its ID.
type Exporter interface {
	Export(ctx context.Context, run *Run) (string, error)
}

// Input is a roster with the policy applied: impact factors are
// filled in and curated exclusions are flagged. Nothing is scored
// yet, so data quality checks work even on products that cannot be
// rated.
type Input struct {
	Exclusion validity.Exclusion
	Options   aggregate.Options
	Overrides rating.Overrides

	Persons *aggregate.Persons

	// Products carry filled impact factors and validity flags.
	Products *aggregate.Products

	// Patched are handles of products that got their impact factor
	// from the policy table.
	Patched []string

	// Invalid are the source rows excluded by the policy.
	Invalid validity.RowSet
}

// Run is a computed rating with everything needed to explain it.
type Run struct {
	*Input
	Result aggregate.Result
}

// Prepare applies the policy to a roster. The roster is not
// modified.
func Prepare(
	roster *source.Roster,
	pol *policy.Policy,
	opts aggregate.Options,
) *Input {
	res := Input{
		Exclusion: pol.ExclusionVariant(),
		Options:   opts,
		Overrides: pol.RatingOverrides(),
		Persons:   roster.Persons,
		Invalid:   pol.InvalidRows(),
	}

	products, patched := validity.FillImpactFactors(
		roster.Products, pol.ImpactFactors,
	)
	res.Patched = patched
	res.Products = validity.Apply(products, res.Invalid)
	return &res
}

// New computes a Run. The roster is not modified.
func New(
	roster *source.Roster,
	pol *policy.Policy,
	opts aggregate.Options,
) (*Run, error) {
	return Prepare(roster, pol, opts).Rank()
}

// Rank scores every valid product and ranks people per sub-area.
func (in *Input) Rank() (*Run, error) {
	res, err := aggregate.Rank(
		in.Persons, in.Products, in.Overrides, in.Options,
	)
	if err != nil {
		return nil, err
	}
	return &Run{Input: in, Result: res}, nil
}

// Person finds a person by full name, ignoring case and surrounding
// spaces.
func (in *Input) Person(name string) (record.Person, bool) {
	name = strings.TrimSpace(name)
	for _, p := range in.Persons.Items() {
		if strings.EqualFold(p.FullName, name) {
			return p, true
		}
	}
	return record.Person{}, false
}

// Breakdown lists the scored products of a person.
func (r *Run) Breakdown(p record.Person) ([]aggregate.Item, error) {
	return aggregate.Breakdown(p, r.Products, r.Overrides, r.Options)
}

// Standings returns ranked people of every sub-area followed by
// those that were not ranked.
func (r *Run) Standings() []aggregate.Standing {
	var res []aggregate.Standing
	for _, sa := range r.Result.SubAreas {
		res = append(res, sa.Standings...)
	}
	for _, sa := range r.Result.SubAreas {
		res = append(res, sa.Excluded...)
	}
	return res
}

// Filter keeps only the given sub-area in the result. An absent
// sub-area keeps everything.
func (r *Run) Filter(sa record.SubArea) aggregate.Result {
	if sa == record.SubAreaAbsent {
		return r.Result
	}
	var res aggregate.Result
	if sr, ok := r.Result.SubArea(sa); ok {
		res.SubAreas = []aggregate.SubAreaRanking{sr}
	}
	return res
}

// Diagnose runs all data quality checks on the products. With a
// year in Options only products of that year are checked.
func (in *Input) Diagnose() (diagnose.Report, error) {
	products := in.Products
	if in.Options.Year != 0 {
		var err error
		products, err = products.Select(
			collection.Eq(record.FieldYear, in.Options.Year),
		)
		if err != nil {
			return diagnose.Report{}, err
		}
	}
	return diagnose.Run(in.Persons, products, in.Options.CollabThreshold)
}

// NumValid returns the number of products that count.
func (in *Input) NumValid() int {
	var res int
	for _, p := range in.Products.Items() {
		if p.Valid {
			res++
		}
	}
	return res
}

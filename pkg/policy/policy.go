// Package policy describes policy.yaml, the curated decisions a
// rating run depends on: which rows are duplicates or errata, which
// of those lists exclude products, manual rating points for products
// no rule can score, and impact factors missing from the source.
package policy

import (
	"fmt"
	"maps"
	"slices"

	"github.com/gnames/gnrating/pkg/rating"
	"github.com/gnames/gnrating/pkg/validity"
	"gopkg.in/yaml.v3"
)

// Loader reads the policy of a run.
type Loader interface {
	Load() (*Policy, error)
}

// Policy is the content of policy.yaml.
type Policy struct {
	// Exclusion selects the curated lists that make products invalid:
	// "duplicates" or "duplicates+errata". It is required.
	Exclusion string `yaml:"exclusion"`

	// Duplicates are source rows declared as administrative
	// duplicates.
	Duplicates []int `yaml:"duplicates,omitempty"`

	// Errata are source rows of errata and corrigenda.
	Errata []int `yaml:"errata,omitempty"`

	// Overrides map product handles to rating points.
	Overrides map[string]float64 `yaml:"overrides,omitempty"`

	// ImpactFactors map journal names to impact factors for articles
	// that have none in the source.
	ImpactFactors map[string]float64 `yaml:"impact_factors,omitempty"`

	// Warnings holds non-fatal validation warnings (not serialized)
	Warnings []string `yaml:"-"`

	exclusion validity.Exclusion
}

// Parse reads and validates policy.yaml content.
func Parse(data []byte) (*Policy, error) {
	var res Policy
	if err := yaml.Unmarshal(data, &res); err != nil {
		return nil, ParseError(err)
	}
	if err := res.Validate(); err != nil {
		return nil, err
	}
	return &res, nil
}

// Validate checks the policy. Problems that do not change results
// become Warnings.
func (p *Policy) Validate() error {
	ex, err := validity.ParseExclusion(p.Exclusion)
	if err != nil {
		return err
	}
	p.exclusion = ex
	p.Warnings = nil

	for _, list := range []struct {
		name string
		rows []int
	}{{"duplicates", p.Duplicates}, {"errata", p.Errata}} {
		seen := make(map[int]struct{}, len(list.rows))
		for _, row := range list.rows {
			if row < 1 {
				return RowError(list.name, row)
			}
			if _, ok := seen[row]; ok {
				p.Warnings = append(p.Warnings,
					fmt.Sprintf("row %d is listed twice in %s", row, list.name))
			}
			seen[row] = struct{}{}
		}
	}

	for _, row := range p.Duplicates {
		if slices.Contains(p.Errata, row) {
			p.Warnings = append(p.Warnings,
				fmt.Sprintf("row %d is both a duplicate and an erratum", row))
		}
	}
	if ex == validity.ExcludeDuplicates && len(p.Errata) > 0 {
		p.Warnings = append(p.Warnings,
			fmt.Sprintf("%d errata rows are ignored by exclusion '%s'",
				len(p.Errata), ex))
	}

	for _, h := range slices.Sorted(maps.Keys(p.Overrides)) {
		if h == "" || p.Overrides[h] < 0 {
			return OverrideError(h, p.Overrides[h])
		}
	}

	for _, j := range slices.Sorted(maps.Keys(p.ImpactFactors)) {
		if p.ImpactFactors[j] <= 0 {
			p.Warnings = append(p.Warnings,
				fmt.Sprintf("impact factor of '%s' is not positive", j))
		}
	}
	return nil
}

// ExclusionVariant returns the validated exclusion variant.
func (p *Policy) ExclusionVariant() validity.Exclusion {
	return p.exclusion
}

// InvalidRows returns the rows that make products invalid under the
// exclusion variant.
func (p *Policy) InvalidRows() validity.RowSet {
	return validity.InvalidRows(p.Duplicates, p.Errata, p.exclusion)
}

// RatingOverrides returns the override table. It is never nil.
func (p *Policy) RatingOverrides() rating.Overrides {
	res := make(rating.Overrides, len(p.Overrides))
	maps.Copy(res, p.Overrides)
	return res
}

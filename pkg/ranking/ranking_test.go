package ranking_test

import (
	"testing"

	"github.com/gnames/gnrating/internal/iotesting"
	"github.com/gnames/gnrating/pkg/aggregate"
	"github.com/gnames/gnrating/pkg/collection"
	"github.com/gnames/gnrating/pkg/policy"
	"github.com/gnames/gnrating/pkg/ranking"
	"github.com/gnames/gnrating/pkg/record"
	"github.com/gnames/gnrating/pkg/validity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRun(t *testing.T, yml string) *ranking.Run {
	t.Helper()
	pol, err := policy.Parse([]byte(yml))
	require.NoError(t, err)
	run, err := ranking.New(iotesting.Roster(t), pol, aggregate.DefaultOptions())
	require.NoError(t, err)
	return run
}

func TestNew(t *testing.T) {
	run := newRun(t, iotesting.PolicyYAML)

	assert.Equal(t, validity.ExcludeDuplicatesErrata, run.Exclusion)
	assert.True(t, run.Invalid.Has(8))
	assert.Equal(t, 6, run.NumValid())
	assert.Empty(t, run.Patched)

	sa, ok := run.Result.SubArea(record.SubAreaA)
	require.True(t, ok)
	require.Len(t, sa.Standings, 2)
	assert.Equal(t, "ROSSI PAOLO", sa.Standings[0].Person.FullName)
	assert.Equal(t, 0, sa.Standings[0].Ranking)
	assert.Equal(t, 2, sa.Standings[0].NumProducts)
	assert.Equal(t, "BIANCHI ANNA", sa.Standings[1].Person.FullName)
	assert.Equal(t, 1, sa.Standings[1].Ranking)
	assert.Equal(t, 2, sa.Standings[1].NumProducts)
	assert.Len(t, sa.Standings[1].Dropped, 1)

	// the roster is not modified
	roster := iotesting.Roster(t)
	for _, p := range roster.Products.Items() {
		assert.True(t, p.Valid)
	}
}

func TestNewImpactFactors(t *testing.T) {
	yml := iotesting.PolicyYAML + `
impact_factors:
  jinst: 1.2
`
	run := newRun(t, yml)
	assert.ElementsMatch(t, []string{"11568/3", "11568/5"}, run.Patched)

	base := newRun(t, iotesting.PolicyYAML)
	p, ok := run.Person("BIANCHI ANNA")
	require.True(t, ok)
	patched, err := aggregate.Evaluate(p, run.Products, run.Overrides, run.Options)
	require.NoError(t, err)
	plain, err := aggregate.Evaluate(p, base.Products, base.Overrides, base.Options)
	require.NoError(t, err)
	assert.Greater(t, patched.Rating, plain.Rating)
}

func TestPerson(t *testing.T) {
	run := newRun(t, iotesting.PolicyYAML)

	p, ok := run.Person("  rossi paolo ")
	assert.True(t, ok)
	assert.Equal(t, record.SubAreaA, p.SubArea)

	_, ok = run.Person("NOBODY")
	assert.False(t, ok)
}

func TestBreakdown(t *testing.T) {
	run := newRun(t, iotesting.PolicyYAML)

	p, _ := run.Person("BIANCHI ANNA")
	items, err := run.Breakdown(p)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "11568/5", items[2].Product.Handle)
	assert.True(t, items[2].Duplicate)
	assert.Zero(t, items[2].Points)

	rossi, _ := run.Person("ROSSI PAOLO")
	items, err = run.Breakdown(rossi)
	require.NoError(t, err)
	var sum float64
	for _, v := range items {
		sum += v.Points
	}
	sa, _ := run.Result.SubArea(record.SubAreaA)
	assert.InDelta(t, sa.Standings[0].Rating, sum, 1e-9)
}

func TestStandingsAndFilter(t *testing.T) {
	run := newRun(t, iotesting.PolicyYAML)

	var names []string
	for _, v := range run.Standings() {
		names = append(names, v.Person.FullName)
	}
	assert.Equal(t, []string{
		"ROSSI PAOLO", "BIANCHI ANNA", "NERI SARA", "VERDI LUCA",
	}, names)

	res := run.Filter(record.SubAreaC)
	require.Len(t, res.SubAreas, 1)
	assert.Empty(t, res.SubAreas[0].Standings)
	require.Len(t, res.SubAreas[0].Excluded, 1)
	assert.Equal(t, aggregate.NotRanked, res.SubAreas[0].Excluded[0].Ranking)

	assert.Len(t, run.Filter(record.SubAreaAbsent).SubAreas, 3)
}

func TestDiagnose(t *testing.T) {
	run := newRun(t, iotesting.PolicyYAML)

	rep, err := run.Diagnose()
	require.NoError(t, err)
	require.Len(t, rep.DOIDuplicates, 1)
	assert.Equal(t, "10.1/c", rep.DOIDuplicates[0].DOI)
	assert.Greater(t, rep.Problems(), 0)
}

func TestNewUnscorable(t *testing.T) {
	roster := iotesting.Roster(t)
	items := roster.Products.Items()
	// proceedings of BIANCHI with an IF and no author count
	p := items[3]
	p.ImpactFactor = record.Ptr(1.0)
	p.NumAuthors = nil
	items[3] = p

	pol, err := policy.Parse([]byte(iotesting.PolicyYAML))
	require.NoError(t, err)
	_, err = ranking.New(roster, pol, aggregate.DefaultOptions())
	assert.Error(t, err)
}

func TestPrepareUnscorable(t *testing.T) {
	roster := iotesting.Roster(t)
	items := roster.Products.Items()
	// chapter of VERDI turned into a monograph without an override
	items[5].PubType = record.Monograph

	pol, err := policy.Parse([]byte(iotesting.PolicyYAML))
	require.NoError(t, err)

	_, err = ranking.New(roster, pol, aggregate.DefaultOptions())
	require.Error(t, err)

	in := ranking.Prepare(roster, pol, aggregate.DefaultOptions())
	_, err = in.Rank()
	require.Error(t, err)

	rep, err := in.Diagnose()
	require.NoError(t, err)
	require.Len(t, rep.MissingISBN, 0)
	require.Len(t, rep.DOIDuplicates, 1)
	assert.Contains(t, rep.PubTypes,
		collection.ValueCount{Value: string(record.Monograph), Count: 1})
}

func TestDiagnoseErrata(t *testing.T) {
	run := newRun(t, iotesting.PolicyYAML)
	rep, err := run.Diagnose()
	require.NoError(t, err)
	assert.Empty(t, rep.ErrataCandidates)

	run = newRun(t, `
exclusion: duplicates
duplicates: []
errata: [8]
`)
	rep, err = run.Diagnose()
	require.NoError(t, err)
	require.Len(t, rep.ErrataCandidates, 1)
	assert.Equal(t, 8, rep.ErrataCandidates[0].RowIndex)
	assert.Equal(t, "Erratum: Search for dark matter", *rep.ErrataCandidates[0].Title)
}

func TestDiagnoseYear(t *testing.T) {
	pol, err := policy.Parse([]byte(iotesting.PolicyYAML))
	require.NoError(t, err)
	opts := aggregate.DefaultOptions()
	opts.Year = 2020

	in := ranking.Prepare(iotesting.Roster(t), pol, opts)
	rep, err := in.Diagnose()
	require.NoError(t, err)
	assert.Empty(t, rep.DOIDuplicates)
	assert.Equal(t, []collection.ValueCount{
		{Value: string(record.Proceedings), Count: 1},
	}, rep.PubTypes)
}

package validity_test

import (
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnrating/pkg/collection"
	"github.com/gnames/gnrating/pkg/errcode"
	"github.com/gnames/gnrating/pkg/record"
	"github.com/gnames/gnrating/pkg/validity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func article(handle string, row int) record.Product {
	return record.Product{
		Handle:        handle,
		Year:          record.Ptr(2019),
		Title:         record.Ptr("Measurement of " + handle),
		PubType:       record.JournalArticle,
		AuthorSurname: record.Ptr("ROSSI"),
		AuthorName:    record.Ptr("PAOLO"),
		NumAuthors:    record.Ptr(3),
		Journal:       record.Ptr("Phys. Rev. D"),
		RowIndex:      row,
		Valid:         true,
	}
}

func TestParseExclusion(t *testing.T) {
	tests := []struct {
		msg, in string
		ex      validity.Exclusion
		err     bool
	}{
		{"dups", "duplicates", validity.ExcludeDuplicates, false},
		{"dups errata", "Duplicates+Errata ", validity.ExcludeDuplicatesErrata, false},
		{"empty", "", "", true},
		{"unknown", "errata", "", true},
	}

	for _, v := range tests {
		res, err := validity.ParseExclusion(v.in)
		if v.err {
			require.Error(t, err, v.msg)
			assert.Equal(t, errcode.PolicyExclusionError, err.(*gn.Error).Code)
			continue
		}
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.ex, res, v.msg)
	}
}

func TestInvalidRows(t *testing.T) {
	dups := []int{10, 12}
	errata := []int{12, 30}

	rs := validity.InvalidRows(dups, errata, validity.ExcludeDuplicates)
	assert.Equal(t, []int{10, 12}, rs.Sorted())
	assert.False(t, rs.Has(30))

	rs = validity.InvalidRows(dups, errata, validity.ExcludeDuplicatesErrata)
	assert.Equal(t, []int{10, 12, 30}, rs.Sorted())
	assert.True(t, rs.Has(30))

	rs = validity.InvalidRows(nil, nil, validity.ExcludeDuplicatesErrata)
	assert.Empty(t, rs)
}

func TestApply(t *testing.T) {
	prods := collection.New([]record.Product{
		article("h/1", 2), article("h/2", 3), article("h/3", 4),
	})
	rs := validity.InvalidRows([]int{3}, []int{4}, validity.ExcludeDuplicatesErrata)

	res := validity.Apply(prods, rs)
	require.Equal(t, 3, res.Len())
	assert.True(t, res.At(0).Valid)
	assert.False(t, res.At(1).Valid)
	assert.False(t, res.At(2).Valid)

	// input is untouched
	for _, p := range prods.Items() {
		assert.True(t, p.Valid)
	}

	valid, err := res.Select(collection.Eq(record.FieldValid, true))
	require.NoError(t, err)
	require.Equal(t, 1, valid.Len())
	assert.Equal(t, "h/1", valid.At(0).Handle)
}

func TestIsDuplicateOf(t *testing.T) {
	a := article("h/1", 2)

	b := article("h/2", 3)
	assert.False(t, validity.IsDuplicateOf(a, b))

	b.Title = a.Title
	assert.True(t, validity.IsDuplicateOf(a, b), "same title, year, journal")

	b.Year = record.Ptr(2020)
	assert.False(t, validity.IsDuplicateOf(a, b), "different year")

	b = article("h/2", 3)
	a.DOI = record.Ptr("10.1103/PhysRevD.99.1")
	b.DOI = record.Ptr("10.1103/PhysRevD.99.1")
	assert.True(t, validity.IsDuplicateOf(a, b), "same DOI")

	b.DOI = nil
	assert.False(t, validity.IsDuplicateOf(a, b), "one DOI absent")

	long := "A very long title that goes on and on well beyond the seventy five characters"
	a = article("h/1", 2)
	b = article("h/2", 3)
	a.Title = record.Ptr(long + " version one")
	b.Title = record.Ptr(long + " version two")
	assert.True(t, validity.IsDuplicateOf(a, b), "long titles share prefix")

	a.Title = nil
	b.Title = nil
	assert.False(t, validity.IsDuplicateOf(a, b), "absent titles")
}

func TestIsDuplicateOfMonograph(t *testing.T) {
	a := article("h/1", 2)
	b := article("h/2", 3)
	a.PubType, b.PubType = record.Monograph, record.Monograph
	a.ISBN = record.Ptr("978-88-470-0000-0")
	b.ISBN = record.Ptr("978-88-470-0000-0")
	assert.True(t, validity.IsDuplicateOf(a, b))

	b.PubType = record.BookChapter
	assert.False(t, validity.IsDuplicateOf(a, b), "ISBN only counts for monographs")
}

func TestDropDuplicates(t *testing.T) {
	a := article("h/1", 2)
	b := article("h/2", 3)
	c := article("h/3", 4)
	c.DOI = record.Ptr("10.1/x")
	d := article("h/4", 5)
	d.DOI = record.Ptr("10.1/x")

	unique, pairs := validity.DropDuplicates([]record.Product{a, b, c, a, d})
	require.Len(t, unique, 3)
	assert.Equal(t, "h/1", unique[0].Handle)
	assert.Equal(t, "h/2", unique[1].Handle)
	assert.Equal(t, "h/3", unique[2].Handle)
	require.Len(t, pairs, 2)
	assert.Equal(t, "h/1", pairs[0].Kept.Handle)
	assert.Equal(t, "h/3", pairs[1].Kept.Handle)
	assert.Equal(t, "h/4", pairs[1].Dropped.Handle)

	unique, pairs = validity.DropDuplicates(nil)
	assert.Empty(t, unique)
	assert.Empty(t, pairs)
}

func TestFillImpactFactors(t *testing.T) {
	a := article("h/1", 2)
	b := article("h/2", 3)
	b.ImpactFactor = record.Ptr(4.2)
	c := article("h/3", 4)
	c.PubType = record.Proceedings
	prods := collection.New([]record.Product{a, b, c})

	res, patched := validity.FillImpactFactors(prods,
		map[string]float64{"PHYS. REV. D": 4.4})
	assert.Equal(t, []string{"h/1"}, patched)
	require.NotNil(t, res.At(0).ImpactFactor)
	assert.Equal(t, 4.4, *res.At(0).ImpactFactor)
	assert.Equal(t, 4.2, *res.At(1).ImpactFactor)
	assert.Nil(t, res.At(2).ImpactFactor)
	assert.Nil(t, prods.At(0).ImpactFactor)

	res, patched = validity.FillImpactFactors(prods, nil)
	assert.Same(t, prods, res)
	assert.Empty(t, patched)
}

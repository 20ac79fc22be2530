package diagnose

import (
	"github.com/gnames/gnrating/pkg/collection"
	"github.com/gnames/gnrating/pkg/record"
)

// Report collects the outcome of all checks.
type Report struct {
	// PubTypes is the distribution of publication types. It is not a
	// finding.
	PubTypes []collection.ValueCount

	MissingJournal       []record.Product
	MissingDOI           []record.Product
	MissingISBN          []record.Product
	SuspectProceedings   []record.Product
	ErrataCandidates     []record.Product
	SuspectAuthorLists   []AuthorListFinding
	DOIDuplicates        []DOIDuplicate
	UndeclaredDuplicates []PersonDuplicates
}

// Problems returns the total number of findings.
func (r Report) Problems() int {
	return len(r.MissingJournal) + len(r.MissingDOI) + len(r.MissingISBN) +
		len(r.SuspectProceedings) + len(r.ErrataCandidates) +
		len(r.SuspectAuthorLists) +
		len(r.DOIDuplicates) + len(r.UndeclaredDuplicates)
}

// Run executes every check.
func Run(persons *Persons, products *Products, collabThreshold int) (Report, error) {
	var res Report
	var err error
	if res.PubTypes, err = PubTypes(products); err != nil {
		return res, err
	}

	checks := []struct {
		fn  func(*Products) (*Products, error)
		out *[]record.Product
	}{
		{MissingJournal, &res.MissingJournal},
		{MissingDOI, &res.MissingDOI},
		{MissingISBN, &res.MissingISBN},
		{SuspectProceedings, &res.SuspectProceedings},
		{ErrataCandidates, &res.ErrataCandidates},
	}
	for _, c := range checks {
		sel, err := c.fn(products)
		if err != nil {
			return res, err
		}
		*c.out = sel.Items()
	}

	res.SuspectAuthorLists = SuspectAuthorLists(products, collabThreshold)
	if res.DOIDuplicates, err = DOIDuplicates(products); err != nil {
		return res, err
	}
	if res.UndeclaredDuplicates, err = UndeclaredDuplicates(persons, products); err != nil {
		return res, err
	}
	return res, nil
}

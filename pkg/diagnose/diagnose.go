// Package diagnose finds data-quality problems in the product list.
// It never corrects anything: every check returns the offending
// records for a manual review.
package diagnose

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gnames/gnrating/pkg/collection"
	"github.com/gnames/gnrating/pkg/record"
	"github.com/gnames/gnrating/pkg/validity"
)

// MaxAuthorLength is the length at which the source truncates
// author strings. Longer strings cannot be split reliably.
const MaxAuthorLength = 3799

type (
	Persons  = collection.Collection[record.Person]
	Products = collection.Collection[record.Product]
)

// MissingJournal returns journal articles without a journal.
func MissingJournal(products *Products) (*Products, error) {
	return products.Select(
		collection.Eq(record.FieldPubType, record.JournalArticle),
		collection.Eq(record.FieldJournal, nil),
	)
}

// MissingDOI returns journal articles without a DOI.
func MissingDOI(products *Products) (*Products, error) {
	return products.Select(
		collection.Eq(record.FieldPubType, record.JournalArticle),
		collection.Eq(record.FieldDOI, nil),
	)
}

// MissingISBN returns monographs without an ISBN.
func MissingISBN(products *Products) (*Products, error) {
	return products.Select(
		collection.Eq(record.FieldPubType, record.Monograph),
		collection.Eq(record.FieldISBN, nil),
	)
}

// SuspectProceedings returns journal articles published in
// something that looks like conference proceedings.
func SuspectProceedings(products *Products) (*Products, error) {
	return products.MatchSubstring(
		record.FieldJournal, "proc",
		collection.Eq(record.FieldPubType, record.JournalArticle),
	)
}

// ErrataCandidates returns products whose title starts like an
// erratum or a corrigendum. Products already excluded by the policy
// are left out.
func ErrataCandidates(products *Products) (*Products, error) {
	return products.Filter(func(p record.Product) bool {
		if !p.Valid || p.Title == nil {
			return false
		}
		t := strings.ToLower(strings.TrimSpace(*p.Title))
		return strings.HasPrefix(t, "errat") || strings.HasPrefix(t, "corrig")
	}), nil
}

// PubTypes counts products per publication type.
func PubTypes(products *Products) ([]collection.ValueCount, error) {
	return products.UniqueValueCounts(record.FieldPubType)
}

// AuthorListFinding is a product whose author string does not look
// right.
type AuthorListFinding struct {
	Product record.Product
	Issues  []string
}

// SuspectAuthorLists checks author strings against the author
// count. Every handle is reported once.
func SuspectAuthorLists(products *Products, collabThreshold int) []AuthorListFinding {
	var res []AuthorListFinding
	seen := make(map[string]struct{})
	for _, p := range products.Items() {
		if _, ok := seen[p.Handle]; ok || p.AuthorString == nil {
			continue
		}
		authors := strings.ToLower(*p.AuthorString)
		numAuthors := p.Authors()

		var issues []string
		splits := len(strings.Split(authors, ";"))
		if len(authors) < MaxAuthorLength && splits != numAuthors {
			issues = append(issues, fmt.Sprintf("split mismatch (%d)", splits))
		}
		if strings.Contains(authors, "et al") {
			issues = append(issues, `contains "et al"`)
		}
		if strings.Contains(authors, "author") {
			issues = append(issues, `contains "author"`)
		}
		if strings.Contains(authors, "collab") && numAuthors < collabThreshold {
			issues = append(issues, "collab")
		}

		if len(issues) > 0 {
			seen[p.Handle] = struct{}{}
			res = append(res, AuthorListFinding{Product: p, Issues: issues})
		}
	}
	return res
}

// DOIDuplicate is a DOI shared by different handles.
type DOIDuplicate struct {
	DOI     string
	Handles []string
}

// DOIDuplicates finds DOIs used by more than one handle. Results
// are sorted by DOI, handles keep the source order.
func DOIDuplicates(products *Products) ([]DOIDuplicate, error) {
	idx, err := products.Index(record.FieldDOI)
	if err != nil {
		return nil, err
	}

	var res []DOIDuplicate
	for k, prods := range idx {
		var handles []string
		for _, p := range prods {
			if !slices.Contains(handles, p.Handle) {
				handles = append(handles, p.Handle)
			}
		}
		if len(handles) > 1 {
			res = append(res, DOIDuplicate{DOI: k.(string), Handles: handles})
		}
	}
	slices.SortFunc(res, func(a, b DOIDuplicate) int {
		return strings.Compare(a.DOI, b.DOI)
	})
	return res, nil
}

// PersonDuplicates are undeclared duplicates in the product list of
// one person.
type PersonDuplicates struct {
	Person record.Person
	Pairs  []validity.Pair
}

// UndeclaredDuplicates scans the valid products of every person for
// duplicates that are not in the curated lists.
func UndeclaredDuplicates(persons *Persons, products *Products) ([]PersonDuplicates, error) {
	valid := products.Filter(func(p record.Product) bool { return p.Valid })
	idx, err := valid.Index(record.FieldAuthorFullName)
	if err != nil {
		return nil, err
	}

	var res []PersonDuplicates
	for _, pers := range persons.Items() {
		_, pairs := validity.DropDuplicates(idx[pers.FullName])
		if len(pairs) > 0 {
			res = append(res, PersonDuplicates{Person: pers, Pairs: pairs})
		}
	}
	return res, nil
}

// Package record provides the publication (Product) and staff
// (Person) records the rating engine works on.
//
// Records are built once from a flat row of values. Every field is
// coerced to its type independently; values that fail coercion, or
// that are empty or zero, become absent (nil). Absent never means
// zero: an absent impact factor is scored differently from an
// impact factor of 0.
package record

import (
	"fmt"
	"strings"
)

// Product is a single publication of a staff member. The same
// publication appears once for every staff author.
type Product struct {
	// Handle is the unique and stable repository identifier.
	Handle string

	Year  *int
	Title *string

	// PubType selects the scoring rule.
	PubType PubType

	AuthorName    *string
	AuthorSurname *string

	// AuthorString is the free-text list of all authors.
	AuthorString *string
	NumAuthors   *int

	DOI     *string
	ISBN    *string
	Journal *string
	Volume  *string

	// JournalIF and JournalIF5Y are the raw impact factors as read
	// from the source.
	JournalIF   *float64
	JournalIF5Y *float64

	// ImpactFactor is the value used for scoring: the 5-year impact
	// factor when available, the plain one otherwise.
	ImpactFactor *float64

	// RowIndex is the position of the record in the source data.
	RowIndex int

	// Valid is false for duplicates and errata.
	Valid bool
}

type productSetter func(*Product, any)

var productSetters = map[Field]productSetter{
	FieldHandle: func(p *Product, v any) {
		if s := toString(v); s != nil {
			p.Handle = *s
		}
	},
	FieldYear:  func(p *Product, v any) { p.Year = toInt(v) },
	FieldTitle: func(p *Product, v any) { p.Title = toString(v) },
	FieldPubType: func(p *Product, v any) {
		if s := toString(v); s != nil {
			p.PubType = NewPubType(*s)
		}
	},
	FieldAuthorName:    func(p *Product, v any) { p.AuthorName = toString(v) },
	FieldAuthorSurname: func(p *Product, v any) { p.AuthorSurname = toString(v) },
	FieldAuthorString:  func(p *Product, v any) { p.AuthorString = toString(v) },
	FieldNumAuthors:    func(p *Product, v any) { p.NumAuthors = toInt(v) },
	FieldDOI:           func(p *Product, v any) { p.DOI = toString(v) },
	FieldISBN:          func(p *Product, v any) { p.ISBN = toString(v) },
	FieldJournal:       func(p *Product, v any) { p.Journal = toString(v) },
	FieldVolume:        func(p *Product, v any) { p.Volume = toString(v) },
	FieldJournalIF:     func(p *Product, v any) { p.JournalIF = toFloat(v) },
	FieldJournalIF5Y:   func(p *Product, v any) { p.JournalIF5Y = toFloat(v) },
}

// NewProduct builds a Product from a flat row ordered as
// ProductLayout. rowIndex is the 1-based position of the row in the
// source.
func NewProduct(values []any, rowIndex int) (Product, error) {
	res := Product{RowIndex: rowIndex, Valid: true}
	if len(values) != len(ProductLayout) {
		return res, LengthError("product", rowIndex, len(ProductLayout), len(values))
	}
	for i, f := range ProductLayout {
		productSetters[f](&res, values[i])
	}
	if res.Handle == "" {
		return res, MissingKeyError("product", FieldHandle, rowIndex)
	}
	res.ImpactFactor = res.JournalIF5Y
	if res.ImpactFactor == nil {
		res.ImpactFactor = res.JournalIF
	}
	return res, nil
}

// AuthorFullName joins surname and name of the staff author. It is
// the key that links a Product to a Person.
func (p Product) AuthorFullName() string {
	var parts []string
	if p.AuthorSurname != nil {
		parts = append(parts, *p.AuthorSurname)
	}
	if p.AuthorName != nil {
		parts = append(parts, *p.AuthorName)
	}
	return strings.Join(parts, " ")
}

// Value returns the value of a field: nil when the field is absent,
// otherwise an int, float64, string or bool.
func (p Product) Value(f Field) (any, error) {
	switch f {
	case FieldHandle:
		return p.Handle, nil
	case FieldYear:
		return intValue(p.Year), nil
	case FieldTitle:
		return stringValue(p.Title), nil
	case FieldPubType:
		if p.PubType == PubTypeAbsent {
			return nil, nil
		}
		return string(p.PubType), nil
	case FieldAuthorName:
		return stringValue(p.AuthorName), nil
	case FieldAuthorSurname:
		return stringValue(p.AuthorSurname), nil
	case FieldAuthorFullName:
		if n := p.AuthorFullName(); n != "" {
			return n, nil
		}
		return nil, nil
	case FieldAuthorString:
		return stringValue(p.AuthorString), nil
	case FieldNumAuthors:
		return intValue(p.NumAuthors), nil
	case FieldDOI:
		return stringValue(p.DOI), nil
	case FieldISBN:
		return stringValue(p.ISBN), nil
	case FieldJournal:
		return stringValue(p.Journal), nil
	case FieldVolume:
		return stringValue(p.Volume), nil
	case FieldJournalIF:
		return floatValue(p.JournalIF), nil
	case FieldJournalIF5Y:
		return floatValue(p.JournalIF5Y), nil
	case FieldImpactFactor:
		return floatValue(p.ImpactFactor), nil
	case FieldRowIndex:
		return p.RowIndex, nil
	case FieldValid:
		return p.Valid, nil
	default:
		return nil, FieldNotFoundError("product", f)
	}
}

// Authors returns the number of authors, or 0 when it is absent.
func (p Product) Authors() int {
	if p.NumAuthors == nil {
		return 0
	}
	return *p.NumAuthors
}

// String gives a one-line description used in diagnostics.
func (p Product) String() string {
	var initial string
	if p.AuthorName != nil && *p.AuthorName != "" {
		initial = string([]rune(*p.AuthorName)[:1])
	}
	venue := p.Journal
	if venue == nil {
		venue = p.Volume
	}
	return fmt.Sprintf("[%s @ row %d for %s %s.], %q, %s (%s)",
		p.PubType, p.RowIndex, show(p.AuthorSurname), initial,
		show(p.Title), show(venue), showInt(p.Year))
}

// Ptr returns a pointer to v. It is handy for building records by
// hand.
func Ptr[T any](v T) *T {
	return &v
}

func intValue(i *int) any {
	if i == nil {
		return nil
	}
	return *i
}

func floatValue(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}

func stringValue(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func show(s *string) string {
	if s == nil {
		return "None"
	}
	return *s
}

func showInt(i *int) string {
	if i == nil {
		return "None"
	}
	return fmt.Sprintf("%d", *i)
}

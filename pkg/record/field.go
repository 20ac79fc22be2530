package record

// Field is a typed selector for a named attribute of a record.
// It replaces string keys in selections, so that a typo in a
// field name is caught by the compiler instead of at runtime.
type Field int

const (
	FieldUnknown Field = iota

	// Product fields
	FieldHandle
	FieldYear
	FieldTitle
	FieldPubType
	FieldAuthorName
	FieldAuthorSurname
	FieldAuthorFullName
	FieldAuthorString
	FieldNumAuthors
	FieldDOI
	FieldISBN
	FieldJournal
	FieldVolume
	FieldJournalIF
	FieldJournalIF5Y
	FieldImpactFactor
	FieldRowIndex
	FieldValid

	// Person fields
	FieldIdentifier
	FieldFullName
	FieldRole
	FieldSubArea
)

var fieldNames = map[Field]string{
	FieldHandle:         "handle",
	FieldYear:           "year",
	FieldTitle:          "title",
	FieldPubType:        "pub_type",
	FieldAuthorName:     "author_name",
	FieldAuthorSurname:  "author_surname",
	FieldAuthorFullName: "author_full_name",
	FieldAuthorString:   "author_string",
	FieldNumAuthors:     "num_authors",
	FieldDOI:            "doi",
	FieldISBN:           "isbn",
	FieldJournal:        "journal",
	FieldVolume:         "volume",
	FieldJournalIF:      "journal_if",
	FieldJournalIF5Y:    "journal_if_5y",
	FieldImpactFactor:   "impact_factor",
	FieldRowIndex:       "row_index",
	FieldValid:          "valid",
	FieldIdentifier:     "identifier",
	FieldFullName:       "full_name",
	FieldRole:           "role",
	FieldSubArea:        "sub_area",
}

var fieldsByName = func() map[string]Field {
	res := make(map[string]Field, len(fieldNames))
	for k, v := range fieldNames {
		res[v] = k
	}
	return res
}()

// String returns the column name of the field.
func (f Field) String() string {
	if s, ok := fieldNames[f]; ok {
		return s
	}
	return "unknown"
}

// NewField converts a column name to a Field. Unknown names
// return FieldUnknown.
func NewField(name string) Field {
	if f, ok := fieldsByName[name]; ok {
		return f
	}
	return FieldUnknown
}

// ProductLayout is the order of values in a flat product row, as
// delivered by a tabular loader. It is used only at parse time.
var ProductLayout = []Field{
	FieldHandle,
	FieldAuthorSurname,
	FieldAuthorName,
	FieldYear,
	FieldTitle,
	FieldPubType,
	FieldAuthorString,
	FieldNumAuthors,
	FieldDOI,
	FieldISBN,
	FieldVolume,
	FieldJournal,
	FieldJournalIF,
	FieldJournalIF5Y,
}

// PersonLayout is the order of values in a flat person row.
var PersonLayout = []Field{
	FieldIdentifier,
	FieldFullName,
	FieldRole,
	FieldSubArea,
}

// Columns returns column names for a layout.
func Columns(layout []Field) []string {
	res := make([]string, len(layout))
	for i, f := range layout {
		res[i] = f.String()
	}
	return res
}

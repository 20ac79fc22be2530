package iotesting

import (
	"database/sql"
	"fmt"
	"strings"
	"testing"

	"github.com/gnames/gnrating/pkg/collection"
	"github.com/gnames/gnrating/pkg/record"
	"github.com/gnames/gnrating/pkg/source"
	_ "modernc.org/sqlite"
)

// ProductRows is a small product table. Rows start at index 2.
//
//	2 ROSSI PAOLO   article, IF 2.5, 9 authors
//	3 ROSSI PAOLO   article, IF 5-year 4.1, 3000 authors
//	4 BIANCHI ANNA  article, no IF, 2 authors
//	5 BIANCHI ANNA  proceedings, no IF, 5 authors
//	6 BIANCHI ANNA  same DOI as row 4
//	7 VERDI LUCA    book chapter, IF 0.7, 4 authors
//	8 ROSSI PAOLO   erratum of row 2
var ProductRows = [][]any{
	{"11568/1", "ROSSI", "PAOLO", int64(2019), "Search for dark matter",
		"1.1 Articolo in rivista", "Rossi P.; Bianchi A.; others", int64(9),
		"10.1/a", nil, "122", "Phys. Rev. D", 2.5, nil},
	{"11568/2", "ROSSI", "PAOLO", int64(2019), "Observation of a new boson",
		"1.1 Articolo in rivista", "CMS Collaboration", int64(3000),
		"10.1/b", nil, "716", "Phys. Lett. B", 3.9, 4.1},
	{"11568/3", "BIANCHI", "ANNA", int64(2019), "Silicon trackers",
		"1.1 Articolo in rivista", "Bianchi A.; Neri S.", int64(2),
		"10.1/c", nil, "", "JINST", nil, nil},
	{"11568/4", "BIANCHI", "ANNA", int64(2020), "A poster turned paper",
		"4.1 Contributo in atti di convegno", "Bianchi A.; X; Y; Z; W", int64(5),
		nil, nil, nil, nil, nil, nil},
	{"11568/5", "BIANCHI", "ANNA", int64(2019), "Silicon trackers again",
		"1.1 Articolo in rivista", "Bianchi A.; Neri S.", int64(2),
		"10.1/c", nil, "", "JINST", nil, nil},
	{"11568/6", "VERDI", "LUCA", int64(2018), "Detectors",
		"2.1 Contributo in volume (Capitolo o Saggio)", "Verdi L.; A; B; C", int64(4),
		nil, "978-0-00-000000-0", nil, nil, 0.7, nil},
	{"11568/7", "ROSSI", "PAOLO", int64(2019), "Erratum: Search for dark matter",
		"1.1 Articolo in rivista", "Rossi P.; Bianchi A.; others", int64(9),
		nil, nil, "123", "Phys. Rev. D", 2.5, nil},
}

// PersonRows is the staff table matching ProductRows.
var PersonRows = [][]any{
	{int64(1), "ROSSI PAOLO", "PO", "a"},
	{int64(2), "BIANCHI ANNA", "PA", "a"},
	{int64(3), "VERDI LUCA", "RU", "c"},
	{int64(4), "NERI SARA", "RTD", "b"},
}

// PolicyYAML invalidates the erratum at row 8.
const PolicyYAML = `
exclusion: duplicates+errata
duplicates: []
errata: [8]
`

// WriteSource creates an SQLite file with products and persons
// tables laid out as the loader expects.
func WriteSource(t *testing.T, path string, products, persons [][]any) {
	t.Helper()

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("Failed to open %s: %v", path, err)
	}
	defer db.Close()

	tables := []struct {
		name   string
		layout []record.Field
		rows   [][]any
	}{
		{"products", record.ProductLayout, products},
		{"persons", record.PersonLayout, persons},
	}
	for _, tbl := range tables {
		cols := record.Columns(tbl.layout)
		ddl := fmt.Sprintf("CREATE TABLE %s (%s)", tbl.name, strings.Join(cols, ", "))
		if _, err = db.Exec(ddl); err != nil {
			t.Fatalf("Failed to create %s: %v", tbl.name, err)
		}
		marks := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
		ins := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
			tbl.name, strings.Join(cols, ", "), marks)
		for _, row := range tbl.rows {
			if _, err = db.Exec(ins, row...); err != nil {
				t.Fatalf("Failed to insert into %s: %v", tbl.name, err)
			}
		}
	}
}

// Roster builds the in-memory roster of ProductRows and PersonRows,
// the same records the loader returns for a file made by
// WriteSource.
func Roster(t *testing.T) *source.Roster {
	t.Helper()

	products := make([]record.Product, len(ProductRows))
	for i, row := range ProductRows {
		p, err := record.NewProduct(row, 2+i)
		if err != nil {
			t.Fatalf("Failed to build product %d: %v", i, err)
		}
		products[i] = p
	}
	persons := make([]record.Person, len(PersonRows))
	for i, row := range PersonRows {
		p, err := record.NewPerson(row, 2+i)
		if err != nil {
			t.Fatalf("Failed to build person %d: %v", i, err)
		}
		persons[i] = p
	}
	return &source.Roster{
		Products: collection.New(products),
		Persons:  collection.New(persons),
	}
}

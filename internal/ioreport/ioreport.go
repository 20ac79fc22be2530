// Package ioreport renders rankings, breakdowns and diagnostics as
// console tables.
package ioreport

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnrating/pkg/aggregate"
	"github.com/gnames/gnrating/pkg/collection"
	"github.com/gnames/gnrating/pkg/diagnose"
	"github.com/gnames/gnrating/pkg/ranking"
	"github.com/gnames/gnrating/pkg/record"
)

// titleLen is the width titles are cut to in tables.
const titleLen = 50

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numStyle    = cellStyle.Align(lipgloss.Right)
	dimStyle    = cellStyle.Foreground(lipgloss.Color("7"))
	titleStyle  = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("12")).MarginTop(1)
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// Printer writes reports to a writer.
type Printer struct {
	w io.Writer
}

// New creates a Printer.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Summary prints the size of a run and how long it took.
func (p *Printer) Summary(run *ranking.Run, duration time.Duration) {
	lines := []string{
		fmt.Sprintf("Persons: %s", humanize.Comma(int64(run.Persons.Len()))),
		fmt.Sprintf("Products: %s (valid %s)",
			humanize.Comma(int64(run.Products.Len())),
			humanize.Comma(int64(run.NumValid()))),
		fmt.Sprintf("Exclusion: %s, excluded rows: %d",
			run.Exclusion, len(run.Invalid)),
	}
	if run.Options.Year > 0 {
		lines = append(lines, fmt.Sprintf("Year: %d", run.Options.Year))
	}
	if len(run.Patched) > 0 {
		lines = append(lines,
			fmt.Sprintf("Impact factors from policy: %d", len(run.Patched)))
	}
	lines = append(lines,
		fmt.Sprintf("Duration: %s", gnfmt.TimeString(duration.Seconds())))
	fmt.Fprintln(p.w, strings.Join(lines, "\n"))
}

// Ranking prints one table per sub-area, ranked people first.
func (p *Printer) Ranking(res aggregate.Result) {
	for _, sa := range res.SubAreas {
		p.title(fmt.Sprintf("Sub-area %s", sa.SubArea))
		if len(sa.Standings) == 0 && len(sa.Excluded) == 0 {
			fmt.Fprintln(p.w, "no staff")
			continue
		}

		var rows [][]string
		for _, st := range sa.Standings {
			rows = append(rows, standingRow(strconv.Itoa(st.Ranking+1), st))
		}
		for _, st := range sa.Excluded {
			rows = append(rows, standingRow("-", st))
		}
		p.table(
			[]string{"#", "Name", "Rating", "Products", "Collab",
				"Authors min/mean/max", "Dropped"},
			rows,
			map[int]bool{0: true, 2: true, 3: true, 4: true, 6: true},
			len(sa.Standings),
		)
	}

	if len(res.Unassigned) > 0 {
		names := make([]string, len(res.Unassigned))
		for i, v := range res.Unassigned {
			names[i] = v.FullName
		}
		fmt.Fprintln(p.w, warnStyle.Render(
			"Without sub-area: "+strings.Join(names, ", ")))
	}
}

// Breakdown prints the points of every product of a person.
func (p *Printer) Breakdown(person record.Person, items []aggregate.Item) {
	p.title(person.String())

	var total float64
	rows := make([][]string, 0, len(items))
	for _, v := range items {
		total += v.Points
		pts := fmt.Sprintf("%.3f", v.Points)
		if v.Duplicate {
			pts = "dup"
		}
		rows = append(rows, []string{
			strconv.Itoa(v.Product.RowIndex),
			v.Product.Handle,
			string(v.Product.PubType),
			showInt(v.Product.Year),
			showInt(v.Product.NumAuthors),
			showFloat(v.Product.ImpactFactor),
			pts,
			cut(show(v.Product.Title)),
		})
	}
	p.table(
		[]string{"Row", "Handle", "Type", "Year", "Authors", "IF",
			"Points", "Title"},
		rows,
		map[int]bool{0: true, 3: true, 4: true, 5: true, 6: true},
		len(rows),
	)
	fmt.Fprintf(p.w, "Total: %.3f\n", total)
}

// Diagnostics prints all findings of a data quality report.
func (p *Printer) Diagnostics(rep diagnose.Report) {
	p.PubTypes(rep.PubTypes)

	lists := []struct {
		name  string
		prods []record.Product
	}{
		{"Journal articles without journal", rep.MissingJournal},
		{"Journal articles without DOI", rep.MissingDOI},
		{"Monographs without ISBN", rep.MissingISBN},
		{"Articles that look like proceedings", rep.SuspectProceedings},
		{"Errata and corrigenda not in policy", rep.ErrataCandidates},
	}
	for _, l := range lists {
		p.title(fmt.Sprintf("%s (%d)", l.name, len(l.prods)))
		if len(l.prods) == 0 {
			continue
		}
		rows := make([][]string, len(l.prods))
		for i, v := range l.prods {
			rows[i] = productRow(v)
		}
		p.table([]string{"Row", "Handle", "Author", "Journal", "Title"},
			rows, map[int]bool{0: true}, len(rows))
	}

	p.title(fmt.Sprintf("Suspect author lists (%d)", len(rep.SuspectAuthorLists)))
	if len(rep.SuspectAuthorLists) > 0 {
		rows := make([][]string, len(rep.SuspectAuthorLists))
		for i, v := range rep.SuspectAuthorLists {
			rows[i] = []string{
				strconv.Itoa(v.Product.RowIndex),
				v.Product.Handle,
				showInt(v.Product.NumAuthors),
				strings.Join(v.Issues, "; "),
			}
		}
		p.table([]string{"Row", "Handle", "Authors", "Issues"},
			rows, map[int]bool{0: true, 2: true}, len(rows))
	}

	p.Duplicates(rep.DOIDuplicates, rep.UndeclaredDuplicates)
	fmt.Fprintf(p.w, "\nProblems found: %s\n",
		humanize.Comma(int64(rep.Problems())))
}

// PubTypes prints how many products belong to every publication
// type.
func (p *Printer) PubTypes(counts []collection.ValueCount) {
	var total int
	rows := make([][]string, len(counts))
	for i, v := range counts {
		label := "absent"
		if code, ok := v.Value.(string); ok {
			label = record.PubType(code).Label()
		}
		rows[i] = []string{label, humanize.Comma(int64(v.Count))}
		total += v.Count
	}
	p.title(fmt.Sprintf("Publication types (%s products)",
		humanize.Comma(int64(total))))
	if len(rows) > 0 {
		p.table([]string{"Type", "Products"}, rows,
			map[int]bool{1: true}, len(rows))
	}
}

// Duplicates prints shared DOIs and undeclared duplicate pairs.
func (p *Printer) Duplicates(
	dois []diagnose.DOIDuplicate,
	persons []diagnose.PersonDuplicates,
) {
	p.title(fmt.Sprintf("DOIs shared by several handles (%d)", len(dois)))
	if len(dois) > 0 {
		rows := make([][]string, len(dois))
		for i, v := range dois {
			rows[i] = []string{v.DOI, strings.Join(v.Handles, ", ")}
		}
		p.table([]string{"DOI", "Handles"}, rows, nil, len(rows))
	}

	p.title(fmt.Sprintf("Undeclared duplicates (%d people)", len(persons)))
	if len(persons) == 0 {
		return
	}
	var rows [][]string
	for _, v := range persons {
		for _, pair := range v.Pairs {
			rows = append(rows, []string{
				v.Person.FullName,
				fmt.Sprintf("%s (row %d)", pair.Kept.Handle, pair.Kept.RowIndex),
				fmt.Sprintf("%s (row %d)", pair.Dropped.Handle, pair.Dropped.RowIndex),
				cut(show(pair.Dropped.Title)),
			})
		}
	}
	p.table([]string{"Person", "Kept", "Dropped", "Title"}, rows, nil, len(rows))
}

func (p *Printer) title(s string) {
	fmt.Fprintln(p.w, titleStyle.Render(s))
}

// table prints rows with a header. Columns in numeric are right
// aligned, rows from dimFrom on are dimmed.
func (p *Printer) table(
	headers []string,
	rows [][]string,
	numeric map[int]bool,
	dimFrom int,
) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row >= dimFrom:
				return dimStyle
			case numeric[col]:
				return numStyle
			default:
				return cellStyle
			}
		})
	fmt.Fprintln(p.w, t.Render())
}

func standingRow(pos string, st aggregate.Standing) []string {
	authors := fmt.Sprintf("%s/%s/%s",
		showInt(st.MinNumAuthors),
		showFloat(st.MeanNumAuthors),
		showInt(st.MaxNumAuthors))
	return []string{
		pos,
		st.Person.FullName,
		fmt.Sprintf("%.3f", st.Rating),
		strconv.Itoa(st.NumProducts),
		strconv.Itoa(st.NumCollabProducts),
		authors,
		strconv.Itoa(len(st.Dropped)),
	}
}

func productRow(p record.Product) []string {
	return []string{
		strconv.Itoa(p.RowIndex),
		p.Handle,
		p.AuthorFullName(),
		show(p.Journal),
		cut(show(p.Title)),
	}
}

func cut(s string) string {
	r := []rune(s)
	if len(r) <= titleLen {
		return s
	}
	return string(r[:titleLen-1]) + "…"
}

func show(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func showInt(i *int) string {
	if i == nil {
		return "-"
	}
	return strconv.Itoa(*i)
}

func showFloat(f *float64) string {
	if f == nil {
		return "-"
	}
	return strconv.FormatFloat(*f, 'f', 2, 64)
}

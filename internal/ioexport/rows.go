package ioexport

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/gnames/gnrating/pkg/ranking"
	"github.com/gnames/gnrating/pkg/schema"
	"github.com/gnames/gnuuid"
	"github.com/jackc/pgx/v5"
)

// personRatings converts the standings of a run into rows, ranked
// people first.
func personRatings(runID string, run *ranking.Run) []schema.PersonRating {
	standings := run.Standings()
	res := make([]schema.PersonRating, len(standings))
	for i, st := range standings {
		res[i] = schema.PersonRating{
			RunID:             runID,
			PersonName:        st.Person.FullName,
			SubArea:           string(st.Person.SubArea),
			Ranking:           st.Ranking,
			Rating:            st.Rating,
			NumProducts:       st.NumProducts,
			NumCollabProducts: st.NumCollabProducts,
			MinNumAuthors:     nullInt(st.MinNumAuthors),
			MeanNumAuthors:    nullFloat(st.MeanNumAuthors),
			MaxNumAuthors:     nullInt(st.MaxNumAuthors),
			NumDropped:        len(st.Dropped),
		}
	}
	return res
}

// productRatings lists the scored products of every person of the
// run. IDs are UUID v5 of the run ID and the source row.
func productRatings(runID string, run *ranking.Run) ([]schema.ProductRating, error) {
	var res []schema.ProductRating
	for _, st := range run.Standings() {
		items, err := run.Breakdown(st.Person)
		if err != nil {
			return nil, err
		}
		for _, v := range items {
			p := v.Product
			pr := schema.ProductRating{
				ID:           gnuuid.New(fmt.Sprintf("%s|%d", runID, p.RowIndex)).String(),
				RunID:        runID,
				PersonName:   st.Person.FullName,
				Handle:       p.Handle,
				SourceRow:    p.RowIndex,
				PubType:      p.PubType.Label(),
				Year:         nullInt(p.Year),
				NumAuthors:   nullInt(p.NumAuthors),
				ImpactFactor: nullFloat(p.ImpactFactor),
				Points:       v.Points,
				Duplicate:    v.Duplicate,
			}
			if p.Title != nil {
				pr.Title = sql.NullString{String: *p.Title, Valid: true}
			}
			res = append(res, pr)
		}
	}
	return res, nil
}

// rows converts models into CopyFrom rows.
func rows[T any](models []T) [][]any {
	res := make([][]any, len(models))
	for i := range models {
		res[i] = schema.Values(models[i])
	}
	return res
}

func nullInt(i *int) sql.NullInt32 {
	if i == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(*i), Valid: true}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

func joinIdentifiers(cols []string) string {
	res := make([]string, len(cols))
	for i, c := range cols {
		res[i] = pgx.Identifier{c}.Sanitize()
	}
	return strings.Join(res, ", ")
}

func placeholders(n int) string {
	res := make([]string, n)
	for i := range res {
		res[i] = fmt.Sprintf("$%d", i+1)
	}
	return strings.Join(res, ", ")
}

// Package iosqlite loads products and persons from an SQLite file.
// Tables must have the columns named by record.ProductLayout and
// record.PersonLayout. Extra columns are ignored.
package iosqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gnrating/pkg/collection"
	"github.com/gnames/gnrating/pkg/config"
	"github.com/gnames/gnrating/pkg/record"
	"github.com/gnames/gnrating/pkg/source"
	"golang.org/x/sync/errgroup"
	_ "modernc.org/sqlite"
)

type iosqlite struct {
	path          string
	productsTable string
	personsTable  string
	firstRow      int
}

// New creates a source.Loader for the configured SQLite file.
func New(cfg *config.Config) source.Loader {
	res := iosqlite{
		path:          cfg.SourcePath(),
		productsTable: cfg.Source.ProductsTable,
		personsTable:  cfg.Source.PersonsTable,
		firstRow:      cfg.Source.FirstRow,
	}
	return &res
}

// Load reads both tables concurrently.
func (s *iosqlite) Load(ctx context.Context) (*source.Roster, error) {
	if _, err := os.Stat(s.path); err != nil {
		return nil, SourceNotFoundError(s.path, err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, SourceOpenError(s.path, err)
	}
	defer db.Close()

	if err = db.PingContext(ctx); err != nil {
		return nil, SourceOpenError(s.path, err)
	}

	var prods []record.Product
	var pers []record.Person

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		prods, err = readTable(gCtx, db, s.productsTable,
			record.ProductLayout, s.firstRow, record.NewProduct)
		return err
	})
	g.Go(func() error {
		var err error
		pers, err = readTable(gCtx, db, s.personsTable,
			record.PersonLayout, s.firstRow, record.NewPerson)
		return err
	})
	if err = g.Wait(); err != nil {
		return nil, err
	}

	slog.Info("Source loaded",
		"path", s.path,
		"products", len(prods),
		"persons", len(pers),
	)

	res := source.Roster{
		Products: collection.New(prods),
		Persons:  collection.New(pers),
	}
	return &res, nil
}

// readTable reads all rows of a table in rowid order. The row index
// of the first record is firstRow.
func readTable[T any](
	ctx context.Context,
	db *sql.DB,
	table string,
	layout []record.Field,
	firstRow int,
	build func([]any, int) (T, error),
) ([]T, error) {
	cols := record.Columns(layout)
	quoted := make([]string, len(cols))
	for i, v := range cols {
		quoted[i] = quote(v)
	}
	q := fmt.Sprintf("SELECT %s FROM %s ORDER BY rowid",
		strings.Join(quoted, ", "), quote(table))

	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, SourceQueryError(table, err)
	}
	defer rows.Close()

	var res []T
	vals := make([]any, len(cols))
	scanArgs := make([]any, len(cols))
	for i := range vals {
		scanArgs[i] = &vals[i]
	}

	var i int
	for rows.Next() {
		if err = rows.Scan(scanArgs...); err != nil {
			return nil, SourceScanError(table, firstRow+i, err)
		}
		rec, err := build(vals, firstRow+i)
		if err != nil {
			return nil, err
		}
		res = append(res, rec)
		i++
	}
	if err = rows.Err(); err != nil {
		return nil, SourceQueryError(table, err)
	}

	if len(res) == 0 {
		return nil, SourceEmptyError(table)
	}
	return res, nil
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

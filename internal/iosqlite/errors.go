package iosqlite

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnrating/pkg/errcode"
)

// SourceNotFoundError is returned when the SQLite file is missing.
func SourceNotFoundError(path string, err error) error {
	msg := `Cannot find source data

<em>SQLite file:</em> %s

<em>How to fix:</em>
  Set <em>source.path</em> in config.yaml or use <em>--source</em>`
	vars := []any{path}
	return &gn.Error{
		Code: errcode.SourceNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("source %s not found: %w", path, err),
	}
}

// SourceOpenError is returned when the SQLite file cannot be opened.
func SourceOpenError(path string, err error) error {
	msg := "Cannot open SQLite file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SourceOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot open %s: %w", fn.Name(), path, err),
	}
}

// SourceQueryError is returned when a table cannot be read.
func SourceQueryError(table string, err error) error {
	msg := `Cannot read table <em>%s</em>

Make sure the table exists and has the expected columns.`
	vars := []any{table}
	return &gn.Error{
		Code: errcode.SourceQueryError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot query %s: %w", table, err),
	}
}

// SourceScanError is returned for a row that cannot be scanned.
func SourceScanError(table string, row int, err error) error {
	msg := "Cannot read row <em>%d</em> of table <em>%s</em>"
	vars := []any{row, table}
	return &gn.Error{
		Code: errcode.SourceScanError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot scan %s row %d: %w", table, row, err),
	}
}

// SourceEmptyError is returned for a table without records.
func SourceEmptyError(table string) error {
	msg := "Table <em>%s</em> has no records"
	vars := []any{table}
	return &gn.Error{
		Code: errcode.SourceEmptyError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("table %s is empty", table),
	}
}

package ioexport

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnrating/pkg/errcode"
)

// NotConnectedError is returned when export starts without a
// database connection.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Export attempted without database connection",
		Err:  fmt.Errorf("not connected to database"),
	}
}

// RunInsertError is returned when the run record cannot be stored.
func RunInsertError(runID string, err error) error {
	msg := `Cannot store rating run <em>%s</em>

<em>How to fix:</em>
  1. Create the export schema with <em>gnrating create</em>
  2. Check database user has INSERT permissions`
	vars := []any{runID}
	return &gn.Error{
		Code: errcode.ExportRunError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to store run %s: %w", runID, err),
	}
}

// PersonsCopyError is returned when person ratings cannot be
// copied.
func PersonsCopyError(err error) error {
	return &gn.Error{
		Code: errcode.ExportPersonsError,
		Msg:  "Cannot export person ratings",
		Err:  fmt.Errorf("failed to copy person ratings: %w", err),
	}
}

// ProductsCopyError is returned when product ratings cannot be
// copied.
func ProductsCopyError(err error) error {
	return &gn.Error{
		Code: errcode.ExportProductsError,
		Msg:  "Cannot export product ratings",
		Err:  fmt.Errorf("failed to copy product ratings: %w", err),
	}
}

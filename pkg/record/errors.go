package record

import (
	"errors"
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnrating/pkg/errcode"
)

// ErrFieldNotFound is the cause of every FieldNotFoundError.
var ErrFieldNotFound = errors.New("field not found")

// FieldNotFoundError is returned when a record kind does not
// declare the requested field.
func FieldNotFoundError(kind string, f Field) error {
	msg := "Field <em>%s</em> is not declared for %s records"
	vars := []any{f.String(), kind}
	return &gn.Error{
		Code: errcode.FieldNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%s.%s: %w", kind, f, ErrFieldNotFound),
	}
}

// LengthError is returned when a flat row does not match the layout.
func LengthError(kind string, row, want, got int) error {
	msg := "Row <em>%d</em> has %d values, %s records need %d"
	vars := []any{row, got, kind, want}
	return &gn.Error{
		Code: errcode.RecordLengthError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%s row %d: want %d values, got %d", kind, row, want, got),
	}
}

// MissingKeyError is returned when the primary key of a row is absent.
func MissingKeyError(kind string, f Field, row int) error {
	msg := "Row <em>%d</em> has no <em>%s</em>"
	vars := []any{row, f.String()}
	return &gn.Error{
		Code: errcode.RecordMissingKeyError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%s row %d: %s is absent", kind, row, f),
	}
}

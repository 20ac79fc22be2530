package collection

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnrating/pkg/errcode"
	"github.com/gnames/gnrating/pkg/record"
)

// FieldTypeError is returned when a string operation is requested
// on a field that does not hold strings.
func FieldTypeError(f record.Field, want string) error {
	msg := "Field <em>%s</em> is not of type %s"
	vars := []any{f.String(), want}
	return &gn.Error{
		Code: errcode.FieldTypeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("field %s is not a %s", f, want),
	}
}

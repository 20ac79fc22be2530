package ranking

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnrating/pkg/errcode"
)

// PersonNotFoundError is returned when a name matches nobody in the
// persons table.
func PersonNotFoundError(name string) error {
	msg := `Person <em>%s</em> is not in the persons table
Use the "SURNAME NAME" form of the persons table`
	vars := []any{name}
	return &gn.Error{
		Code: errcode.PersonNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("person %q not found", name),
	}
}

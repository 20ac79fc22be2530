package validity

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnrating/pkg/errcode"
)

// ExclusionError is returned for an unknown exclusion variant.
func ExclusionError(s string) error {
	msg := `Unknown exclusion <em>'%s'</em>
Use <em>%s</em> or <em>%s</em>`
	vars := []any{s, ExcludeDuplicates, ExcludeDuplicatesErrata}
	return &gn.Error{
		Code: errcode.PolicyExclusionError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown exclusion %q", s),
	}
}

package policy

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnrating/pkg/errcode"
)

// ParseError is returned when policy.yaml is not valid YAML.
func ParseError(err error) error {
	msg := `Cannot parse policy

<em>How to fix:</em>
  Validate YAML syntax of <em>policy.yaml</em>`
	return &gn.Error{
		Code: errcode.PolicyParseError,
		Msg:  msg,
		Err:  fmt.Errorf("failed to parse policy: %w", err),
	}
}

// RowError is returned for row indices that cannot exist.
func RowError(list string, row int) error {
	msg := "Row <em>%d</em> in <em>%s</em> is not a valid row index"
	vars := []any{row, list}
	return &gn.Error{
		Code: errcode.PolicyRowError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("invalid row %d in %s", row, list),
	}
}

// OverrideError is returned for an override without a handle or with
// negative points.
func OverrideError(handle string, points float64) error {
	msg := "Override <em>'%s': %v</em> is not valid"
	vars := []any{handle, points}
	return &gn.Error{
		Code: errcode.PolicyOverrideError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("invalid override %q: %v", handle, points),
	}
}

package iopolicy

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnrating/pkg/errcode"
)

// PolicyReadError creates an error for when policy.yaml cannot be
// read.
func PolicyReadError(path string, err error) error {
	msg := `Cannot read policy

<em>Policy file:</em> %s

<em>Possible causes:</em>
  - File does not exist
  - Permission denied

<em>How to fix:</em>
  1. Check if file exists: <em>ls -l %s</em>
  2. Run any <em>gnrating</em> command once to create a template`

	vars := []any{path, path}

	return &gn.Error{
		Code: errcode.PolicyReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to read policy: %w", err),
	}
}

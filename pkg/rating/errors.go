package rating

import (
	"errors"
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnrating/pkg/errcode"
	"github.com/gnames/gnrating/pkg/record"
)

// ErrUnscorable is the cause of every UnscorableProductError.
var ErrUnscorable = errors.New("unscorable product")

// UnscorableProductError is returned for products that have neither
// an override nor a scoring rule. It must stop the run.
func UnscorableProductError(p record.Product) error {
	msg := `<err>Cannot assign rating points</err>

<em>Handle:</em> %s
<em>Product:</em> %s
<em>Authors:</em> %s
<em>Impact factor:</em> %s

Add the handle to the <em>overrides</em> section of policy.yaml.`
	numAuthors := "None"
	if p.NumAuthors != nil {
		numAuthors = fmt.Sprintf("%d", *p.NumAuthors)
	}
	impactFactor := "None"
	if p.ImpactFactor != nil {
		impactFactor = fmt.Sprintf("%.3f", *p.ImpactFactor)
	}
	vars := []any{p.Handle, p.String(), numAuthors, impactFactor}
	return &gn.Error{
		Code: errcode.UnscorableProductError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("%w: handle %s, %s, %s author(s), IF = %s",
			ErrUnscorable, p.Handle, p, numAuthors, impactFactor),
	}
}

// UnknownSubAreaError is returned for sub-areas without an exponent.
func UnknownSubAreaError(sa record.SubArea) error {
	msg := "Unknown sub-area <em>'%s'</em>, valid ones are a, b, c"
	vars := []any{string(sa)}
	return &gn.Error{
		Code: errcode.UnknownSubAreaError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown sub-area %q", sa),
	}
}

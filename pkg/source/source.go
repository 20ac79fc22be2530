// Package source defines how products and persons enter a rating
// run.
package source

import (
	"context"

	"github.com/gnames/gnrating/pkg/collection"
	"github.com/gnames/gnrating/pkg/record"
)

// Roster is the loaded input of a run.
type Roster struct {
	Products *collection.Collection[record.Product]
	Persons  *collection.Collection[record.Person]
}

// Loader reads a Roster from tabular data. Records keep the order of
// the source.
type Loader interface {
	Load(ctx context.Context) (*Roster, error)
}

package db_test

import (
	"testing"

	"github.com/gnames/gnrating/internal/iodb"
	"github.com/gnames/gnrating/pkg/db"
	"github.com/stretchr/testify/assert"
)

func TestPgxOperatorImplementsInterface(t *testing.T) {
	var op db.Operator = iodb.NewPgxOperator()
	assert.NotNil(t, op)
	assert.Nil(t, op.Pool(), "pool is nil before Connect")
}

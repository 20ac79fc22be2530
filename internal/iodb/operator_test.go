//go:build integration

package iodb_test

import (
	"context"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnrating/internal/iodb"
	"github.com/gnames/gnrating/internal/iotesting"
	"github.com/gnames/gnrating/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run with: go test -tags integration ./internal/iodb/
// Requires a running Docker daemon.

func TestPgxOperator_Connect(t *testing.T) {
	cfg := iotesting.StartPostgres(t)
	op := iodb.NewPgxOperator()
	ctx := context.Background()

	err := op.Connect(ctx, &cfg.Database)
	require.NoError(t, err, "Connect should succeed with valid config")
	defer op.Close()

	exists, err := op.TableExists(ctx, "nonexistent_table")
	assert.NoError(t, err)
	assert.False(t, exists)

	hasTables, err := op.HasTables(ctx)
	assert.NoError(t, err)
	assert.False(t, hasTables, "fresh database has no tables")
}

func TestPgxOperator_Connect_InvalidHost(t *testing.T) {
	cfg := iotesting.GetTestConfig(t)
	cfg.Database.Host = "invalid-host-that-does-not-exist"
	op := iodb.NewPgxOperator()

	err := op.Connect(context.Background(), &cfg.Database)
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.DBConnectionError, gnErr.Code)
}

func TestPgxOperator_NotConnected(t *testing.T) {
	op := iodb.NewPgxOperator()
	ctx := context.Background()

	_, err := op.TableExists(ctx, "persons")
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.DBNotConnectedError, gnErr.Code)

	_, err = op.HasTables(ctx)
	assert.Error(t, err)
	assert.Error(t, op.DropAllTables(ctx))
	assert.NoError(t, op.Close())
}

func TestPgxOperator_TableExistsAndDrop(t *testing.T) {
	cfg := iotesting.StartPostgres(t)
	op := iodb.NewPgxOperator()
	ctx := context.Background()

	require.NoError(t, op.Connect(ctx, &cfg.Database))
	defer op.Close()

	_, err := op.Pool().Exec(ctx,
		"CREATE TABLE drop_test1 (id SERIAL PRIMARY KEY)")
	require.NoError(t, err)
	_, err = op.Pool().Exec(ctx,
		"CREATE TABLE drop_test2 (id SERIAL PRIMARY KEY)")
	require.NoError(t, err)

	exists, err := op.TableExists(ctx, "drop_test1")
	require.NoError(t, err)
	assert.True(t, exists)

	hasTables, err := op.HasTables(ctx)
	require.NoError(t, err)
	assert.True(t, hasTables)

	require.NoError(t, op.DropAllTables(ctx))

	exists1, _ := op.TableExists(ctx, "drop_test1")
	exists2, _ := op.TableExists(ctx, "drop_test2")
	assert.False(t, exists1, "drop_test1 should be dropped")
	assert.False(t, exists2, "drop_test2 should be dropped")
}

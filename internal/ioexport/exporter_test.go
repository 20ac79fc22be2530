//go:build integration

package ioexport_test

import (
	"context"
	"testing"

	"github.com/gnames/gnrating/internal/iodb"
	"github.com/gnames/gnrating/internal/ioexport"
	"github.com/gnames/gnrating/internal/ioschema"
	"github.com/gnames/gnrating/internal/iotesting"
	"github.com/gnames/gnrating/pkg/aggregate"
	"github.com/gnames/gnrating/pkg/policy"
	"github.com/gnames/gnrating/pkg/ranking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport(t *testing.T) {
	cfg := iotesting.StartPostgres(t)
	ctx := context.Background()

	op := iodb.NewPgxOperator()
	require.NoError(t, op.Connect(ctx, &cfg.Database))
	defer op.Close()
	require.NoError(t, ioschema.NewManager(op).Create(ctx))

	pol, err := policy.Parse([]byte(iotesting.PolicyYAML))
	require.NoError(t, err)
	run, err := ranking.New(iotesting.Roster(t), pol, aggregate.DefaultOptions())
	require.NoError(t, err)

	// small batches exercise the batching loop
	cfg.Database.BatchSize = 2
	runID, err := ioexport.New(cfg, op).Export(ctx, run)
	require.NoError(t, err)
	assert.NotEmpty(t, runID)

	pool := op.Pool()
	var exclusion string
	var numPersons int
	err = pool.QueryRow(ctx,
		"SELECT exclusion, num_persons FROM rating_runs WHERE id = $1",
		runID).Scan(&exclusion, &numPersons)
	require.NoError(t, err)
	assert.Equal(t, "duplicates+errata", exclusion)
	assert.Equal(t, 4, numPersons)

	var name string
	err = pool.QueryRow(ctx, `
		SELECT person_name FROM person_ratings
		WHERE run_id = $1 AND sub_area = 'a' AND ranking = 0`,
		runID).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "ROSSI PAOLO", name)

	var products, dups int
	err = pool.QueryRow(ctx, `
		SELECT count(*), count(*) FILTER (WHERE duplicate)
		FROM product_ratings WHERE run_id = $1`,
		runID).Scan(&products, &dups)
	require.NoError(t, err)
	assert.Equal(t, 6, products)
	assert.Equal(t, 1, dups)

	// a second export is a new run
	runID2, err := ioexport.New(cfg, op).Export(ctx, run)
	require.NoError(t, err)
	assert.NotEqual(t, runID, runID2)

	var runs, rows int
	err = pool.QueryRow(ctx, `
		SELECT count(DISTINCT run_id), count(DISTINCT id)
		FROM product_ratings`).Scan(&runs, &rows)
	require.NoError(t, err)
	assert.Equal(t, 2, runs)
	assert.Equal(t, 12, rows)
}

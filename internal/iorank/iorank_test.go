package iorank_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnrating/internal/iorank"
	"github.com/gnames/gnrating/internal/iotesting"
	"github.com/gnames/gnrating/pkg/config"
	"github.com/gnames/gnrating/pkg/errcode"
	"github.com/gnames/gnrating/pkg/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, policy string) *config.Config {
	t.Helper()
	cfg := iotesting.GetTestConfig(t)
	path := filepath.Join(t.TempDir(), "rating.sqlite")
	iotesting.WriteSource(t, path, iotesting.ProductRows, iotesting.PersonRows)
	cfg.Update([]config.Option{config.OptSourcePath(path)})
	iotesting.WritePolicy(t, cfg.HomeDir, policy)
	return cfg
}

func TestOptions(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptRatingMinProducts(3),
		config.OptRatingYear(2019),
	})
	opts := iorank.Options(cfg)
	assert.Equal(t, 20, opts.CollabThreshold)
	assert.Equal(t, 3, opts.MinProducts)
	assert.True(t, opts.DropDuplicates)
	assert.Equal(t, 2019, opts.Year)
}

func TestLoad(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	cfg := setup(t, iotesting.PolicyYAML)

	run, err := iorank.Load(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 7, run.Products.Len())
	assert.Equal(t, 6, run.NumValid())

	sa, ok := run.Result.SubArea(record.SubAreaA)
	require.True(t, ok)
	require.Len(t, sa.Standings, 2)
	assert.Equal(t, "ROSSI PAOLO", sa.Standings[0].Person.FullName)
}

func TestLoadYear(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	cfg := setup(t, iotesting.PolicyYAML)
	cfg.Update([]config.Option{config.OptRatingYear(2020)})

	run, err := iorank.Load(context.Background(), cfg)
	require.NoError(t, err)

	// only the 2020 proceedings of BIANCHI counts, nobody is ranked
	sa, _ := run.Result.SubArea(record.SubAreaA)
	assert.Empty(t, sa.Standings)
	require.Len(t, sa.Excluded, 2)
}

func TestLoadBadPolicy(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	cfg := setup(t, "exclusion: everything\n")

	_, err := iorank.Load(context.Background(), cfg)
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.PolicyExclusionError, gnErr.Code)
}

func TestLoadNoSource(t *testing.T) {
	cfg := iotesting.GetTestConfig(t)
	cfg.Update([]config.Option{
		config.OptSourcePath(filepath.Join(t.TempDir(), "none.sqlite")),
	})

	_, err := iorank.Load(context.Background(), cfg)
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.SourceNotFoundError, gnErr.Code)
}

func TestPrepare(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	cfg := setup(t, iotesting.PolicyYAML)

	in, err := iorank.Prepare(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 4, in.Persons.Len())
	assert.Equal(t, 7, in.Products.Len())
	assert.Equal(t, 6, in.NumValid())
	assert.True(t, in.Invalid.Has(8))

	run, err := in.Rank()
	require.NoError(t, err)
	assert.Same(t, in, run.Input)
}

// Package iorank loads the records and the policy of the user,
// applies the policy and computes a ranking.Run from them.
package iorank

import (
	"context"
	"log/slog"
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/gnrating/internal/iopolicy"
	"github.com/gnames/gnrating/internal/iosqlite"
	"github.com/gnames/gnrating/pkg/aggregate"
	"github.com/gnames/gnrating/pkg/config"
	"github.com/gnames/gnrating/pkg/ranking"
	"github.com/gnames/gnfmt"
)

// Options converts rating settings into aggregation options.
func Options(cfg *config.Config) aggregate.Options {
	return aggregate.Options{
		CollabThreshold: cfg.Rating.CollabThreshold,
		MinProducts:     cfg.Rating.MinProducts,
		DropDuplicates:  cfg.Rating.DropDuplicates,
		Year:            cfg.Rating.Year,
	}
}

// Prepare reads the source file and policy.yaml and applies the
// policy. Policy warnings are shown to the user.
func Prepare(ctx context.Context, cfg *config.Config) (*ranking.Input, error) {
	roster, err := iosqlite.New(cfg).Load(ctx)
	if err != nil {
		return nil, err
	}

	pol, err := iopolicy.New(cfg).Load()
	if err != nil {
		return nil, err
	}
	for _, w := range pol.Warnings {
		gn.Warn("%s", w)
	}

	in := ranking.Prepare(roster, pol, Options(cfg))
	slog.Info("Policy applied",
		"persons", in.Persons.Len(),
		"products", in.Products.Len(),
		"valid", in.NumValid(),
		"patched_impact_factors", len(in.Patched),
	)
	return in, nil
}

// Load prepares the records and ranks everyone.
func Load(ctx context.Context, cfg *config.Config) (*ranking.Run, error) {
	startTime := time.Now()

	in, err := Prepare(ctx, cfg)
	if err != nil {
		return nil, err
	}

	run, err := in.Rank()
	if err != nil {
		return nil, err
	}

	slog.Info("Rating computed",
		"ranked_sub_areas", len(run.Result.SubAreas),
		"duration", gnfmt.TimeString(time.Since(startTime).Seconds()),
	)
	return run, nil
}

// Package ioexport implements ranking.Exporter for PostgreSQL.
// This is an impure I/O package that stores a finished run with
// bulk inserts.
package ioexport

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	gnrating "github.com/gnames/gnrating/pkg"
	"github.com/gnames/gnrating/pkg/config"
	"github.com/gnames/gnrating/pkg/db"
	"github.com/gnames/gnrating/pkg/ranking"
	"github.com/gnames/gnrating/pkg/schema"
	"github.com/gnames/gnfmt"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// exporter implements the ranking.Exporter interface.
type exporter struct {
	cfg      *config.Config
	operator db.Operator
}

// New creates a new Exporter. The operator must be connected before
// Export is called.
func New(cfg *config.Config, op db.Operator) ranking.Exporter {
	return &exporter{cfg: cfg, operator: op}
}

// Export stores the run, its person ratings and product ratings in
// one transaction and returns the run ID.
func (e *exporter) Export(ctx context.Context, run *ranking.Run) (string, error) {
	pool := e.operator.Pool()
	if pool == nil {
		return "", NotConnectedError()
	}

	startTime := time.Now()
	runID := uuid.NewString()
	slog.Info("Starting export", "run_id", runID)

	persons := personRatings(runID, run)
	products, err := productRatings(runID, run)
	if err != nil {
		return "", err
	}
	rr := ratingRun(runID, e.cfg, run, len(persons), len(products))

	tx, err := pool.Begin(ctx)
	if err != nil {
		return "", RunInsertError(runID, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err = insertRun(ctx, tx, rr); err != nil {
		return "", RunInsertError(runID, err)
	}

	batch := e.cfg.Database.BatchSize
	err = copyRows(ctx, tx, schema.PersonRating{}, rows(persons), batch,
		"Exporting persons: ")
	if err != nil {
		return "", PersonsCopyError(err)
	}

	err = copyRows(ctx, tx, schema.ProductRating{}, rows(products), batch,
		"Exporting products: ")
	if err != nil {
		return "", ProductsCopyError(err)
	}

	if err = tx.Commit(ctx); err != nil {
		return "", RunInsertError(runID, err)
	}

	duration := time.Since(startTime)
	slog.Info("Export complete",
		"run_id", runID,
		"persons", len(persons),
		"products", len(products),
		"duration", gnfmt.TimeString(duration.Seconds()),
	)
	gn.Info(`Export complete
  Run ID: <em>%s</em>
  Persons: %s
  Products: %s
  Duration: %s`,
		runID,
		humanize.Comma(int64(len(persons))),
		humanize.Comma(int64(len(products))),
		gnfmt.TimeString(duration.Seconds()),
	)
	return runID, nil
}

func ratingRun(
	runID string,
	cfg *config.Config,
	run *ranking.Run,
	numPersons, numProducts int,
) schema.RatingRun {
	return schema.RatingRun{
		ID:              runID,
		Year:            run.Options.Year,
		Exclusion:       string(run.Exclusion),
		CollabThreshold: run.Options.CollabThreshold,
		MinProducts:     run.Options.MinProducts,
		DropDuplicates:  run.Options.DropDuplicates,
		Source:          cfg.SourcePath(),
		NumPersons:      numPersons,
		NumProducts:     numProducts,
		Version:         gnrating.Version,
		CreatedAt:       time.Now().UTC(),
	}
}

func insertRun(ctx context.Context, tx pgx.Tx, rr schema.RatingRun) error {
	cols := schema.Columns(rr)
	q := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		pgx.Identifier{rr.TableName()}.Sanitize(),
		joinIdentifiers(cols),
		placeholders(len(cols)),
	)
	_, err := tx.Exec(ctx, q, schema.Values(rr)...)
	return err
}

// copyRows inserts rows of a model's table with CopyFrom in batches
// of batchSize.
func copyRows(
	ctx context.Context,
	tx pgx.Tx,
	model interface{ TableName() string },
	data [][]any,
	batchSize int,
	prefix string,
) error {
	if len(data) == 0 {
		return nil
	}
	if batchSize < 1 {
		batchSize = len(data)
	}
	cols := schema.Columns(model)

	bar := pb.Full.Start(len(data))
	bar.Set("prefix", prefix)
	bar.Set(pb.CleanOnFinish, true)
	defer bar.Finish()

	for i := 0; i < len(data); i += batchSize {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		end := min(i+batchSize, len(data))
		_, err := tx.CopyFrom(
			ctx,
			pgx.Identifier{model.TableName()},
			cols,
			pgx.CopyFromRows(data[i:end]),
		)
		if err != nil {
			return err
		}
		bar.Add(end - i)
	}
	return nil
}

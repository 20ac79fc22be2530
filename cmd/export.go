/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/gnames/gnrating/internal/iodb"
	"github.com/gnames/gnrating/internal/ioexport"
	"github.com/gnames/gnrating/internal/iorank"
	"github.com/gnames/gnrating/pkg/schema"
	"github.com/spf13/cobra"
)

// getExportCmd returns the export command.
func getExportCmd() *cobra.Command {
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Rank staff and store the run in PostgreSQL",
		Long: `Compute the ranking and store it in the export database.

This command:
  1. Computes the ranking like 'gnrating rank'
  2. Connects to PostgreSQL using configuration settings
  3. Stores one rating_runs row with the settings of the run
  4. Copies person_ratings and product_ratings in batches

Every export is a new run with its own ID, older runs are kept.
Run 'gnrating create' once before the first export.

Examples:
  gnrating export
  gnrating export --year 2019`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runExport(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	addRatingFlags(exportCmd)
	return exportCmd
}

func runExport(cmd *cobra.Command) error {
	ctx := context.Background()
	cfg.Update(flagOptions(cmd, ratingFlags...))

	run, err := iorank.Load(ctx, cfg)
	if err != nil {
		return err
	}

	op := iodb.NewPgxOperator()
	if err = op.Connect(ctx, &cfg.Database); err != nil {
		return err
	}
	defer op.Close()

	gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)

	exists, err := op.TableExists(ctx, schema.RatingRun{}.TableName())
	if err != nil {
		return err
	}
	if !exists {
		gn.Warn(`Warning: Export tables do not exist.
	Run 'gnrating create' first to initialize the schema.`)
		return nil
	}

	_, err = ioexport.New(cfg, op).Export(ctx, run)
	return err
}

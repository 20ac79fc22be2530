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
	"slices"
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/gnrating/internal/iorank"
	"github.com/gnames/gnrating/internal/ioreport"
	"github.com/gnames/gnrating/pkg/ranking"
	"github.com/gnames/gnrating/pkg/record"
	"github.com/spf13/cobra"
)

// getRankCmd returns the rank command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getRankCmd() *cobra.Command {
	rankCmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank staff by rating points within each sub-area",
		Long: `Compute rating points of every product and rank people.

This command:
  1. Reads products and persons from the SQLite source
  2. Reads policy.yaml (exclusions, overrides, impact factors)
  3. Scores every valid product for the sub-area of its author
  4. Sums points per person, dropping undeclared duplicates
  5. Prints one ranked table per sub-area

People with fewer products than min_products are listed after the
ranked ones without a position.

Examples:
  gnrating rank
  gnrating rank --year 2019
  gnrating rank --sub-area c
  gnrating rank --person "ROSSI PAOLO"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runRank(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	addRatingFlags(rankCmd)
	rankCmd.Flags().StringP("sub-area", "a", "",
		"show only one sub-area (a, b or c)")
	rankCmd.Flags().StringP("person", "p", "",
		"show points of every product of a person")

	return rankCmd
}

func runRank(cmd *cobra.Command) error {
	ctx := context.Background()
	startTime := time.Now()

	flags := append(slices.Clone(ratingFlags), subAreaFlag, personFlag)
	cfg.Update(flagOptions(cmd, flags...))

	run, err := iorank.Load(ctx, cfg)
	if err != nil {
		return err
	}

	out := ioreport.New(cmd.OutOrStdout())
	if cfg.Rating.Person != "" {
		person, ok := run.Person(cfg.Rating.Person)
		if !ok {
			return ranking.PersonNotFoundError(cfg.Rating.Person)
		}
		items, err := run.Breakdown(person)
		if err != nil {
			return err
		}
		out.Breakdown(person, items)
		return nil
	}

	out.Ranking(run.Filter(record.NewSubArea(cfg.Rating.SubArea)))
	out.Summary(run, time.Since(startTime))
	return nil
}

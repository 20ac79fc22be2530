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
	"github.com/gnames/gnrating/internal/iorank"
	"github.com/gnames/gnrating/internal/ioreport"
	"github.com/spf13/cobra"
)

// getCheckCmd returns the check command.
func getCheckCmd() *cobra.Command {
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Report data quality problems of the source records",
		Long: `Run data quality checks on the products of the source.

Reports the distribution of publication types, then runs the checks:
  - journal articles without journal or DOI
  - monographs without ISBN
  - articles whose journal looks like proceedings
  - author lists that disagree with the author count
  - DOIs shared by several handles
  - undeclared duplicates in the products of a person
  - errata and corrigenda not yet excluded by policy.yaml

Nothing is scored, so the checks run even when some products cannot
be rated yet. Findings point at rows that may need an entry in
policy.yaml. With --year only products of that year are checked.

Examples:
  gnrating check
  gnrating check --year 2019`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runCheck(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	addRatingFlags(checkCmd)
	return checkCmd
}

func runCheck(cmd *cobra.Command) error {
	cfg.Update(flagOptions(cmd, ratingFlags...))

	in, err := iorank.Prepare(context.Background(), cfg)
	if err != nil {
		return err
	}

	rep, err := in.Diagnose()
	if err != nil {
		return err
	}
	ioreport.New(cmd.OutOrStdout()).Diagnostics(rep)
	if n := rep.Problems(); n > 0 {
		gn.Warn("Found <em>%d</em> possible problems", n)
	}
	return nil
}

// getDuplicatesCmd returns the duplicates command.
func getDuplicatesCmd() *cobra.Command {
	dupCmd := &cobra.Command{
		Use:   "duplicates",
		Short: "List shared DOIs and undeclared duplicate products",
		Long: `List products that look like duplicates.

A DOI used by several handles, or two products of one person with
the same DOI, ISBN or title, year and journal, are likely the same
publication entered twice. Declared duplicates belong to the
duplicates list of policy.yaml.

Examples:
  gnrating duplicates`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runDuplicates(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	addRatingFlags(dupCmd)
	return dupCmd
}

func runDuplicates(cmd *cobra.Command) error {
	cfg.Update(flagOptions(cmd, ratingFlags...))

	in, err := iorank.Prepare(context.Background(), cfg)
	if err != nil {
		return err
	}

	rep, err := in.Diagnose()
	if err != nil {
		return err
	}
	ioreport.New(cmd.OutOrStdout()).Duplicates(
		rep.DOIDuplicates, rep.UndeclaredDuplicates,
	)
	return nil
}

package cmd

import (
	"fmt"
	"os"

	app "github.com/gnames/gnrating/pkg"
	"github.com/gnames/gnrating/pkg/config"
	"github.com/spf13/cobra"
)

type funcFlag func(cmd *cobra.Command) []config.Option

func versionFlag(cmd *cobra.Command) {
	hasVersionFlag, _ := cmd.Flags().GetBool("version")
	if hasVersionFlag {
		fmt.Printf("\nversion: %s\nbuild: %s\n\n", app.Version, app.Build)
		os.Exit(0)
	}
}

// addRatingFlags registers flags that change how people are rated.
func addRatingFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("year", "y", 0,
		"rate only products of this year")
	cmd.Flags().Int("min-products", 0,
		"products needed to be ranked (default from config)")
	cmd.Flags().Int("collab-threshold", 0,
		"authors above which a product is a large collaboration")
	cmd.Flags().Bool("keep-duplicates", false,
		"do not drop undeclared duplicates")
}

func yearFlag(cmd *cobra.Command) []config.Option {
	if !cmd.Flags().Changed("year") {
		return nil
	}
	year, _ := cmd.Flags().GetInt("year")
	return []config.Option{config.OptRatingYear(year)}
}

func minProductsFlag(cmd *cobra.Command) []config.Option {
	if !cmd.Flags().Changed("min-products") {
		return nil
	}
	i, _ := cmd.Flags().GetInt("min-products")
	return []config.Option{config.OptRatingMinProducts(i)}
}

func collabThresholdFlag(cmd *cobra.Command) []config.Option {
	if !cmd.Flags().Changed("collab-threshold") {
		return nil
	}
	i, _ := cmd.Flags().GetInt("collab-threshold")
	return []config.Option{config.OptRatingCollabThreshold(i)}
}

func keepDuplicatesFlag(cmd *cobra.Command) []config.Option {
	if !cmd.Flags().Changed("keep-duplicates") {
		return nil
	}
	keep, _ := cmd.Flags().GetBool("keep-duplicates")
	return []config.Option{config.OptRatingDropDuplicates(!keep)}
}

func subAreaFlag(cmd *cobra.Command) []config.Option {
	if !cmd.Flags().Changed("sub-area") {
		return nil
	}
	s, _ := cmd.Flags().GetString("sub-area")
	return []config.Option{config.OptRatingSubArea(s)}
}

func personFlag(cmd *cobra.Command) []config.Option {
	if !cmd.Flags().Changed("person") {
		return nil
	}
	s, _ := cmd.Flags().GetString("person")
	return []config.Option{config.OptRatingPerson(s)}
}

// flagOptions collects options of the given flags that are present
// on the command.
func flagOptions(cmd *cobra.Command, flags ...funcFlag) []config.Option {
	var res []config.Option
	for _, f := range flags {
		res = append(res, f(cmd)...)
	}
	return res
}

// ratingFlags are the flags added by addRatingFlags.
var ratingFlags = []funcFlag{
	yearFlag, minProductsFlag, collabThresholdFlag, keepDuplicatesFlag,
}

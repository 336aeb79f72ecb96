// ABOUTME: CLI command for MLB standings.
// ABOUTME: Supports a year and an optional AL/NL league filter.
package main

import (
	"github.com/spf13/cobra"
)

var (
	standingsYear   int
	standingsLeague string
)

var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Show MLB standings",
	Long: `Show MLB standings for a season.

When --league is AL or NL, the output is narrowed to that league.
Any other value returns both leagues unchanged.

EXAMPLES:

  mlb standings                     # Current season, both leagues
  mlb standings --year 2023         # A past season
  mlb standings --league AL         # American League only`,
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := api.Standings(cmd.Context(), standingsYear, standingsLeague)
		if err != nil {
			return err
		}
		return printResult("", body)
	},
}

func init() {
	standingsCmd.Flags().IntVarP(&standingsYear, "year", "y", 0, "season year (default current year)")
	standingsCmd.Flags().StringVarP(&standingsLeague, "league", "l", "", "league filter: AL or NL")
	rootCmd.AddCommand(standingsCmd)
}

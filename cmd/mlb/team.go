// ABOUTME: CLI commands for per-team resources.
// ABOUTME: Profile, roster, and seasonal statistics by team ID.
package main

import (
	"github.com/spf13/cobra"
)

var (
	teamStatsYear       int
	teamStatsSeasonType string
)

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Per-team data by team ID",
	Long: `Fetch data for a single MLB team.

Team IDs come from the hierarchy output ('mlb hierarchy').

EXAMPLES:

  mlb team profile 575c19b7-4052-41c2-9f0a-1c5813d02f99
  mlb team roster 575c19b7-4052-41c2-9f0a-1c5813d02f99
  mlb team stats 575c19b7-... --year 2023 --season-type PST`,
}

var teamProfileCmd = &cobra.Command{
	Use:   "profile <team-id>",
	Short: "Team profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := api.TeamProfile(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printResult("", body)
	},
}

var teamRosterCmd = &cobra.Command{
	Use:   "roster <team-id>",
	Short: "Team roster",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := api.TeamRoster(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printResult("", body)
	},
}

var teamStatsCmd = &cobra.Command{
	Use:   "stats <team-id>",
	Short: "Team seasonal statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := api.TeamSeasonalStats(cmd.Context(), args[0], teamStatsYear, teamStatsSeasonType)
		if err != nil {
			return err
		}
		return printResult("", body)
	},
}

func init() {
	teamStatsCmd.Flags().IntVarP(&teamStatsYear, "year", "y", 0, "season year (default current year)")
	teamStatsCmd.Flags().StringVar(&teamStatsSeasonType, "season-type", "", "season type: REG or PST (default REG)")
	teamCmd.AddCommand(teamProfileCmd)
	teamCmd.AddCommand(teamRosterCmd)
	teamCmd.AddCommand(teamStatsCmd)
	rootCmd.AddCommand(teamCmd)
}

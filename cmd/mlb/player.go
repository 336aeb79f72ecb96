// ABOUTME: CLI commands for per-player resources.
// ABOUTME: Profile, seasonal statistics, and splits by player ID.
package main

import (
	"github.com/spf13/cobra"
)

var (
	playerStatsYear  int
	playerSplitsYear int
	playerSplitType  string
)

var playerCmd = &cobra.Command{
	Use:   "player",
	Short: "Per-player data by player ID",
	Long: `Fetch data for a single MLB player.

Player IDs come from roster or profile output.

EXAMPLES:

  mlb player profile a1b2c3d4-...
  mlb player stats a1b2c3d4-... --year 2023
  mlb player splits a1b2c3d4-...`,
}

var playerProfileCmd = &cobra.Command{
	Use:   "profile <player-id>",
	Short: "Player profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := api.PlayerProfile(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printResult("", body)
	},
}

var playerStatsCmd = &cobra.Command{
	Use:   "stats <player-id>",
	Short: "Player seasonal statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := api.PlayerSeasonalStats(cmd.Context(), args[0], playerStatsYear)
		if err != nil {
			return err
		}
		return printResult("", body)
	},
}

var playerSplitsCmd = &cobra.Command{
	Use:   "splits <player-id>",
	Short: "Player seasonal splits",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := api.SeasonalSplits(cmd.Context(), args[0], playerSplitsYear, playerSplitType)
		if err != nil {
			return err
		}
		return printResult("", body)
	},
}

func init() {
	playerStatsCmd.Flags().IntVarP(&playerStatsYear, "year", "y", 0, "season year (default current year)")
	playerSplitsCmd.Flags().IntVarP(&playerSplitsYear, "year", "y", 0, "season year (default current year)")
	playerSplitsCmd.Flags().StringVar(&playerSplitType, "type", "", "split type (default home_away)")
	playerCmd.AddCommand(playerProfileCmd)
	playerCmd.AddCommand(playerStatsCmd)
	playerCmd.AddCommand(playerSplitsCmd)
	rootCmd.AddCommand(playerCmd)
}

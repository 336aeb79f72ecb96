// ABOUTME: CLI commands for per-game resources.
// ABOUTME: Summary, boxscore, play-by-play, and pitch metrics by game ID.
package main

import (
	"github.com/spf13/cobra"
)

var gameCmd = &cobra.Command{
	Use:   "game",
	Short: "Per-game data by game ID",
	Long: `Fetch data for a single MLB game.

Game IDs come from the daily schedule output.

EXAMPLES:

  mlb game summary 660001
  mlb game boxscore 660001
  mlb game pbp 660001
  mlb game pitches 660001`,
}

var gameSummaryCmd = &cobra.Command{
	Use:   "summary <game-id>",
	Short: "Game summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := api.GameSummary(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printResult("", body)
	},
}

var gameBoxscoreCmd = &cobra.Command{
	Use:     "boxscore <game-id>",
	Aliases: []string{"box"},
	Short:   "Game boxscore",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := api.GameBoxscore(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printResult("", body)
	},
}

var gamePBPCmd = &cobra.Command{
	Use:     "pbp <game-id>",
	Aliases: []string{"play-by-play"},
	Short:   "Game play-by-play",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := api.GamePlayByPlay(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printResult("", body)
	},
}

var gamePitchesCmd = &cobra.Command{
	Use:   "pitches <game-id>",
	Short: "Pitch-level metrics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := api.GamePitchMetrics(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printResult("", body)
	},
}

func init() {
	gameCmd.AddCommand(gameSummaryCmd)
	gameCmd.AddCommand(gameBoxscoreCmd)
	gameCmd.AddCommand(gamePBPCmd)
	gameCmd.AddCommand(gamePitchesCmd)
	rootCmd.AddCommand(gameCmd)
}

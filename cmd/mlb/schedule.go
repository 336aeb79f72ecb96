// ABOUTME: CLI command for the daily MLB schedule.
// ABOUTME: Defaults to today when no date is given.
package main

import (
	"github.com/spf13/cobra"
)

var scheduleDate string

var scheduleCmd = &cobra.Command{
	Use:     "schedule",
	Aliases: []string{"sched"},
	Short:   "Show the MLB schedule for a date",
	Long: `Show all MLB games scheduled for a date.

EXAMPLES:

  mlb schedule                      # Today's games
  mlb schedule --date 2024-07-04    # Games on a specific date
  mlb schedule -d 2024-07-04`,
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := api.DailySchedule(cmd.Context(), scheduleDate)
		if err != nil {
			return err
		}
		return printResult("", body)
	},
}

func init() {
	scheduleCmd.Flags().StringVarP(&scheduleDate, "date", "d", "", "date in YYYY-MM-DD format (default today)")
	rootCmd.AddCommand(scheduleCmd)
}

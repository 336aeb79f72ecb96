// ABOUTME: CLI commands for league-wide resources.
// ABOUTME: Leaders, injuries, transactions, draft summaries, and hierarchy.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	leadersYear      int
	leadersCategory  string
	transactionsDate string
)

var leadersCmd = &cobra.Command{
	Use:   "leaders",
	Short: "League statistical leaders",
	Long: `Show MLB statistical leaders for a season.

When --category is hitting or pitching, the output is narrowed to
matching leader groups.

EXAMPLES:

  mlb leaders                       # Hitting leaders, current season
  mlb leaders --category pitching   # Pitching leaders
  mlb leaders --year 2023`,
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := api.LeagueLeaders(cmd.Context(), leadersYear, leadersCategory)
		if err != nil {
			return err
		}
		return printResult("", body)
	},
}

var injuriesCmd = &cobra.Command{
	Use:   "injuries",
	Short: "Current injury report",
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := api.Injuries(cmd.Context())
		if err != nil {
			return err
		}
		return printResult("", body)
	},
}

var transactionsCmd = &cobra.Command{
	Use:   "transactions",
	Short: "League transactions",
	Long: `Show MLB transactions.

Without --date, recent transactions are returned.

EXAMPLES:

  mlb transactions
  mlb transactions --date 2024-05-15`,
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := api.Transactions(cmd.Context(), transactionsDate)
		if err != nil {
			return err
		}
		return printResult("", body)
	},
}

var draftCmd = &cobra.Command{
	Use:   "draft <year>",
	Short: "Draft summary for a year",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		year, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid year %q: expected a four-digit year", args[0])
		}
		body, err := api.DraftSummary(cmd.Context(), year)
		if err != nil {
			return err
		}
		return printResult("", body)
	},
}

var hierarchyCmd = &cobra.Command{
	Use:   "hierarchy",
	Short: "League/division/team tree",
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := api.TeamHierarchy(cmd.Context())
		if err != nil {
			return err
		}
		return printResult("", body)
	},
}

func init() {
	leadersCmd.Flags().IntVarP(&leadersYear, "year", "y", 0, "season year (default current year)")
	leadersCmd.Flags().StringVarP(&leadersCategory, "category", "c", "", "leader category: hitting or pitching (default hitting)")
	transactionsCmd.Flags().StringVarP(&transactionsDate, "date", "d", "", "date in YYYY-MM-DD format (default recent)")
	rootCmd.AddCommand(leadersCmd)
	rootCmd.AddCommand(injuriesCmd)
	rootCmd.AddCommand(transactionsCmd)
	rootCmd.AddCommand(draftCmd)
	rootCmd.AddCommand(hierarchyCmd)
}

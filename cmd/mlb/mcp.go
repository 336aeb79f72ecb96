// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/mlb/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to query MLB data through a
standardized protocol. The server communicates via stdin/stdout and
proxies every tool call to the SportRadar MLB API.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "mlb": {
        "command": "mlb",
        "args": ["mcp"],
        "env": { "SPORTRADAR_API_KEY": "your-key" }
      }
    }
  }

AVAILABLE TOOLS:

  get_daily_schedule         Schedule for a date (default today)
  get_game_summary           Game summary by game ID
  get_game_boxscore          Boxscore by game ID
  get_game_play_by_play      Play-by-play by game ID
  get_game_pitch_metrics     Pitch metrics by game ID
  get_standings              Standings by year, optional AL/NL filter
  get_player_profile         Player profile by player ID
  get_player_seasonal_stats  Player season statistics
  get_seasonal_splits        Player season splits
  get_team_profile           Team profile by team ID
  get_team_roster            Team roster by team ID
  get_seasonal_statistics    Team season statistics
  get_league_leaders         Leaders by year and category
  get_injuries               Current injury report
  get_transactions           Transactions by date or recent
  get_draft_summary          Draft summary by year
  get_team_hierarchy         League/division/team tree

AVAILABLE RESOURCES:

  mlb://hierarchy        League/division/team tree
  mlb://schedule/today   Today's schedule
  mlb://injuries         Current injury report`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(api, logger)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		logger.Info("starting MCP server")
		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

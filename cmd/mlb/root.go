// ABOUTME: Root Cobra command for the mlb CLI.
// ABOUTME: Loads configuration and builds the shared SportRadar client.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/harperreed/mlb/internal/config"
	"github.com/harperreed/mlb/internal/sportradar"
	"github.com/spf13/cobra"
)

var (
	cfg    *config.Config
	logger *log.Logger
	api    *sportradar.Client
)

var rootCmd = &cobra.Command{
	Use:   "mlb",
	Short: "MLB stats from SportRadar",
	Long: `mlb is a CLI for the SportRadar MLB API, with an MCP server built in.

WHAT IT COVERS:

  Games      daily schedule, summaries, boxscores, play-by-play, pitch metrics
  Teams      profiles, rosters, seasonal statistics, league hierarchy
  Players    profiles, seasonal statistics, splits
  League     standings, leaders, injuries, transactions, draft summaries

QUICK START:

  $ export SPORTRADAR_API_KEY=your-key
  $ mlb schedule                        # Today's games
  $ mlb standings --league AL           # American League standings
  $ mlb game boxscore 660001            # Boxscore for a game
  $ mlb team roster 575c19b7-...        # Team roster
  $ mlb leaders --category pitching     # Pitching leaders

MCP INTEGRATION:

  Run 'mlb mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants. Add to your Claude
  config:

  {
    "mcpServers": {
      "mlb": { "command": "mlb", "args": ["mcp"] }
    }
  }

CONFIGURATION:

  SPORTRADAR_API_KEY   required, also read from a local .env file
  SPORTRADAR_BASE_URL  override the API root (default: trial v8)
  SPORTRADAR_TIMEOUT   per-request timeout (default: 30s)
  MLB_LOG_LEVEL        debug, info, warn, or error (default: debug)`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Commands that don't reach the API skip config entirely.
		if cmd.Name() == "help" || cmd.Name() == "version" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger = newLogger(cfg)
		api = sportradar.NewClient(sportradar.Config{
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Timeout: cfg.Timeout,
			Logger:  logger,
		})
		return nil
	},
}

func newLogger(cfg *config.Config) *log.Logger {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "mlb",
	})
}

// ABOUTME: MCP tool implementations for the SportRadar MLB API.
// ABOUTME: One tool per upstream resource; handlers defer to the API client.

package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_daily_schedule",
		Description: "Get the MLB schedule for a specific date (YYYY-MM-DD) or today if not specified",
	}, s.handleDailySchedule)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_game_summary",
		Description: "Get summary information for a specific MLB game",
	}, s.handleGameSummary)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_game_boxscore",
		Description: "Get the detailed boxscore for a specific MLB game",
	}, s.handleGameBoxscore)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_game_play_by_play",
		Description: "Get detailed play-by-play data for a specific MLB game",
	}, s.handleGamePlayByPlay)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_game_pitch_metrics",
		Description: "Get pitch-level metrics and Statcast data for a specific MLB game",
	}, s.handleGamePitchMetrics)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_standings",
		Description: "Get MLB standings for a year, optionally narrowed to the AL or NL",
	}, s.handleStandings)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_player_profile",
		Description: "Get detailed profile information for a specific MLB player",
	}, s.handlePlayerProfile)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_player_seasonal_stats",
		Description: "Get seasonal statistics for a specific player",
	}, s.handlePlayerSeasonalStats)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_seasonal_splits",
		Description: "Get seasonal splits for a player (home/away, vs lefty/righty, etc.)",
	}, s.handleSeasonalSplits)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_team_profile",
		Description: "Get detailed profile information for a specific MLB team",
	}, s.handleTeamProfile)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_team_roster",
		Description: "Get the current roster for a specific MLB team",
	}, s.handleTeamRoster)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_seasonal_statistics",
		Description: "Get seasonal statistics for a specific team",
	}, s.handleSeasonalStatistics)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_league_leaders",
		Description: "Get MLB league leaders for a year and category (hitting/pitching)",
	}, s.handleLeagueLeaders)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_injuries",
		Description: "Get the current MLB injury report",
	}, s.handleInjuries)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_transactions",
		Description: "Get MLB transactions for a specific date or recent transactions",
	}, s.handleTransactions)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_draft_summary",
		Description: "Get the MLB draft summary for a specific year",
	}, s.handleDraftSummary)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_team_hierarchy",
		Description: "Get the complete MLB team hierarchy with divisions and leagues",
	}, s.handleTeamHierarchy)
}

// Tool input types

type dailyScheduleInput struct {
	Date string `json:"date,omitempty" jsonschema:"Date in YYYY-MM-DD format; defaults to today"`
}

type gameInput struct {
	GameID string `json:"game_id" jsonschema:"SportRadar game ID"`
}

type standingsInput struct {
	Year   int    `json:"year,omitempty" jsonschema:"Season year; defaults to the current year"`
	League string `json:"league,omitempty" jsonschema:"League filter (AL or NL); omit for both"`
}

type playerInput struct {
	PlayerID string `json:"player_id" jsonschema:"SportRadar player ID"`
}

type playerSeasonInput struct {
	PlayerID string `json:"player_id" jsonschema:"SportRadar player ID"`
	Year     int    `json:"year,omitempty" jsonschema:"Season year; defaults to the current year"`
}

type seasonalSplitsInput struct {
	PlayerID  string `json:"player_id" jsonschema:"SportRadar player ID"`
	Year      int    `json:"year,omitempty" jsonschema:"Season year; defaults to the current year"`
	SplitType string `json:"split_type,omitempty" jsonschema:"Split type (informational; defaults to home_away)"`
}

type teamInput struct {
	TeamID string `json:"team_id" jsonschema:"SportRadar team ID"`
}

type teamSeasonInput struct {
	TeamID     string `json:"team_id" jsonschema:"SportRadar team ID"`
	Year       int    `json:"year,omitempty" jsonschema:"Season year; defaults to the current year"`
	SeasonType string `json:"season_type,omitempty" jsonschema:"Season type (REG, PST); defaults to REG"`
}

type leagueLeadersInput struct {
	Year     int    `json:"year,omitempty" jsonschema:"Season year; defaults to the current year"`
	Category string `json:"category,omitempty" jsonschema:"Leader category (hitting or pitching); defaults to hitting"`
}

type transactionsInput struct {
	Date string `json:"date,omitempty" jsonschema:"Date in YYYY-MM-DD format; omit for recent transactions"`
}

type draftSummaryInput struct {
	Year int `json:"year" jsonschema:"Draft year"`
}

type emptyInput struct{}

// Tool handlers

func (s *Server) handleDailySchedule(ctx context.Context, req *mcp.CallToolRequest, input dailyScheduleInput) (*mcp.CallToolResult, any, error) {
	body, err := s.api.DailySchedule(ctx, input.Date)
	if err != nil {
		return nil, nil, err
	}
	return nil, body, nil
}

func (s *Server) handleGameSummary(ctx context.Context, req *mcp.CallToolRequest, input gameInput) (*mcp.CallToolResult, any, error) {
	body, err := s.api.GameSummary(ctx, input.GameID)
	if err != nil {
		return nil, nil, err
	}
	return nil, body, nil
}

func (s *Server) handleGameBoxscore(ctx context.Context, req *mcp.CallToolRequest, input gameInput) (*mcp.CallToolResult, any, error) {
	body, err := s.api.GameBoxscore(ctx, input.GameID)
	if err != nil {
		return nil, nil, err
	}
	return nil, body, nil
}

func (s *Server) handleGamePlayByPlay(ctx context.Context, req *mcp.CallToolRequest, input gameInput) (*mcp.CallToolResult, any, error) {
	body, err := s.api.GamePlayByPlay(ctx, input.GameID)
	if err != nil {
		return nil, nil, err
	}
	return nil, body, nil
}

func (s *Server) handleGamePitchMetrics(ctx context.Context, req *mcp.CallToolRequest, input gameInput) (*mcp.CallToolResult, any, error) {
	body, err := s.api.GamePitchMetrics(ctx, input.GameID)
	if err != nil {
		return nil, nil, err
	}
	return nil, body, nil
}

func (s *Server) handleStandings(ctx context.Context, req *mcp.CallToolRequest, input standingsInput) (*mcp.CallToolResult, any, error) {
	body, err := s.api.Standings(ctx, input.Year, input.League)
	if err != nil {
		return nil, nil, err
	}
	return nil, body, nil
}

func (s *Server) handlePlayerProfile(ctx context.Context, req *mcp.CallToolRequest, input playerInput) (*mcp.CallToolResult, any, error) {
	body, err := s.api.PlayerProfile(ctx, input.PlayerID)
	if err != nil {
		return nil, nil, err
	}
	return nil, body, nil
}

func (s *Server) handlePlayerSeasonalStats(ctx context.Context, req *mcp.CallToolRequest, input playerSeasonInput) (*mcp.CallToolResult, any, error) {
	body, err := s.api.PlayerSeasonalStats(ctx, input.PlayerID, input.Year)
	if err != nil {
		return nil, nil, err
	}
	return nil, body, nil
}

func (s *Server) handleSeasonalSplits(ctx context.Context, req *mcp.CallToolRequest, input seasonalSplitsInput) (*mcp.CallToolResult, any, error) {
	body, err := s.api.SeasonalSplits(ctx, input.PlayerID, input.Year, input.SplitType)
	if err != nil {
		return nil, nil, err
	}
	return nil, body, nil
}

func (s *Server) handleTeamProfile(ctx context.Context, req *mcp.CallToolRequest, input teamInput) (*mcp.CallToolResult, any, error) {
	body, err := s.api.TeamProfile(ctx, input.TeamID)
	if err != nil {
		return nil, nil, err
	}
	return nil, body, nil
}

func (s *Server) handleTeamRoster(ctx context.Context, req *mcp.CallToolRequest, input teamInput) (*mcp.CallToolResult, any, error) {
	body, err := s.api.TeamRoster(ctx, input.TeamID)
	if err != nil {
		return nil, nil, err
	}
	return nil, body, nil
}

func (s *Server) handleSeasonalStatistics(ctx context.Context, req *mcp.CallToolRequest, input teamSeasonInput) (*mcp.CallToolResult, any, error) {
	body, err := s.api.TeamSeasonalStats(ctx, input.TeamID, input.Year, input.SeasonType)
	if err != nil {
		return nil, nil, err
	}
	return nil, body, nil
}

func (s *Server) handleLeagueLeaders(ctx context.Context, req *mcp.CallToolRequest, input leagueLeadersInput) (*mcp.CallToolResult, any, error) {
	body, err := s.api.LeagueLeaders(ctx, input.Year, input.Category)
	if err != nil {
		return nil, nil, err
	}
	return nil, body, nil
}

func (s *Server) handleInjuries(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	body, err := s.api.Injuries(ctx)
	if err != nil {
		return nil, nil, err
	}
	return nil, body, nil
}

func (s *Server) handleTransactions(ctx context.Context, req *mcp.CallToolRequest, input transactionsInput) (*mcp.CallToolResult, any, error) {
	body, err := s.api.Transactions(ctx, input.Date)
	if err != nil {
		return nil, nil, err
	}
	return nil, body, nil
}

func (s *Server) handleDraftSummary(ctx context.Context, req *mcp.CallToolRequest, input draftSummaryInput) (*mcp.CallToolResult, any, error) {
	body, err := s.api.DraftSummary(ctx, input.Year)
	if err != nil {
		return nil, nil, err
	}
	return nil, body, nil
}

func (s *Server) handleTeamHierarchy(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	body, err := s.api.TeamHierarchy(ctx)
	if err != nil {
		return nil, nil, err
	}
	return nil, body, nil
}

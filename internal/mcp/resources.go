// ABOUTME: MCP resource implementations for common MLB lookups.
// ABOUTME: Provides mlb://hierarchy, mlb://schedule/today, and mlb://injuries.

package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// mlb://hierarchy - league/division/team tree
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "mlb://hierarchy",
		Name:        "MLB Team Hierarchy",
		Description: "Complete MLB team hierarchy with leagues and divisions",
		MIMEType:    "application/json",
	}, s.handleHierarchyResource)

	// mlb://schedule/today - today's games
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "mlb://schedule/today",
		Name:        "Today's MLB Schedule",
		Description: "All MLB games scheduled for today",
		MIMEType:    "application/json",
	}, s.handleTodayScheduleResource)

	// mlb://injuries - current injury report
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "mlb://injuries",
		Name:        "MLB Injury Report",
		Description: "Current league-wide injury report",
		MIMEType:    "application/json",
	}, s.handleInjuriesResource)
}

// Resource handlers

func (s *Server) handleHierarchyResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	body, err := s.api.TeamHierarchy(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch team hierarchy: %w", err)
	}
	return jsonResource("mlb://hierarchy", body)
}

func (s *Server) handleTodayScheduleResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	body, err := s.api.DailySchedule(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch today's schedule: %w", err)
	}
	return jsonResource("mlb://schedule/today", body)
}

func (s *Server) handleInjuriesResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	body, err := s.api.Injuries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch injury report: %w", err)
	}
	return jsonResource("mlb://injuries", body)
}

func jsonResource(uri string, body map[string]any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(body, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

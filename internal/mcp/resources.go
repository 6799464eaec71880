// ABOUTME: MCP resource implementations for daylog.
// ABOUTME: Exposes today's timeline, the weekly report, and progress.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harperreed/daylog/internal/dates"
	"github.com/harperreed/daylog/internal/gamify"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// daylog://report/today - today's entry timeline
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "daylog://report/today",
		Name:        "Today's Timeline",
		Description: "All condition and activity entries logged today",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// daylog://report/week - the 7-day aggregation ending today
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "daylog://report/week",
		Name:        "Weekly Report",
		Description: "Aggregated condition and activity data for the last 7 days",
		MIMEType:    "application/json",
	}, s.handleWeekResource)

	// daylog://progress - current gamification state
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "daylog://progress",
		Name:        "Progress Summary",
		Description: "Points, level, streaks, and earned badges",
		MIMEType:    "application/json",
	}, s.handleProgressResource)
}

// Resource handlers

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	r, err := s.tracker.DailyReport(dates.Today())
	if err != nil {
		return nil, fmt.Errorf("failed to build report: %w", err)
	}
	return jsonResource("daylog://report/today", r)
}

func (s *Server) handleWeekResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	r, err := s.tracker.WeeklyReport(dates.Today())
	if err != nil {
		return nil, fmt.Errorf("failed to build report: %w", err)
	}
	return jsonResource("daylog://report/week", r)
}

func (s *Server) handleProgressResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	p, err := s.tracker.Progress()
	if err != nil {
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}

	result := map[string]interface{}{
		"progress":       p,
		"level":          gamify.LevelForPoints(p.TotalPoints),
		"level_progress": gamify.ProgressToNextLevel(p.TotalPoints),
	}
	return jsonResource("daylog://progress", result)
}

func jsonResource(uri string, v interface{}) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
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

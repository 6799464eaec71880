// ABOUTME: MCP tool implementations for daylog.
// ABOUTME: Covers logging, listing, deleting, progress, and reports.
package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/harperreed/daylog/internal/dates"
	"github.com/harperreed/daylog/internal/gamify"
	"github.com/harperreed/daylog/internal/models"
	"github.com/harperreed/daylog/internal/tracker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// log_condition
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_condition",
		Description: "Save a condition entry for today (overall score, mood, symptoms)",
	}, s.handleLogCondition)

	// log_activity
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_activity",
		Description: "Save an activity entry for today (walking minutes, distance)",
	}, s.handleLogActivity)

	// list_records
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_records",
		Description: "List recent condition or activity entries",
	}, s.handleListRecords)

	// delete_record
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_record",
		Description: "Delete an entry by ID or ID prefix",
	}, s.handleDeleteRecord)

	// get_progress
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_progress",
		Description: "Get points, level, streaks, and earned badges",
	}, s.handleGetProgress)

	// daily_report
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "daily_report",
		Description: "Get the entry timeline for one date (default today)",
	}, s.handleDailyReport)

	// weekly_report
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "weekly_report",
		Description: "Get the 7-day aggregated report ending today",
	}, s.handleWeeklyReport)
}

// Tool input/output types

type logConditionInput struct {
	Overall   int    `json:"overall" jsonschema:"description=Overall condition score 1-5,required"`
	Mood      int    `json:"mood,omitempty" jsonschema:"description=Mood score 1-5 (default 3)"`
	Symptoms  string `json:"symptoms,omitempty" jsonschema:"description=Comma-separated symptoms (dumping_syndrome, pain, fatigue, indigestion, nausea, appetite_loss) or 'none'"`
	MealCount int    `json:"meal_count,omitempty" jsonschema:"description=Number of meals eaten"`
	Note      string `json:"note,omitempty" jsonschema:"description=Optional note"`
}

type logActivityInput struct {
	WalkingMinutes int    `json:"walking_minutes" jsonschema:"description=Minutes walked today,required"`
	DistanceMeters int    `json:"distance_meters,omitempty" jsonschema:"description=Distance walked in meters"`
	Note           string `json:"note,omitempty" jsonschema:"description=Optional note"`
}

type saveOutput struct {
	ID          string   `json:"id"`
	Date        string   `json:"date"`
	PointsAdded int      `json:"points_added"`
	NewBadges   []string `json:"new_badges,omitempty"`
	LeveledUp   bool     `json:"leveled_up"`
	Message     string   `json:"message"`
}

type listRecordsInput struct {
	Kind  string `json:"kind" jsonschema:"description=Entry kind: condition or activity,required"`
	Limit int    `json:"limit,omitempty" jsonschema:"description=Max results (default 20)"`
}

type deleteRecordInput struct {
	ID string `json:"id" jsonschema:"description=Entry ID or prefix,required"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type dailyReportInput struct {
	Date string `json:"date,omitempty" jsonschema:"description=Date (YYYY-MM-DD), defaults to today"`
}

// Tool handlers

func (s *Server) handleLogCondition(ctx context.Context, req *mcp.CallToolRequest, input logConditionInput) (*mcp.CallToolResult, saveOutput, error) {
	mood := input.Mood
	if mood == 0 {
		mood = 3
	}

	var symptoms models.Symptoms
	if input.Symptoms == "none" {
		symptoms.SetNoSymptom()
	} else if input.Symptoms != "" {
		for _, part := range strings.Split(input.Symptoms, ",") {
			name, err := models.ParseSymptom(strings.TrimSpace(part))
			if err != nil {
				return nil, saveOutput{}, err
			}
			symptoms.Set(name)
		}
	}

	rec, result, err := s.tracker.SaveCondition(tracker.ConditionInput{
		Overall:   input.Overall,
		Mood:      mood,
		MealCount: input.MealCount,
		Symptoms:  symptoms,
		Note:      input.Note,
	})
	if err != nil {
		return nil, saveOutput{}, fmt.Errorf("failed to save condition: %w", err)
	}

	return nil, buildSaveOutput(rec.ID.String(), rec.Date, result), nil
}

func (s *Server) handleLogActivity(ctx context.Context, req *mcp.CallToolRequest, input logActivityInput) (*mcp.CallToolResult, saveOutput, error) {
	in := tracker.ActivityInput{
		WalkingMinutes: input.WalkingMinutes,
		Note:           input.Note,
	}
	if input.DistanceMeters > 0 {
		in.DistanceMeters = &input.DistanceMeters
	}

	rec, result, err := s.tracker.SaveActivity(in)
	if err != nil {
		return nil, saveOutput{}, fmt.Errorf("failed to save activity: %w", err)
	}

	return nil, buildSaveOutput(rec.ID.String(), rec.Date, result), nil
}

func buildSaveOutput(id, date string, result *gamify.Result) saveOutput {
	out := saveOutput{ID: id[:8], Date: date}
	if result == nil {
		out.Message = fmt.Sprintf("Saved entry %s (already logged today, no points added)", out.ID)
		return out
	}
	out.PointsAdded = result.PointsAdded
	out.NewBadges = result.NewBadges
	out.LeveledUp = result.LeveledUp
	out.Message = fmt.Sprintf("Saved entry %s, +%d points", out.ID, result.PointsAdded)
	return out
}

func (s *Server) handleListRecords(ctx context.Context, req *mcp.CallToolRequest, input listRecordsInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	switch input.Kind {
	case "condition":
		records, err := s.repo.ListConditions(input.Limit)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to list conditions: %w", err)
		}
		if len(records) == 0 {
			return nil, map[string]interface{}{"message": "No entries found."}, nil
		}
		return nil, records, nil
	case "activity":
		records, err := s.repo.ListActivities(input.Limit)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to list activities: %w", err)
		}
		if len(records) == 0 {
			return nil, map[string]interface{}{"message": "No entries found."}, nil
		}
		return nil, records, nil
	default:
		return nil, nil, fmt.Errorf("unknown kind: %s (want condition or activity)", input.Kind)
	}
}

func (s *Server) handleDeleteRecord(ctx context.Context, req *mcp.CallToolRequest, input deleteRecordInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.repo.DeleteCondition(input.ID); err == nil {
		return nil, simpleOutput{Message: fmt.Sprintf("Deleted condition entry: %s", input.ID)}, nil
	}
	if err := s.repo.DeleteActivity(input.ID); err == nil {
		return nil, simpleOutput{Message: fmt.Sprintf("Deleted activity entry: %s", input.ID)}, nil
	}
	return nil, simpleOutput{}, fmt.Errorf("entry not found: %s", input.ID)
}

func (s *Server) handleGetProgress(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	p, err := s.tracker.Progress()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load progress: %w", err)
	}

	level := gamify.LevelForPoints(p.TotalPoints)
	return nil, map[string]interface{}{
		"progress":       p,
		"level":          level,
		"level_progress": gamify.ProgressToNextLevel(p.TotalPoints),
	}, nil
}

func (s *Server) handleDailyReport(ctx context.Context, req *mcp.CallToolRequest, input dailyReportInput) (*mcp.CallToolResult, any, error) {
	date := input.Date
	if date == "" {
		date = dates.Today()
	} else if _, err := dates.Parse(date); err != nil {
		return nil, nil, err
	}

	r, err := s.tracker.DailyReport(date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build report: %w", err)
	}
	return nil, r, nil
}

func (s *Server) handleWeeklyReport(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	r, err := s.tracker.WeeklyReport(dates.Today())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build report: %w", err)
	}
	return nil, r, nil
}

// ABOUTME: CLI command for listing condition and activity entries.
// ABOUTME: Supports filtering by kind and limiting results.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/daylog/internal/models"
	"github.com/spf13/cobra"
)

var (
	listKind  string
	listLimit int
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List recent entries",
	Long: `List recent condition and activity entries.

OUTPUT FORMAT:

  Each line shows: ID  DATE  TIME  SUMMARY

  The ID is an 8-character prefix you can use with edit and delete.

FILTERING:

  Use --kind to show only one kind of entry: condition or activity.

EXAMPLES:

  daylog list
  daylog list --kind condition
  daylog list --kind activity --limit 5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		showConditions := listKind == "" || listKind == "condition"
		showActivities := listKind == "" || listKind == "activity"
		if !showConditions && !showActivities {
			return fmt.Errorf("unknown kind: %s (want condition or activity)", listKind)
		}

		if showConditions {
			records, err := repo.ListConditions(listLimit)
			if err != nil {
				return fmt.Errorf("failed to list conditions: %w", err)
			}
			color.New(color.Bold).Println("CONDITION")
			if len(records) == 0 {
				fmt.Println("  no entries yet")
			}
			for _, rec := range records {
				fmt.Printf("  %s  %s %s  %s\n",
					color.New(color.Faint).Sprint(rec.ID.String()[:8]),
					rec.Date,
					time.UnixMilli(rec.Timestamp).Format("15:04"),
					conditionSummary(rec))
			}
		}

		if showActivities {
			records, err := repo.ListActivities(listLimit)
			if err != nil {
				return fmt.Errorf("failed to list activities: %w", err)
			}
			color.New(color.Bold).Println("ACTIVITY")
			if len(records) == 0 {
				fmt.Println("  no entries yet")
			}
			for _, rec := range records {
				fmt.Printf("  %s  %s %s  %s\n",
					color.New(color.Faint).Sprint(rec.ID.String()[:8]),
					rec.Date,
					time.UnixMilli(rec.Timestamp).Format("15:04"),
					activitySummary(rec))
			}
		}

		return nil
	},
}

func conditionSummary(rec *models.ConditionRecord) string {
	parts := []string{
		fmt.Sprintf("condition %d/5", rec.OverallCondition),
		fmt.Sprintf("mood %d/5", rec.Mood),
	}
	var symptoms []string
	for _, name := range models.SymptomCatalog {
		if rec.Symptoms.Has(name) {
			symptoms = append(symptoms, models.SymptomLabels[name])
		}
	}
	if rec.Symptoms.NoSymptom {
		parts = append(parts, "no symptoms")
	} else if len(symptoms) > 0 {
		parts = append(parts, strings.Join(symptoms, ", "))
	}
	if rec.Note != nil {
		parts = append(parts, fmt.Sprintf("(%s)", *rec.Note))
	}
	return strings.Join(parts, "  ")
}

func activitySummary(rec *models.ActivityRecord) string {
	parts := []string{fmt.Sprintf("%d min walking", rec.Walking.DurationMinutes)}
	if rec.Walking.DistanceMeters != nil {
		parts = append(parts, fmt.Sprintf("%dm", *rec.Walking.DistanceMeters))
	}
	if len(rec.OtherActivities) > 0 {
		parts = append(parts, strings.Join(rec.OtherActivities, ", "))
	}
	if rec.Note != nil {
		parts = append(parts, fmt.Sprintf("(%s)", *rec.Note))
	}
	return strings.Join(parts, "  ")
}

func init() {
	listCmd.Flags().StringVar(&listKind, "kind", "", "filter by kind: condition or activity")
	listCmd.Flags().IntVar(&listLimit, "limit", 20, "maximum entries per kind")
	rootCmd.AddCommand(listCmd)
}

// ABOUTME: CLI command for daily and weekly reports.
// ABOUTME: Weekly view shows per-day values, averages, and top symptoms.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/daylog/internal/dates"
	"github.com/harperreed/daylog/internal/models"
	"github.com/spf13/cobra"
)

var (
	reportWeek bool
	reportDate string
)

var reportCmd = &cobra.Command{
	Use:     "report",
	Aliases: []string{"r"},
	Short:   "Show a daily or weekly report",
	Long: `Show a report built from your saved entries.

The default view is today's timeline: every condition and activity entry
for the date, in the order you logged them.

The weekly view covers the 7 days ending today: per-day condition averages,
per-day walking totals, the week's average condition, total walking minutes,
and your three most frequent symptoms.

EXAMPLES:

  daylog report
  daylog report --date 2026-08-30
  daylog report --week`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if reportWeek {
			return runWeeklyReport()
		}

		date := reportDate
		if date == "" {
			date = dates.Today()
		} else if _, err := dates.Parse(date); err != nil {
			return err
		}
		return runDailyReport(date)
	},
}

func runDailyReport(date string) error {
	r, err := app.DailyReport(date)
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}

	color.New(color.Bold).Printf("Report for %s (%s)\n", r.Date, dates.Weekday(r.Date))
	if !r.HasData {
		fmt.Println("  no entries for this date")
		return nil
	}

	for _, rec := range r.Conditions {
		fmt.Printf("  %s  %s\n",
			time.UnixMilli(rec.Timestamp).Format("15:04"),
			conditionSummary(rec))
	}
	for _, rec := range r.Activities {
		fmt.Printf("  %s  %s\n",
			time.UnixMilli(rec.Timestamp).Format("15:04"),
			activitySummary(rec))
	}
	return nil
}

func runWeeklyReport() error {
	r, err := app.WeeklyReport(dates.Today())
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}

	color.New(color.Bold).Printf("Week %s to %s\n\n", r.StartDate, r.EndDate)

	fmt.Println("CONDITION")
	for _, day := range r.ConditionData {
		if day.Recorded {
			fmt.Printf("  %s %s  %.1f %s\n", day.DayLabel, day.Date, day.Value, bar(day.Value, 5))
		} else {
			fmt.Printf("  %s %s  %s\n", day.DayLabel, day.Date,
				color.New(color.Faint).Sprint("no data"))
		}
	}
	if r.HasCondition {
		fmt.Printf("  average %.1f over %d recorded day(s)\n\n", r.AverageCondition, r.RecordedDays)
	} else {
		fmt.Print("  no condition entries this week\n\n")
	}

	fmt.Println("ACTIVITY")
	for _, day := range r.ActivityData {
		fmt.Printf("  %s %s  %3d min\n", day.DayLabel, day.Date, day.Minutes)
	}
	fmt.Printf("  total %d minutes walking\n", r.TotalActivityMinutes)

	if len(r.SymptomCounts) > 0 {
		fmt.Println()
		fmt.Println("TOP SYMPTOMS")
		for _, sc := range r.SymptomCounts {
			fmt.Printf("  %dx %s\n", sc.Count, models.SymptomLabels[sc.Symptom])
		}
	}
	return nil
}

// bar renders a small proportional bar for a value in [0, max].
func bar(value, max float64) string {
	n := int(value / max * 10)
	if n < 0 {
		n = 0
	}
	if n > 10 {
		n = 10
	}
	return strings.Repeat("█", n)
}

func init() {
	reportCmd.Flags().BoolVar(&reportWeek, "week", false, "show the 7-day report ending today")
	reportCmd.Flags().StringVar(&reportDate, "date", "", "daily report date (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(reportCmd)
}

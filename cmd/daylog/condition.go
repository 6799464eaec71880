// ABOUTME: CLI command for logging a daily condition entry.
// ABOUTME: First entry of the day earns points via the gamify engine.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/daylog/internal/models"
	"github.com/harperreed/daylog/internal/tracker"
	"github.com/spf13/cobra"
)

var (
	conditionMood     int
	conditionMeals    int
	conditionSymptoms string
	conditionNote     string
)

var conditionCmd = &cobra.Command{
	Use:     "condition <score>",
	Aliases: []string{"c", "cond"},
	Short:   "Log how you feel today",
	Long: `Log a condition entry for today: overall score, mood, symptoms, meals.

Scores run from 1 (very bad) to 5 (very good). Symptoms are a comma-separated
list from:

  dumping_syndrome, pain, fatigue, indigestion, nausea, appetite_loss

or "none" for an explicitly symptom-free day.

The first condition entry of each day earns points and extends your streak.
Logging again on the same day saves another entry but awards nothing more.

EXAMPLES:

  daylog condition 4
  daylog condition 3 --mood 2 --symptoms pain,fatigue
  daylog condition 5 --symptoms none --meals 3 --note "great day"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		overall, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid score: %s", args[0])
		}

		symptoms, err := parseSymptomFlags(conditionSymptoms)
		if err != nil {
			return err
		}

		rec, result, err := app.SaveCondition(tracker.ConditionInput{
			Overall:   overall,
			Mood:      conditionMood,
			MealCount: conditionMeals,
			Symptoms:  symptoms,
			Note:      conditionNote,
		})
		if err != nil {
			return fmt.Errorf("failed to save condition: %w", err)
		}

		color.Green("✓ Logged condition: %s", models.ConditionLabels[rec.OverallCondition])
		fmt.Printf("  %s %s\n",
			color.New(color.Faint).Sprint(rec.ID.String()[:8]), rec.Date)

		celebrate(result)
		return nil
	},
}

// parseSymptomFlags parses the --symptoms value into normalized flags.
func parseSymptomFlags(raw string) (models.Symptoms, error) {
	var s models.Symptoms
	if raw == "" {
		return s, nil
	}
	if raw == "none" {
		s.SetNoSymptom()
		return s, nil
	}
	for _, part := range strings.Split(raw, ",") {
		name, err := models.ParseSymptom(strings.TrimSpace(part))
		if err != nil {
			return s, err
		}
		s.Set(name)
	}
	return s, nil
}

func init() {
	conditionCmd.Flags().IntVar(&conditionMood, "mood", 3, "mood score 1-5")
	conditionCmd.Flags().IntVar(&conditionMeals, "meals", 0, "number of meals eaten")
	conditionCmd.Flags().StringVar(&conditionSymptoms, "symptoms", "", "comma-separated symptoms, or 'none'")
	conditionCmd.Flags().StringVar(&conditionNote, "note", "", "free-text note")
	rootCmd.AddCommand(conditionCmd)
}

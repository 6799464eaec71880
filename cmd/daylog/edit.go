// ABOUTME: CLI command for editing existing entries by ID prefix.
// ABOUTME: Edits refresh the entry timestamp and never touch progress.
package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/daylog/internal/storage"
	"github.com/spf13/cobra"
)

var (
	editScore    int
	editMood     int
	editMeals    int
	editSymptoms string
	editMinutes  int
	editDistance int
	editNote     string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an entry",
	Long: `Edit a condition or activity entry by its ID or ID prefix.

Only the flags you pass are changed; everything else keeps its saved value.
The entry's timestamp is refreshed on edit. Progress is never recalculated:
points, streaks, and badges already earned stay as they are.

EXAMPLES:

  daylog edit abc12345 --score 2 --symptoms pain
  daylog edit abc12345 --minutes 50 --note "longer walk than planned"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		idOrPrefix := args[0]

		if rec, err := repo.GetCondition(idOrPrefix); err == nil {
			if cmd.Flags().Changed("score") {
				rec.OverallCondition = editScore
			}
			if cmd.Flags().Changed("mood") {
				rec.Mood = editMood
			}
			if cmd.Flags().Changed("meals") {
				rec.MealCount = editMeals
			}
			if cmd.Flags().Changed("symptoms") {
				symptoms, err := parseSymptomFlags(editSymptoms)
				if err != nil {
					return err
				}
				rec.Symptoms = symptoms
			}
			if cmd.Flags().Changed("note") {
				rec.WithNote(editNote)
			}
			if err := rec.Validate(); err != nil {
				return err
			}
			if err := repo.UpdateCondition(rec); err != nil {
				return fmt.Errorf("failed to update entry: %w", err)
			}
			color.Green("✓ Updated condition entry")
			fmt.Printf("  %s %s\n",
				color.New(color.Faint).Sprint(rec.ID.String()[:8]), rec.Date)
			return nil
		} else if errors.Is(err, storage.ErrAmbiguous) {
			return fmt.Errorf("ambiguous id prefix: %s", idOrPrefix)
		}

		if rec, err := repo.GetActivity(idOrPrefix); err == nil {
			if cmd.Flags().Changed("minutes") {
				rec.Walking.DurationMinutes = editMinutes
			}
			if cmd.Flags().Changed("distance") {
				rec.WithDistance(editDistance)
			}
			if cmd.Flags().Changed("note") {
				rec.WithNote(editNote)
			}
			if err := rec.Validate(); err != nil {
				return err
			}
			if err := repo.UpdateActivity(rec); err != nil {
				return fmt.Errorf("failed to update entry: %w", err)
			}
			color.Green("✓ Updated activity entry")
			fmt.Printf("  %s %s\n",
				color.New(color.Faint).Sprint(rec.ID.String()[:8]), rec.Date)
			return nil
		} else if errors.Is(err, storage.ErrAmbiguous) {
			return fmt.Errorf("ambiguous id prefix: %s", idOrPrefix)
		}

		return fmt.Errorf("entry not found: %s", idOrPrefix)
	},
}

func init() {
	editCmd.Flags().IntVar(&editScore, "score", 0, "overall condition score 1-5")
	editCmd.Flags().IntVar(&editMood, "mood", 0, "mood score 1-5")
	editCmd.Flags().IntVar(&editMeals, "meals", 0, "number of meals eaten")
	editCmd.Flags().StringVar(&editSymptoms, "symptoms", "", "comma-separated symptoms, or 'none'")
	editCmd.Flags().IntVar(&editMinutes, "minutes", 0, "walking minutes")
	editCmd.Flags().IntVar(&editDistance, "distance", 0, "walking distance in meters")
	editCmd.Flags().StringVar(&editNote, "note", "", "free-text note")
	rootCmd.AddCommand(editCmd)
}

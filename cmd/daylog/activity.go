// ABOUTME: CLI command for logging a daily activity entry.
// ABOUTME: Walking 30+ minutes earns a bonus on the first entry of the day.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/daylog/internal/tracker"
	"github.com/spf13/cobra"
)

var (
	activityDistance int
	activityOther    string
	activityNote     string
)

var activityCmd = &cobra.Command{
	Use:     "activity <walking-minutes>",
	Aliases: []string{"a", "act"},
	Short:   "Log today's activity",
	Long: `Log an activity entry for today: walking minutes plus optional extras.

Walking 30 minutes or more earns a bonus. Other activities are a
comma-separated list from:

  walking, stretching, housework, gardening

The first activity entry of each day earns points and extends your streak.
Logging again on the same day saves another entry but awards nothing more.

EXAMPLES:

  daylog activity 40
  daylog activity 25 --distance 1800
  daylog activity 35 --other stretching,housework --note "morning walk"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		minutes, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid walking minutes: %s", args[0])
		}

		in := tracker.ActivityInput{
			WalkingMinutes: minutes,
			Note:           activityNote,
		}
		if activityDistance > 0 {
			in.DistanceMeters = &activityDistance
		}
		if activityOther != "" {
			for _, part := range strings.Split(activityOther, ",") {
				in.OtherActivities = append(in.OtherActivities, strings.TrimSpace(part))
			}
		}

		rec, result, err := app.SaveActivity(in)
		if err != nil {
			return fmt.Errorf("failed to save activity: %w", err)
		}

		color.Green("✓ Logged activity: %d min walking", rec.Walking.DurationMinutes)
		fmt.Printf("  %s %s\n",
			color.New(color.Faint).Sprint(rec.ID.String()[:8]), rec.Date)

		celebrate(result)
		return nil
	},
}

func init() {
	activityCmd.Flags().IntVar(&activityDistance, "distance", 0, "walking distance in meters")
	activityCmd.Flags().StringVar(&activityOther, "other", "", "comma-separated other activities")
	activityCmd.Flags().StringVar(&activityNote, "note", "", "free-text note")
	rootCmd.AddCommand(activityCmd)
}

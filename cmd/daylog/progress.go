// ABOUTME: CLI command showing points, level, streaks, and badges.
// ABOUTME: Reads the progress singleton; never modifies it.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/daylog/internal/gamify"
	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:     "progress",
	Aliases: []string{"p"},
	Short:   "Show your progress",
	Long: `Show cumulative progress: total points, current level and how far you
are into it, current and longest streaks, total recorded days, and every
badge with its earned state.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := app.Progress()
		if err != nil {
			return fmt.Errorf("failed to load progress: %w", err)
		}

		level := gamify.LevelForPoints(p.TotalPoints)
		pct := gamify.ProgressToNextLevel(p.TotalPoints)

		color.New(color.Bold).Printf("%s %s (level %d)\n", level.Icon, level.Name, level.Level)
		fmt.Printf("  %d points", p.TotalPoints)
		if level.MaxPoints != gamify.NoMaxPoints {
			fmt.Printf("  (%d%% to level %d)", pct, level.Level+1)
		}
		fmt.Println()
		fmt.Printf("  streak: %d day(s), longest %d\n", p.CurrentStreak, p.LongestStreak)
		fmt.Printf("  recorded days: %d, member since %s\n", p.TotalRecordDays, p.JoinDate)

		fmt.Println()
		color.New(color.Bold).Println("BADGES")
		for _, badge := range gamify.Badges {
			if p.HasBadge(badge.ID) {
				color.Yellow("  %s %s  %s", badge.Icon, badge.Name, badge.Description)
			} else {
				fmt.Println(color.New(color.Faint).Sprintf("  🔒 %s  %s", badge.Name, badge.Description))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(progressCmd)
}

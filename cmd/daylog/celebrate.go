// ABOUTME: Shared celebratory output for point awards and unlocks.
// ABOUTME: Renders points, level-ups, and new badges after a save.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/daylog/internal/gamify"
)

// celebrate prints the gamification result of a save. A nil result means the
// save was a same-day repeat and earned nothing.
func celebrate(result *gamify.Result) {
	if result == nil {
		fmt.Println(color.New(color.Faint).Sprint("  already logged today, no points this time"))
		return
	}

	color.Cyan("  +%d points", result.PointsAdded)

	if result.LeveledUp && result.NewLevel != nil {
		color.Magenta("  ★ Level up! %s %s (level %d)",
			result.NewLevel.Icon, result.NewLevel.Name, result.NewLevel.Level)
	}

	for _, id := range result.NewBadges {
		if badge, ok := gamify.BadgeByID(id); ok {
			color.Yellow("  %s Badge earned: %s (%s)", badge.Icon, badge.Name, badge.Description)
		}
	}
}

// ABOUTME: Pure gamification engine: streak, points, level, badge unlocks.
// ABOUTME: Takes baseline progress plus one save event, returns new progress.
package gamify

import (
	"github.com/harperreed/daylog/internal/dates"
	"github.com/harperreed/daylog/internal/models"
)

// Context carries the qualifying-save details that affect scoring.
type Context struct {
	// WalkingMinutes is today's walking duration, 0 when the event is a
	// condition entry.
	WalkingMinutes int

	// Activity marks the event as an activity entry (enables the
	// first-activity badge).
	Activity bool
}

// Result describes what a save event changed, for celebratory UI.
type Result struct {
	PointsAdded int      `json:"points_added"`
	NewBadges   []string `json:"new_badges"`
	LeveledUp   bool     `json:"leveled_up"`
	NewLevel    *Level   `json:"new_level,omitempty"`
}

// streakTransition compares today against the last recorded date.
// isNewDay is false only when today was already recorded, in which case the
// streak, record-day count, and streak bonuses must not move again.
func streakTransition(p models.UserProgress, today string) (streak int, isNewDay bool) {
	last := p.LastRecordDate
	switch {
	case last == nil:
		return 1, true
	case *last == today:
		return p.CurrentStreak, false
	case dates.DaysBetween(*last, today) == 1:
		return p.CurrentStreak + 1, true
	default:
		return 1, true
	}
}

// Apply scores one qualifying save event against baseline progress and
// returns the updated progress plus what changed.
//
// Callers must invoke Apply at most once per calendar date per record kind
// (on the first entry of that kind for the day); the engine does not see the
// record collections and cannot enforce that gate itself. A second kind on
// an already-recorded date still earns its base points, but streak, total
// record days, and streak bonuses move at most once per date.
func Apply(p models.UserProgress, today string, basePoints int, ctx Context) (models.UserProgress, Result) {
	streak, isNewDay := streakTransition(p, today)

	added := basePoints
	if ctx.WalkingMinutes >= WalkingBonusMinutes {
		added += PointsWalking30Min
	}
	if isNewDay {
		if streak == 7 {
			added += PointsWeeklyStreak
		}
		if streak == 30 {
			added += PointsMonthlyStreak
		}
	}

	next := p
	next.TotalPoints = p.TotalPoints + added
	if isNewDay {
		next.CurrentStreak = streak
		next.TotalRecordDays = p.TotalRecordDays + 1
	}
	if streak > next.LongestStreak {
		next.LongestStreak = streak
	}
	today2 := today
	next.LastRecordDate = &today2

	level := LevelForPoints(next.TotalPoints)
	next.CurrentLevel = level.Level

	stats := Stats{
		CurrentStreak:   next.CurrentStreak,
		LongestStreak:   next.LongestStreak,
		TotalRecordDays: next.TotalRecordDays,
		CurrentLevel:    next.CurrentLevel,
		ActivityLogged:  ctx.Activity,
	}

	result := Result{PointsAdded: added, NewBadges: []string{}}
	earned := append([]string(nil), p.EarnedBadges...)
	for _, badge := range Badges {
		if p.HasBadge(badge.ID) {
			continue
		}
		if badge.Earned(stats) {
			earned = append(earned, badge.ID)
			result.NewBadges = append(result.NewBadges, badge.ID)
		}
	}
	next.EarnedBadges = earned

	if level.Level > p.CurrentLevel {
		result.LeveledUp = true
		lvl := level
		result.NewLevel = &lvl
	}

	return next, result
}

// Reset returns a fresh zero progress joined today. Used only by the
// explicit data-wipe action.
func Reset(today string) models.UserProgress {
	return models.NewUserProgress(today)
}

// ABOUTME: Point values awarded for daily logging and streak milestones.
// ABOUTME: Streak bonuses fire once, at the exact threshold crossing.
package gamify

const (
	// PointsDailyCondition is the base award for the first condition entry
	// of a calendar date.
	PointsDailyCondition = 10

	// PointsDailyActivity is the base award for the first activity entry
	// of a calendar date.
	PointsDailyActivity = 10

	// PointsWalking30Min is the bonus for walking at least 30 minutes.
	PointsWalking30Min = 5

	// PointsWeeklyStreak is the bonus when the streak reaches exactly 7.
	PointsWeeklyStreak = 50

	// PointsMonthlyStreak is the bonus when the streak reaches exactly 30.
	PointsMonthlyStreak = 200
)

// WalkingBonusMinutes is the walking duration that earns the walking bonus.
const WalkingBonusMinutes = 30

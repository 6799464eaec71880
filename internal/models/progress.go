// ABOUTME: UserProgress model holding cumulative gamification state.
// ABOUTME: One singleton per device; mutated only by the gamify engine.
package models

// UserProgress is the cumulative gamification state. It is a value type: the
// engine takes a baseline and returns a new value, and the storage layer
// replaces the persisted singleton wholesale.
type UserProgress struct {
	TotalPoints     int      `json:"total_points"`
	CurrentLevel    int      `json:"current_level"`
	CurrentStreak   int      `json:"current_streak"`
	LongestStreak   int      `json:"longest_streak"`
	LastRecordDate  *string  `json:"last_record_date,omitempty"` // YYYY-MM-DD
	EarnedBadges    []string `json:"earned_badges"`
	TotalRecordDays int      `json:"total_record_days"`
	JoinDate        string   `json:"join_date"` // YYYY-MM-DD
}

// NewUserProgress returns the zero progress state for a device joining on the
// given date.
func NewUserProgress(joinDate string) UserProgress {
	return UserProgress{
		CurrentLevel: 1,
		EarnedBadges: []string{},
		JoinDate:     joinDate,
	}
}

// HasBadge reports whether the badge id has been earned.
func (p UserProgress) HasBadge(id string) bool {
	for _, earned := range p.EarnedBadges {
		if earned == id {
			return true
		}
	}
	return false
}

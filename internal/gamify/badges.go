// ABOUTME: Static badge catalog with threshold predicates.
// ABOUTME: Badges unlock once in catalog order and are never revoked.
package gamify

// BadgeConditionType selects which stat a badge predicate inspects.
type BadgeConditionType string

const (
	BadgeStreak    BadgeConditionType = "streak"
	BadgeTotalDays BadgeConditionType = "totalDays"
	BadgeLevel     BadgeConditionType = "level"
	BadgeActivity  BadgeConditionType = "activity"
	BadgeSpecial   BadgeConditionType = "special"
)

// BadgeCondition is the unlock predicate: the stat selected by Type must
// reach Value.
type BadgeCondition struct {
	Type  BadgeConditionType `json:"type"`
	Value int                `json:"value"`
}

// Badge is one entry in the static catalog.
type Badge struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Icon        string         `json:"icon"`
	Condition   BadgeCondition `json:"condition"`
}

// Badges is the full catalog. Simultaneous unlocks are reported in this
// order.
var Badges = []Badge{
	// Streak badges
	{ID: "streak-3", Name: "First Stride", Description: "Log 3 days in a row", Icon: "🔥",
		Condition: BadgeCondition{Type: BadgeStreak, Value: 3}},
	{ID: "streak-7", Name: "A Week's Promise", Description: "Log 7 days in a row", Icon: "⭐",
		Condition: BadgeCondition{Type: BadgeStreak, Value: 7}},
	{ID: "streak-14", Name: "Two-Week Habit", Description: "Log 14 days in a row", Icon: "🌟",
		Condition: BadgeCondition{Type: BadgeStreak, Value: 14}},
	{ID: "streak-30", Name: "Monthly Miracle", Description: "Log 30 days in a row", Icon: "💫",
		Condition: BadgeCondition{Type: BadgeStreak, Value: 30}},
	{ID: "streak-100", Name: "Hundred-Day Journey", Description: "Log 100 days in a row", Icon: "🏆",
		Condition: BadgeCondition{Type: BadgeStreak, Value: 100}},
	// Total record day badges
	{ID: "total-7", Name: "Steady Start", Description: "Log 7 days in total", Icon: "📅",
		Condition: BadgeCondition{Type: BadgeTotalDays, Value: 7}},
	{ID: "total-30", Name: "A Month of Footprints", Description: "Log 30 days in total", Icon: "📆",
		Condition: BadgeCondition{Type: BadgeTotalDays, Value: 30}},
	{ID: "total-100", Name: "Hundred-Day Record", Description: "Log 100 days in total", Icon: "📚",
		Condition: BadgeCondition{Type: BadgeTotalDays, Value: 100}},
	// Activity badge
	{ID: "walk-first", Name: "First Walk", Description: "Log your first activity", Icon: "👟",
		Condition: BadgeCondition{Type: BadgeActivity, Value: 1}},
	// Special badges
	{ID: "first-record", Name: "Well Begun", Description: "Complete your first entry", Icon: "🎉",
		Condition: BadgeCondition{Type: BadgeSpecial, Value: 1}},
	{ID: "level-5", Name: "Bearing Fruit", Description: "Reach level 5", Icon: "🍎",
		Condition: BadgeCondition{Type: BadgeLevel, Value: 5}},
	{ID: "level-8", Name: "Health Master", Description: "Reach the top level", Icon: "👑",
		Condition: BadgeCondition{Type: BadgeLevel, Value: 8}},
}

// BadgeByID looks up a catalog entry by id.
func BadgeByID(id string) (Badge, bool) {
	for _, b := range Badges {
		if b.ID == id {
			return b, true
		}
	}
	return Badge{}, false
}

// Stats is the post-update snapshot badge predicates evaluate against.
type Stats struct {
	CurrentStreak   int
	LongestStreak   int
	TotalRecordDays int
	CurrentLevel    int
	ActivityLogged  bool
}

// Earned reports whether the badge's unlock predicate holds for the stats.
func (b Badge) Earned(s Stats) bool {
	switch b.Condition.Type {
	case BadgeStreak:
		return s.LongestStreak >= b.Condition.Value
	case BadgeTotalDays:
		return s.TotalRecordDays >= b.Condition.Value
	case BadgeLevel:
		return s.CurrentLevel >= b.Condition.Value
	case BadgeActivity:
		return s.ActivityLogged && b.Condition.Value <= 1
	case BadgeSpecial:
		return s.TotalRecordDays >= b.Condition.Value
	}
	return false
}

// ABOUTME: Static level table mapping cumulative points to named tiers.
// ABOUTME: The top level is unbounded via the NoMaxPoints sentinel.
package gamify

// NoMaxPoints marks a level with no upper point bound.
const NoMaxPoints = -1

// Level is one tier in the static level table.
type Level struct {
	Level     int    `json:"level"`
	Name      string `json:"name"`
	MinPoints int    `json:"min_points"`
	MaxPoints int    `json:"max_points"` // NoMaxPoints for the top level
	Icon      string `json:"icon"`
}

// Contains reports whether the point total falls inside this level's range.
func (l Level) Contains(points int) bool {
	if points < l.MinPoints {
		return false
	}
	return l.MaxPoints == NoMaxPoints || points <= l.MaxPoints
}

// Levels is the ordered level table. Ranges are contiguous over [0, +inf):
// every non-negative point total maps to exactly one level.
var Levels = []Level{
	{Level: 1, Name: "First Steps", MinPoints: 0, MaxPoints: 99, Icon: "🌱"},
	{Level: 2, Name: "Growing Sprout", MinPoints: 100, MaxPoints: 299, Icon: "🌿"},
	{Level: 3, Name: "Sturdy Trunk", MinPoints: 300, MaxPoints: 599, Icon: "🌳"},
	{Level: 4, Name: "Blooming Flower", MinPoints: 600, MaxPoints: 999, Icon: "🌸"},
	{Level: 5, Name: "Fruiting Tree", MinPoints: 1000, MaxPoints: 1499, Icon: "🍎"},
	{Level: 6, Name: "Shining Sun", MinPoints: 1500, MaxPoints: 2099, Icon: "☀️"},
	{Level: 7, Name: "Rainbow Health", MinPoints: 2100, MaxPoints: 2799, Icon: "🌈"},
	{Level: 8, Name: "Health Master", MinPoints: 2800, MaxPoints: NoMaxPoints, Icon: "👑"},
}

// LevelForPoints returns the highest level whose MinPoints does not exceed
// the point total, scanning from the top of the table.
func LevelForPoints(points int) Level {
	for i := len(Levels) - 1; i >= 0; i-- {
		if points >= Levels[i].MinPoints {
			return Levels[i]
		}
	}
	return Levels[0]
}

// ProgressToNextLevel returns how far through the current level the point
// total is, as a 0-100 percentage. The top level always reports 100.
func ProgressToNextLevel(points int) int {
	current := LevelForPoints(points)
	if current.MaxPoints == NoMaxPoints {
		return 100
	}
	span := current.MaxPoints - current.MinPoints + 1
	pct := (points - current.MinPoints) * 100 / span
	if pct > 100 {
		return 100
	}
	return pct
}

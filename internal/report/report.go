// ABOUTME: Read-only report aggregation over condition and activity records.
// ABOUTME: Pure functions; safe to recompute on every request.
package report

import (
	"sort"

	"github.com/harperreed/daylog/internal/dates"
	"github.com/harperreed/daylog/internal/models"
)

// DailyReport is the chronological timeline for one calendar date.
type DailyReport struct {
	Date       string                   `json:"date"`
	Conditions []*models.ConditionRecord `json:"conditions"`
	Activities []*models.ActivityRecord  `json:"activities"`
	HasData    bool                     `json:"has_data"`
}

// DayCondition is one date's condition value in a weekly report. Value is
// the mean of that date's condition scores; Recorded is false when the date
// has no condition entries (and Value is meaningless).
type DayCondition struct {
	Date     string  `json:"date"`
	DayLabel string  `json:"day_label"`
	Value    float64 `json:"value"`
	Recorded bool    `json:"recorded"`
}

// DayActivity is one date's total walking minutes in a weekly report.
// Unlike condition, activity always has a numeric value; no data means 0.
type DayActivity struct {
	Date     string `json:"date"`
	DayLabel string `json:"day_label"`
	Minutes  int    `json:"minutes"`
}

// SymptomCount pairs a symptom with its occurrence count in the window.
type SymptomCount struct {
	Symptom models.SymptomName `json:"symptom"`
	Count   int                `json:"count"`
}

// WeeklyReport aggregates the 7 calendar dates ending at EndDate.
type WeeklyReport struct {
	StartDate            string         `json:"start_date"`
	EndDate              string         `json:"end_date"`
	ConditionData        []DayCondition `json:"condition_data"`
	ActivityData         []DayActivity  `json:"activity_data"`
	AverageCondition     float64        `json:"average_condition"`
	HasCondition         bool           `json:"has_condition"`
	TotalActivityMinutes int            `json:"total_activity_minutes"`
	SymptomCounts        []SymptomCount `json:"symptom_counts"`
	RecordedDays         int            `json:"recorded_days"`
}

// Daily filters both collections to one date and sorts each ascending by
// timestamp.
func Daily(conditions []*models.ConditionRecord, activities []*models.ActivityRecord, date string) DailyReport {
	r := DailyReport{Date: date}
	for _, c := range conditions {
		if c.Date == date {
			r.Conditions = append(r.Conditions, c)
		}
	}
	for _, a := range activities {
		if a.Date == date {
			r.Activities = append(r.Activities, a)
		}
	}
	sort.Slice(r.Conditions, func(i, j int) bool {
		return r.Conditions[i].Timestamp < r.Conditions[j].Timestamp
	})
	sort.Slice(r.Activities, func(i, j int) bool {
		return r.Activities[i].Timestamp < r.Activities[j].Timestamp
	})
	r.HasData = len(r.Conditions) > 0 || len(r.Activities) > 0
	return r
}

// Weekly aggregates the 7 calendar dates ending at and including endDate,
// oldest first. Per-date condition values are means over that date's
// records; per-date activity values are sums of walking minutes.
func Weekly(conditions []*models.ConditionRecord, activities []*models.ActivityRecord, endDate string) (WeeklyReport, error) {
	window, err := dates.LastN(endDate, 7)
	if err != nil {
		return WeeklyReport{}, err
	}

	r := WeeklyReport{
		StartDate:     window[0],
		EndDate:       window[len(window)-1],
		SymptomCounts: []SymptomCount{},
	}

	inWindow := make(map[string]bool, len(window))
	for _, d := range window {
		inWindow[d] = true
	}

	sum := 0.0
	for _, date := range window {
		day := DayCondition{Date: date, DayLabel: dates.Weekday(date)}
		total, n := 0, 0
		for _, c := range conditions {
			if c.Date == date {
				total += c.OverallCondition
				n++
			}
		}
		if n > 0 {
			day.Value = float64(total) / float64(n)
			day.Recorded = true
			sum += day.Value
			r.RecordedDays++
		}
		r.ConditionData = append(r.ConditionData, day)

		minutes := 0
		for _, a := range activities {
			if a.Date == date {
				minutes += a.Walking.DurationMinutes
			}
		}
		r.ActivityData = append(r.ActivityData, DayActivity{
			Date:     date,
			DayLabel: dates.Weekday(date),
			Minutes:  minutes,
		})
		r.TotalActivityMinutes += minutes
	}

	if r.RecordedDays > 0 {
		r.AverageCondition = sum / float64(r.RecordedDays)
		r.HasCondition = true
	}

	counts := make(map[models.SymptomName]int)
	for _, c := range conditions {
		if !inWindow[c.Date] {
			continue
		}
		for _, name := range models.SymptomCatalog {
			if c.Symptoms.Has(name) {
				counts[name]++
			}
		}
	}
	for _, name := range models.SymptomCatalog {
		if counts[name] > 0 {
			r.SymptomCounts = append(r.SymptomCounts, SymptomCount{Symptom: name, Count: counts[name]})
		}
	}
	// Descending by count; catalog order already breaks ties via stable sort.
	sort.SliceStable(r.SymptomCounts, func(i, j int) bool {
		return r.SymptomCounts[i].Count > r.SymptomCounts[j].Count
	})
	if len(r.SymptomCounts) > 3 {
		r.SymptomCounts = r.SymptomCounts[:3]
	}

	return r, nil
}

// ABOUTME: Tests for daily and weekly report aggregation.
// ABOUTME: Covers per-date means, sums, symptom ranking, and empty windows.
package report

import (
	"testing"

	"github.com/harperreed/daylog/internal/models"
)

func condAt(date string, overall int, ts int64) *models.ConditionRecord {
	c := models.NewConditionRecord(date, overall, 3)
	c.Timestamp = ts
	return c
}

func condWithSymptoms(date string, overall int, names ...models.SymptomName) *models.ConditionRecord {
	c := models.NewConditionRecord(date, overall, 3)
	var s models.Symptoms
	for _, n := range names {
		s.Set(n)
	}
	return c.WithSymptoms(s)
}

func walkAt(date string, minutes int, ts int64) *models.ActivityRecord {
	a := models.NewActivityRecord(date, minutes)
	a.Timestamp = ts
	return a
}

func TestDailyFiltersAndSorts(t *testing.T) {
	conditions := []*models.ConditionRecord{
		condAt("2024-01-03", 4, 300),
		condAt("2024-01-03", 2, 100),
		condAt("2024-01-02", 5, 200),
	}
	activities := []*models.ActivityRecord{
		walkAt("2024-01-03", 30, 250),
		walkAt("2024-01-04", 60, 50),
	}

	r := Daily(conditions, activities, "2024-01-03")

	if !r.HasData {
		t.Error("expected HasData")
	}
	if len(r.Conditions) != 2 {
		t.Fatalf("got %d conditions, want 2", len(r.Conditions))
	}
	if r.Conditions[0].Timestamp != 100 || r.Conditions[1].Timestamp != 300 {
		t.Error("conditions not sorted ascending by timestamp")
	}
	if len(r.Activities) != 1 || r.Activities[0].Walking.DurationMinutes != 30 {
		t.Errorf("activities = %v, want the one 30-minute walk", r.Activities)
	}
}

func TestDailyEmptyDate(t *testing.T) {
	r := Daily(nil, nil, "2024-01-01")
	if r.HasData {
		t.Error("empty date should have HasData false")
	}
	if r.Date != "2024-01-01" {
		t.Errorf("Date = %s", r.Date)
	}
}

func TestWeeklyWindowAndAverages(t *testing.T) {
	// Week 2024-01-01 (Mon) through 2024-01-07 (Sun).
	conditions := []*models.ConditionRecord{
		condAt("2024-01-01", 4, 1),
		condAt("2024-01-03", 2, 2),
		condAt("2024-01-03", 4, 3),
		condAt("2023-12-31", 1, 4), // outside the window
	}
	activities := []*models.ActivityRecord{
		walkAt("2024-01-02", 20, 1),
		walkAt("2024-01-02", 15, 2),
		walkAt("2024-01-08", 90, 3), // outside the window
	}

	r, err := Weekly(conditions, activities, "2024-01-07")
	if err != nil {
		t.Fatal(err)
	}

	if r.StartDate != "2024-01-01" || r.EndDate != "2024-01-07" {
		t.Errorf("window = %s..%s", r.StartDate, r.EndDate)
	}
	if len(r.ConditionData) != 7 || len(r.ActivityData) != 7 {
		t.Fatalf("expected 7 slots per series, got %d/%d", len(r.ConditionData), len(r.ActivityData))
	}

	mon := r.ConditionData[0]
	if !mon.Recorded || mon.Value != 4 {
		t.Errorf("Monday condition = %+v, want recorded mean 4", mon)
	}
	tue := r.ConditionData[1]
	if tue.Recorded {
		t.Error("Tuesday has no condition entries; Recorded should be false")
	}
	wed := r.ConditionData[2]
	if !wed.Recorded || wed.Value != 3 {
		t.Errorf("Wednesday condition = %+v, want mean 3 of scores 2 and 4", wed)
	}

	if r.RecordedDays != 2 {
		t.Errorf("RecordedDays = %d, want 2", r.RecordedDays)
	}
	// averageCondition averages the per-day means over recorded days only:
	// (4 + 3) / 2.
	if !r.HasCondition || r.AverageCondition != 3.5 {
		t.Errorf("AverageCondition = %v, want 3.5", r.AverageCondition)
	}

	if r.ActivityData[1].Minutes != 35 {
		t.Errorf("Tuesday minutes = %d, want 35", r.ActivityData[1].Minutes)
	}
	if r.ActivityData[0].Minutes != 0 {
		t.Errorf("Monday minutes = %d, want 0", r.ActivityData[0].Minutes)
	}
	if r.TotalActivityMinutes != 35 {
		t.Errorf("TotalActivityMinutes = %d, want 35", r.TotalActivityMinutes)
	}
}

func TestWeeklyDayLabels(t *testing.T) {
	r, err := Weekly(nil, nil, "2024-01-07")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	for i, label := range want {
		if r.ConditionData[i].DayLabel != label {
			t.Errorf("day %d label = %s, want %s", i, r.ConditionData[i].DayLabel, label)
		}
	}
}

func TestWeeklyEmpty(t *testing.T) {
	r, err := Weekly(nil, nil, "2024-01-07")
	if err != nil {
		t.Fatal(err)
	}
	if r.HasCondition {
		t.Error("HasCondition should be false with no records")
	}
	if r.AverageCondition != 0 {
		t.Errorf("AverageCondition = %v, want 0", r.AverageCondition)
	}
	if r.TotalActivityMinutes != 0 || r.RecordedDays != 0 {
		t.Error("expected zero totals with no records")
	}
	if len(r.SymptomCounts) != 0 {
		t.Errorf("SymptomCounts = %v, want empty", r.SymptomCounts)
	}
}

func TestWeeklySymptomRanking(t *testing.T) {
	conditions := []*models.ConditionRecord{
		condWithSymptoms("2024-01-01", 3, models.SymptomPain, models.SymptomFatigue),
		condWithSymptoms("2024-01-02", 3, models.SymptomPain, models.SymptomNausea),
		condWithSymptoms("2024-01-03", 3, models.SymptomPain),
		condWithSymptoms("2024-01-04", 3, models.SymptomFatigue),
		condWithSymptoms("2024-01-05", 3, models.SymptomIndigestion),
	}

	r, err := Weekly(conditions, nil, "2024-01-07")
	if err != nil {
		t.Fatal(err)
	}

	if len(r.SymptomCounts) != 3 {
		t.Fatalf("SymptomCounts has %d entries, want top 3", len(r.SymptomCounts))
	}
	if r.SymptomCounts[0].Symptom != models.SymptomPain || r.SymptomCounts[0].Count != 3 {
		t.Errorf("top symptom = %+v, want pain x3", r.SymptomCounts[0])
	}
	if r.SymptomCounts[1].Symptom != models.SymptomFatigue || r.SymptomCounts[1].Count != 2 {
		t.Errorf("second symptom = %+v, want fatigue x2", r.SymptomCounts[1])
	}
	// Indigestion and nausea both have count 1; catalog order puts
	// indigestion first.
	if r.SymptomCounts[2].Symptom != models.SymptomIndigestion {
		t.Errorf("third symptom = %+v, want indigestion by catalog-order tie break", r.SymptomCounts[2])
	}
}

func TestWeeklyNoSymptomNotCounted(t *testing.T) {
	c := models.NewConditionRecord("2024-01-01", 4, 4)
	var s models.Symptoms
	s.SetNoSymptom()
	c.WithSymptoms(s)

	r, err := Weekly([]*models.ConditionRecord{c}, nil, "2024-01-07")
	if err != nil {
		t.Fatal(err)
	}
	if len(r.SymptomCounts) != 0 {
		t.Errorf("SymptomCounts = %v, want empty for a symptom-free entry", r.SymptomCounts)
	}
}

func TestWeeklyRejectsBadDate(t *testing.T) {
	if _, err := Weekly(nil, nil, "garbage"); err == nil {
		t.Error("expected error for malformed end date")
	}
}

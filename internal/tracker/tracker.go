// ABOUTME: Core service tying record stores, gamify engine, and reports.
// ABOUTME: Owns the first-entry-of-the-day gate for point awards.
package tracker

import (
	"fmt"

	"github.com/harperreed/daylog/internal/dates"
	"github.com/harperreed/daylog/internal/gamify"
	"github.com/harperreed/daylog/internal/models"
	"github.com/harperreed/daylog/internal/report"
	"github.com/harperreed/daylog/internal/storage"
)

// Tracker coordinates record persistence with progress updates. The gamify
// engine itself is pure; Tracker performs the read-modify-write around it
// and enforces the one-award-per-kind-per-day contract.
type Tracker struct {
	repo storage.Repository
}

// New creates a Tracker over the given repository.
func New(repo storage.Repository) *Tracker {
	return &Tracker{repo: repo}
}

// Repo exposes the underlying repository for plain queries.
func (t *Tracker) Repo() storage.Repository {
	return t.repo
}

// ConditionInput is the user-supplied portion of a condition entry.
type ConditionInput struct {
	Overall   int
	Mood      int
	MealCount int
	Symptoms  models.Symptoms
	Note      string
}

// ActivityInput is the user-supplied portion of an activity entry.
type ActivityInput struct {
	WalkingMinutes  int
	DistanceMeters  *int
	OtherActivities []string
	Note            string
}

// SaveCondition validates and persists a condition entry for today. When it
// is the first condition entry of the day, the gamify engine runs and its
// result is returned; otherwise the result is nil.
func (t *Tracker) SaveCondition(in ConditionInput) (*models.ConditionRecord, *gamify.Result, error) {
	today := dates.Today()

	rec := models.NewConditionRecord(today, in.Overall, in.Mood).
		WithSymptoms(in.Symptoms).
		WithMealCount(in.MealCount)
	if in.Note != "" {
		rec.WithNote(in.Note)
	}
	if err := rec.Validate(); err != nil {
		return nil, nil, err
	}

	existing, err := t.repo.ConditionsByDate(today)
	if err != nil {
		return nil, nil, fmt.Errorf("check today's conditions: %w", err)
	}
	first := len(existing) == 0

	if err := t.repo.CreateCondition(rec); err != nil {
		return nil, nil, err
	}

	if !first {
		return rec, nil, nil
	}

	result, err := t.award(today, gamify.PointsDailyCondition, gamify.Context{})
	if err != nil {
		return nil, nil, err
	}
	return rec, result, nil
}

// SaveActivity validates and persists an activity entry for today. When it
// is the first activity entry of the day, the gamify engine runs with the
// walking context and its result is returned; otherwise the result is nil.
func (t *Tracker) SaveActivity(in ActivityInput) (*models.ActivityRecord, *gamify.Result, error) {
	today := dates.Today()

	rec := models.NewActivityRecord(today, in.WalkingMinutes)
	if in.DistanceMeters != nil {
		rec.WithDistance(*in.DistanceMeters)
	}
	if len(in.OtherActivities) > 0 {
		rec.WithOtherActivities(in.OtherActivities)
	}
	if in.Note != "" {
		rec.WithNote(in.Note)
	}
	if err := rec.Validate(); err != nil {
		return nil, nil, err
	}

	existing, err := t.repo.ActivitiesByDate(today)
	if err != nil {
		return nil, nil, fmt.Errorf("check today's activities: %w", err)
	}
	first := len(existing) == 0

	if err := t.repo.CreateActivity(rec); err != nil {
		return nil, nil, err
	}

	if !first {
		return rec, nil, nil
	}

	result, err := t.award(today, gamify.PointsDailyActivity, gamify.Context{
		WalkingMinutes: in.WalkingMinutes,
		Activity:       true,
	})
	if err != nil {
		return nil, nil, err
	}
	return rec, result, nil
}

// award runs the read-modify-write cycle around the pure engine.
func (t *Tracker) award(today string, basePoints int, ctx gamify.Context) (*gamify.Result, error) {
	baseline, err := t.repo.LoadProgress()
	if err != nil {
		return nil, err
	}
	next, result := gamify.Apply(baseline, today, basePoints, ctx)
	if err := t.repo.SaveProgress(next); err != nil {
		return nil, err
	}
	return &result, nil
}

// Progress returns the current progress singleton.
func (t *Tracker) Progress() (models.UserProgress, error) {
	return t.repo.LoadProgress()
}

// DailyReport builds the timeline report for one date.
func (t *Tracker) DailyReport(date string) (report.DailyReport, error) {
	conditions, err := t.repo.ConditionsByDate(date)
	if err != nil {
		return report.DailyReport{}, err
	}
	activities, err := t.repo.ActivitiesByDate(date)
	if err != nil {
		return report.DailyReport{}, err
	}
	return report.Daily(conditions, activities, date), nil
}

// WeeklyReport builds the 7-day report ending at endDate.
func (t *Tracker) WeeklyReport(endDate string) (report.WeeklyReport, error) {
	conditions, err := t.repo.ListConditions(0)
	if err != nil {
		return report.WeeklyReport{}, err
	}
	activities, err := t.repo.ListActivities(0)
	if err != nil {
		return report.WeeklyReport{}, err
	}
	return report.Weekly(conditions, activities, endDate)
}

// ResetAll wipes every record and reinitializes progress with a fresh join
// date. Deleting or editing individual records never touches progress; this
// is the one explicit exception.
func (t *Tracker) ResetAll() error {
	if err := t.repo.ClearAll(); err != nil {
		return err
	}
	return t.repo.SaveProgress(gamify.Reset(dates.Today()))
}

// ABOUTME: ActivityRecord model for daily walking and other light activity.
// ABOUTME: Walking duration is the gamification-relevant measurement.
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Walking holds the walking portion of an activity entry.
type Walking struct {
	DurationMinutes int  `json:"duration_minutes"`
	DistanceMeters  *int `json:"distance_meters,omitempty"`
}

// ActivityType describes a selectable non-walking activity.
type ActivityType struct {
	ID    string
	Label string
	Icon  string
}

// ActivityTypes lists the selectable activities in display order.
var ActivityTypes = []ActivityType{
	{ID: "walking", Label: "walking", Icon: "🚶"},
	{ID: "stretching", Label: "stretching", Icon: "🧘"},
	{ID: "housework", Label: "housework", Icon: "🏠"},
	{ID: "gardening", Label: "gardening", Icon: "🌱"},
}

// ActivityRecord is a single daily activity entry. Multiple records per
// calendar date are allowed; Date plus Timestamp order them.
type ActivityRecord struct {
	ID              uuid.UUID `json:"id"`
	Date            string    `json:"date"` // YYYY-MM-DD
	Timestamp       int64     `json:"timestamp"` // epoch milliseconds
	Walking         Walking   `json:"walking"`
	OtherActivities []string  `json:"other_activities,omitempty"`
	Note            *string   `json:"note,omitempty"`
}

// NewActivityRecord creates a record for the given date with generated UUID
// and current timestamp.
func NewActivityRecord(date string, walkingMinutes int) *ActivityRecord {
	return &ActivityRecord{
		ID:        uuid.New(),
		Date:      date,
		Timestamp: time.Now().UnixMilli(),
		Walking:   Walking{DurationMinutes: walkingMinutes},
	}
}

// WithDistance sets the walking distance in meters.
func (a *ActivityRecord) WithDistance(meters int) *ActivityRecord {
	a.Walking.DistanceMeters = &meters
	return a
}

// WithOtherActivities sets the non-walking activity ids.
func (a *ActivityRecord) WithOtherActivities(ids []string) *ActivityRecord {
	a.OtherActivities = ids
	return a
}

// WithNote sets the free-text note.
func (a *ActivityRecord) WithNote(note string) *ActivityRecord {
	a.Note = &note
	return a
}

// Validate rejects negative durations and distances before persisting.
func (a *ActivityRecord) Validate() error {
	if a.Walking.DurationMinutes < 0 {
		return fmt.Errorf("walking duration must be non-negative, got %d", a.Walking.DurationMinutes)
	}
	if a.Walking.DistanceMeters != nil && *a.Walking.DistanceMeters < 0 {
		return fmt.Errorf("walking distance must be non-negative, got %d", *a.Walking.DistanceMeters)
	}
	return nil
}

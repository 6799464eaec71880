// ABOUTME: Repository interface for condition, activity, and progress data.
// ABOUTME: Defines the contract shared by the Charm KV and SQLite backends.
package storage

import (
	"errors"

	"github.com/harperreed/daylog/internal/models"
)

// ErrNotFound is returned when an id or prefix matches no stored record.
// A stale id from the caller is an expected condition, not a failure of the
// store itself.
var ErrNotFound = errors.New("record not found")

// ErrAmbiguous is returned when an id prefix matches more than one record.
var ErrAmbiguous = errors.New("ambiguous id prefix")

// Repository defines the storage contract for daylog data. All writes are
// whole-record (or whole-singleton) replacements under a single-writer
// assumption.
type Repository interface {
	// Condition records
	CreateCondition(c *models.ConditionRecord) error
	GetCondition(idOrPrefix string) (*models.ConditionRecord, error)
	UpdateCondition(c *models.ConditionRecord) error
	DeleteCondition(idOrPrefix string) error
	ListConditions(limit int) ([]*models.ConditionRecord, error)
	ConditionsByDate(date string) ([]*models.ConditionRecord, error)

	// Activity records
	CreateActivity(a *models.ActivityRecord) error
	GetActivity(idOrPrefix string) (*models.ActivityRecord, error)
	UpdateActivity(a *models.ActivityRecord) error
	DeleteActivity(idOrPrefix string) error
	ListActivities(limit int) ([]*models.ActivityRecord, error)
	ActivitiesByDate(date string) ([]*models.ActivityRecord, error)

	// Progress singleton. LoadProgress returns a fresh zero state when the
	// device has never saved progress.
	LoadProgress() (models.UserProgress, error)
	SaveProgress(p models.UserProgress) error

	// ClearAll removes every record and the progress singleton.
	ClearAll() error

	// Lifecycle
	Close() error
}

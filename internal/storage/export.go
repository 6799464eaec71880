// ABOUTME: Full-data export and import, backend-agnostic.
// ABOUTME: Works against any Repository via its own CRUD methods.
package storage

import (
	"fmt"
	"time"

	"github.com/harperreed/daylog/internal/models"
)

// ExportData is the portable dump of everything a device stores.
type ExportData struct {
	ExportedAt string                    `json:"exported_at"`
	Conditions []*models.ConditionRecord `json:"conditions"`
	Activities []*models.ActivityRecord  `json:"activities"`
	Progress   models.UserProgress       `json:"progress"`
}

// Export reads the complete contents of a repository.
func Export(r Repository) (*ExportData, error) {
	conditions, err := r.ListConditions(0)
	if err != nil {
		return nil, fmt.Errorf("export conditions: %w", err)
	}
	activities, err := r.ListActivities(0)
	if err != nil {
		return nil, fmt.Errorf("export activities: %w", err)
	}
	progress, err := r.LoadProgress()
	if err != nil {
		return nil, fmt.Errorf("export progress: %w", err)
	}

	if conditions == nil {
		conditions = []*models.ConditionRecord{}
	}
	if activities == nil {
		activities = []*models.ActivityRecord{}
	}

	return &ExportData{
		ExportedAt: time.Now().Format(time.RFC3339),
		Conditions: conditions,
		Activities: activities,
		Progress:   progress,
	}, nil
}

// Import writes a previously exported dump into a repository. Existing
// records with the same ids are left in place; the progress singleton is
// replaced.
func Import(r Repository, data *ExportData) error {
	for _, c := range data.Conditions {
		if _, err := r.GetCondition(c.ID.String()); err == nil {
			continue
		}
		if err := r.CreateCondition(c); err != nil {
			return fmt.Errorf("import condition %s: %w", c.ID, err)
		}
	}
	for _, a := range data.Activities {
		if _, err := r.GetActivity(a.ID.String()); err == nil {
			continue
		}
		if err := r.CreateActivity(a); err != nil {
			return fmt.Errorf("import activity %s: %w", a.ID, err)
		}
	}
	if err := r.SaveProgress(data.Progress); err != nil {
		return fmt.Errorf("import progress: %w", err)
	}
	return nil
}

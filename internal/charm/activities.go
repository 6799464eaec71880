// ABOUTME: Activity record CRUD operations for Charm KV storage.
// ABOUTME: Uses type-prefixed keys and client-side filtering.
package charm

import (
	"fmt"
	"sort"
	"time"

	"github.com/harperreed/daylog/internal/models"
)

// CreateActivity stores a new activity record in the KV store.
func (c *Client) CreateActivity(rec *models.ActivityRecord) error {
	key := ActivityPrefix + rec.ID.String()
	data, err := marshalJSON(rec)
	if err != nil {
		return fmt.Errorf("marshal activity record: %w", err)
	}
	return c.set(key, data)
}

// GetActivity retrieves an activity record by ID or ID prefix.
func (c *Client) GetActivity(idOrPrefix string) (*models.ActivityRecord, error) {
	data, err := c.getByIDPrefix(ActivityPrefix, idOrPrefix)
	if err != nil {
		return nil, fmt.Errorf("get activity record: %w", err)
	}

	rec, err := unmarshalJSON[models.ActivityRecord](data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal activity record: %w", err)
	}
	return rec, nil
}

// UpdateActivity replaces a stored record, refreshing its timestamp.
func (c *Client) UpdateActivity(rec *models.ActivityRecord) error {
	if _, err := c.GetActivity(rec.ID.String()); err != nil {
		return err
	}
	rec.Timestamp = time.Now().UnixMilli()
	return c.CreateActivity(rec)
}

// DeleteActivity removes an activity record by ID or prefix.
func (c *Client) DeleteActivity(idOrPrefix string) error {
	if err := c.deleteByIDPrefix(ActivityPrefix, idOrPrefix); err != nil {
		return fmt.Errorf("delete activity record: %w", err)
	}
	return nil
}

// ListActivities retrieves activity records, most recent first.
func (c *Client) ListActivities(limit int) ([]*models.ActivityRecord, error) {
	allData, err := c.listByPrefix(ActivityPrefix)
	if err != nil {
		return nil, fmt.Errorf("list activity records: %w", err)
	}

	var records []*models.ActivityRecord
	for _, data := range allData {
		rec, err := unmarshalJSON[models.ActivityRecord](data)
		if err != nil {
			continue // Skip invalid entries
		}
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Timestamp > records[j].Timestamp
	})

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// ActivitiesByDate retrieves all activity records for one calendar date,
// ordered by timestamp ascending.
func (c *Client) ActivitiesByDate(date string) ([]*models.ActivityRecord, error) {
	all, err := c.ListActivities(0)
	if err != nil {
		return nil, err
	}

	var records []*models.ActivityRecord
	for _, rec := range all {
		if rec.Date == date {
			records = append(records, rec)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Timestamp < records[j].Timestamp
	})
	return records, nil
}

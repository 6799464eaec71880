// ABOUTME: Condition record CRUD operations for Charm KV storage.
// ABOUTME: Uses type-prefixed keys and client-side filtering.
package charm

import (
	"fmt"
	"sort"
	"time"

	"github.com/harperreed/daylog/internal/models"
)

// CreateCondition stores a new condition record in the KV store.
func (c *Client) CreateCondition(rec *models.ConditionRecord) error {
	key := ConditionPrefix + rec.ID.String()
	data, err := marshalJSON(rec)
	if err != nil {
		return fmt.Errorf("marshal condition record: %w", err)
	}
	return c.set(key, data)
}

// GetCondition retrieves a condition record by ID or ID prefix.
func (c *Client) GetCondition(idOrPrefix string) (*models.ConditionRecord, error) {
	data, err := c.getByIDPrefix(ConditionPrefix, idOrPrefix)
	if err != nil {
		return nil, fmt.Errorf("get condition record: %w", err)
	}

	rec, err := unmarshalJSON[models.ConditionRecord](data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal condition record: %w", err)
	}
	return rec, nil
}

// UpdateCondition replaces a stored record, refreshing its timestamp.
func (c *Client) UpdateCondition(rec *models.ConditionRecord) error {
	if _, err := c.GetCondition(rec.ID.String()); err != nil {
		return err
	}
	rec.Timestamp = time.Now().UnixMilli()
	return c.CreateCondition(rec)
}

// DeleteCondition removes a condition record by ID or prefix.
func (c *Client) DeleteCondition(idOrPrefix string) error {
	if err := c.deleteByIDPrefix(ConditionPrefix, idOrPrefix); err != nil {
		return fmt.Errorf("delete condition record: %w", err)
	}
	return nil
}

// ListConditions retrieves condition records, most recent first.
func (c *Client) ListConditions(limit int) ([]*models.ConditionRecord, error) {
	allData, err := c.listByPrefix(ConditionPrefix)
	if err != nil {
		return nil, fmt.Errorf("list condition records: %w", err)
	}

	var records []*models.ConditionRecord
	for _, data := range allData {
		rec, err := unmarshalJSON[models.ConditionRecord](data)
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

// ConditionsByDate retrieves all condition records for one calendar date,
// ordered by timestamp ascending.
func (c *Client) ConditionsByDate(date string) ([]*models.ConditionRecord, error) {
	all, err := c.ListConditions(0)
	if err != nil {
		return nil, err
	}

	var records []*models.ConditionRecord
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

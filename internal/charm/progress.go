// ABOUTME: UserProgress singleton persistence for Charm KV storage.
// ABOUTME: Stored under a single fixed key, replaced wholesale on save.
package charm

import (
	"fmt"

	"github.com/harperreed/daylog/internal/dates"
	"github.com/harperreed/daylog/internal/models"
)

// LoadProgress reads the progress singleton, returning a fresh zero state
// joined today when none has been saved yet.
func (c *Client) LoadProgress() (models.UserProgress, error) {
	data, found, err := c.get(ProgressKey)
	if err != nil {
		return models.UserProgress{}, fmt.Errorf("load progress: %w", err)
	}
	if !found {
		return models.NewUserProgress(dates.Today()), nil
	}

	p, err := unmarshalJSON[models.UserProgress](data)
	if err != nil {
		return models.UserProgress{}, fmt.Errorf("unmarshal progress: %w", err)
	}
	return *p, nil
}

// SaveProgress replaces the persisted progress singleton.
func (c *Client) SaveProgress(p models.UserProgress) error {
	data, err := marshalJSON(p)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	return c.set(ProgressKey, data)
}

// ClearAll removes every record and the progress singleton.
func (c *Client) ClearAll() error {
	for _, prefix := range []string{ConditionPrefix, ActivityPrefix} {
		keys, err := c.keysByPrefix(prefix)
		if err != nil {
			return fmt.Errorf("clear all: %w", err)
		}
		for _, key := range keys {
			if err := c.delete(key); err != nil {
				return fmt.Errorf("clear all: %w", err)
			}
		}
	}
	if err := c.delete(ProgressKey); err != nil {
		return fmt.Errorf("clear all: %w", err)
	}
	return nil
}

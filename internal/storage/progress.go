// ABOUTME: UserProgress singleton persistence for SQLite storage.
// ABOUTME: The whole structure is replaced on every save.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/harperreed/daylog/internal/dates"
	"github.com/harperreed/daylog/internal/models"
)

// LoadProgress reads the progress singleton, returning a fresh zero state
// joined today when none has been saved yet.
func (d *DB) LoadProgress() (models.UserProgress, error) {
	var data string
	err := d.db.QueryRow("SELECT data FROM user_progress WHERE id = 1").Scan(&data)
	if err == sql.ErrNoRows {
		return models.NewUserProgress(dates.Today()), nil
	}
	if err != nil {
		return models.UserProgress{}, fmt.Errorf("load progress: %w", err)
	}

	var p models.UserProgress
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return models.UserProgress{}, fmt.Errorf("unmarshal progress: %w", err)
	}
	return p, nil
}

// SaveProgress replaces the persisted progress singleton.
func (d *DB) SaveProgress(p models.UserProgress) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}

	query := `
		INSERT INTO user_progress (id, data) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data
	`
	if _, err := d.db.Exec(query, string(data)); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// ClearAll removes every record and the progress singleton.
func (d *DB) ClearAll() error {
	stmts := []string{
		"DELETE FROM condition_records",
		"DELETE FROM activity_records",
		"DELETE FROM user_progress",
	}
	for _, stmt := range stmts {
		if _, err := d.db.Exec(stmt); err != nil {
			return fmt.Errorf("clear all: %w", err)
		}
	}
	return nil
}

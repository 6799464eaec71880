// ABOUTME: Condition record CRUD operations for SQLite storage.
// ABOUTME: Symptom flags are stored as a JSON column.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/daylog/internal/models"
)

// CreateCondition stores a new condition record.
func (d *DB) CreateCondition(c *models.ConditionRecord) error {
	symptoms, err := json.Marshal(c.Symptoms)
	if err != nil {
		return fmt.Errorf("marshal symptoms: %w", err)
	}

	query := `
		INSERT INTO condition_records (id, date, timestamp, overall_condition, symptoms, mood, meal_count, note)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = d.db.Exec(query,
		c.ID.String(),
		c.Date,
		c.Timestamp,
		c.OverallCondition,
		string(symptoms),
		c.Mood,
		c.MealCount,
		c.Note,
	)
	if err != nil {
		return fmt.Errorf("create condition record: %w", err)
	}
	return nil
}

// GetCondition retrieves a condition record by ID or ID prefix.
func (d *DB) GetCondition(idOrPrefix string) (*models.ConditionRecord, error) {
	id, err := d.resolveID("condition_records", idOrPrefix)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, date, timestamp, overall_condition, symptoms, mood, meal_count, note
		FROM condition_records
		WHERE id = ?
	`
	return scanCondition(d.db.QueryRow(query, id))
}

// UpdateCondition replaces a stored record, refreshing its timestamp.
func (d *DB) UpdateCondition(c *models.ConditionRecord) error {
	symptoms, err := json.Marshal(c.Symptoms)
	if err != nil {
		return fmt.Errorf("marshal symptoms: %w", err)
	}

	c.Timestamp = time.Now().UnixMilli()
	query := `
		UPDATE condition_records
		SET date = ?, timestamp = ?, overall_condition = ?, symptoms = ?, mood = ?, meal_count = ?, note = ?
		WHERE id = ?
	`
	result, err := d.db.Exec(query,
		c.Date, c.Timestamp, c.OverallCondition, string(symptoms), c.Mood, c.MealCount, c.Note,
		c.ID.String(),
	)
	if err != nil {
		return fmt.Errorf("update condition record: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update condition record: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update condition record %s: %w", c.ID, ErrNotFound)
	}
	return nil
}

// DeleteCondition removes a condition record by ID or prefix.
func (d *DB) DeleteCondition(idOrPrefix string) error {
	id, err := d.resolveID("condition_records", idOrPrefix)
	if err != nil {
		return err
	}

	if _, err := d.db.Exec("DELETE FROM condition_records WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete condition record: %w", err)
	}
	return nil
}

// ListConditions retrieves condition records, most recent first.
func (d *DB) ListConditions(limit int) ([]*models.ConditionRecord, error) {
	query := `
		SELECT id, date, timestamp, overall_condition, symptoms, mood, meal_count, note
		FROM condition_records
		ORDER BY timestamp DESC
	`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list condition records: %w", err)
	}
	defer rows.Close()

	return scanConditions(rows)
}

// ConditionsByDate retrieves all condition records for one calendar date,
// ordered by timestamp ascending.
func (d *DB) ConditionsByDate(date string) ([]*models.ConditionRecord, error) {
	query := `
		SELECT id, date, timestamp, overall_condition, symptoms, mood, meal_count, note
		FROM condition_records
		WHERE date = ?
		ORDER BY timestamp ASC
	`
	rows, err := d.db.Query(query, date)
	if err != nil {
		return nil, fmt.Errorf("conditions by date: %w", err)
	}
	defer rows.Close()

	return scanConditions(rows)
}

// resolveID finds the full ID from a prefix in the given table.
func (d *DB) resolveID(table, idOrPrefix string) (string, error) {
	// Full UUIDs are used directly
	if len(idOrPrefix) == 36 && strings.Count(idOrPrefix, "-") == 4 {
		return idOrPrefix, nil
	}

	query := fmt.Sprintf(`SELECT id FROM %s WHERE id LIKE ? || '%%'`, table)
	rows, err := d.db.Query(query, idOrPrefix)
	if err != nil {
		return "", fmt.Errorf("resolve id: %w", err)
	}
	defer rows.Close()

	var matches []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("scan id: %w", err)
		}
		matches = append(matches, id)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("resolve id: %w", err)
	}

	if len(matches) == 0 {
		return "", fmt.Errorf("resolve %s: %w", idOrPrefix, ErrNotFound)
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("resolve %s: %w", idOrPrefix, ErrAmbiguous)
	}
	return matches[0], nil
}

func scanConditionRow(scan func(dest ...interface{}) error) (*models.ConditionRecord, error) {
	var c models.ConditionRecord
	var idStr, symptoms string
	var note sql.NullString

	err := scan(&idStr, &c.Date, &c.Timestamp, &c.OverallCondition, &symptoms, &c.Mood, &c.MealCount, &note)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan condition record: %w", err)
	}

	c.ID, _ = uuid.Parse(idStr)
	if err := json.Unmarshal([]byte(symptoms), &c.Symptoms); err != nil {
		return nil, fmt.Errorf("unmarshal symptoms: %w", err)
	}
	if note.Valid {
		c.Note = &note.String
	}
	return &c, nil
}

func scanCondition(row *sql.Row) (*models.ConditionRecord, error) {
	return scanConditionRow(row.Scan)
}

func scanConditions(rows *sql.Rows) ([]*models.ConditionRecord, error) {
	var records []*models.ConditionRecord
	for rows.Next() {
		c, err := scanConditionRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, c)
	}
	return records, rows.Err()
}

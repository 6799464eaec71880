// ABOUTME: Activity record CRUD operations for SQLite storage.
// ABOUTME: Other-activity ids are stored as a JSON column.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/daylog/internal/models"
)

// CreateActivity stores a new activity record.
func (d *DB) CreateActivity(a *models.ActivityRecord) error {
	other, err := marshalOther(a.OtherActivities)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO activity_records (id, date, timestamp, walking_minutes, walking_distance, other_activities, note)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err = d.db.Exec(query,
		a.ID.String(),
		a.Date,
		a.Timestamp,
		a.Walking.DurationMinutes,
		a.Walking.DistanceMeters,
		other,
		a.Note,
	)
	if err != nil {
		return fmt.Errorf("create activity record: %w", err)
	}
	return nil
}

// GetActivity retrieves an activity record by ID or ID prefix.
func (d *DB) GetActivity(idOrPrefix string) (*models.ActivityRecord, error) {
	id, err := d.resolveID("activity_records", idOrPrefix)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, date, timestamp, walking_minutes, walking_distance, other_activities, note
		FROM activity_records
		WHERE id = ?
	`
	return scanActivity(d.db.QueryRow(query, id))
}

// UpdateActivity replaces a stored record, refreshing its timestamp.
func (d *DB) UpdateActivity(a *models.ActivityRecord) error {
	other, err := marshalOther(a.OtherActivities)
	if err != nil {
		return err
	}

	a.Timestamp = time.Now().UnixMilli()
	query := `
		UPDATE activity_records
		SET date = ?, timestamp = ?, walking_minutes = ?, walking_distance = ?, other_activities = ?, note = ?
		WHERE id = ?
	`
	result, err := d.db.Exec(query,
		a.Date, a.Timestamp, a.Walking.DurationMinutes, a.Walking.DistanceMeters, other, a.Note,
		a.ID.String(),
	)
	if err != nil {
		return fmt.Errorf("update activity record: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update activity record: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update activity record %s: %w", a.ID, ErrNotFound)
	}
	return nil
}

// DeleteActivity removes an activity record by ID or prefix.
func (d *DB) DeleteActivity(idOrPrefix string) error {
	id, err := d.resolveID("activity_records", idOrPrefix)
	if err != nil {
		return err
	}

	if _, err := d.db.Exec("DELETE FROM activity_records WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete activity record: %w", err)
	}
	return nil
}

// ListActivities retrieves activity records, most recent first.
func (d *DB) ListActivities(limit int) ([]*models.ActivityRecord, error) {
	query := `
		SELECT id, date, timestamp, walking_minutes, walking_distance, other_activities, note
		FROM activity_records
		ORDER BY timestamp DESC
	`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list activity records: %w", err)
	}
	defer rows.Close()

	return scanActivities(rows)
}

// ActivitiesByDate retrieves all activity records for one calendar date,
// ordered by timestamp ascending.
func (d *DB) ActivitiesByDate(date string) ([]*models.ActivityRecord, error) {
	query := `
		SELECT id, date, timestamp, walking_minutes, walking_distance, other_activities, note
		FROM activity_records
		WHERE date = ?
		ORDER BY timestamp ASC
	`
	rows, err := d.db.Query(query, date)
	if err != nil {
		return nil, fmt.Errorf("activities by date: %w", err)
	}
	defer rows.Close()

	return scanActivities(rows)
}

func marshalOther(ids []string) (*string, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return nil, fmt.Errorf("marshal other activities: %w", err)
	}
	s := string(data)
	return &s, nil
}

func scanActivityRow(scan func(dest ...interface{}) error) (*models.ActivityRecord, error) {
	var a models.ActivityRecord
	var idStr string
	var distance sql.NullInt64
	var other, note sql.NullString

	err := scan(&idStr, &a.Date, &a.Timestamp, &a.Walking.DurationMinutes, &distance, &other, &note)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan activity record: %w", err)
	}

	a.ID, _ = uuid.Parse(idStr)
	if distance.Valid {
		meters := int(distance.Int64)
		a.Walking.DistanceMeters = &meters
	}
	if other.Valid {
		if err := json.Unmarshal([]byte(other.String), &a.OtherActivities); err != nil {
			return nil, fmt.Errorf("unmarshal other activities: %w", err)
		}
	}
	if note.Valid {
		a.Note = &note.String
	}
	return &a, nil
}

func scanActivity(row *sql.Row) (*models.ActivityRecord, error) {
	return scanActivityRow(row.Scan)
}

func scanActivities(rows *sql.Rows) ([]*models.ActivityRecord, error) {
	var records []*models.ActivityRecord
	for rows.Next() {
		a, err := scanActivityRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

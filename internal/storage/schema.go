// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Tables for condition records, activity records, and progress.
package storage

// initSchema creates or updates the database schema.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS condition_records (
		id TEXT PRIMARY KEY,
		date TEXT NOT NULL,
		timestamp INTEGER NOT NULL,
		overall_condition INTEGER NOT NULL,
		symptoms TEXT NOT NULL,
		mood INTEGER NOT NULL,
		meal_count INTEGER NOT NULL DEFAULT 0,
		note TEXT
	);

	CREATE TABLE IF NOT EXISTS activity_records (
		id TEXT PRIMARY KEY,
		date TEXT NOT NULL,
		timestamp INTEGER NOT NULL,
		walking_minutes INTEGER NOT NULL,
		walking_distance INTEGER,
		other_activities TEXT,
		note TEXT
	);

	CREATE TABLE IF NOT EXISTS user_progress (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		data TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_condition_date ON condition_records(date);
	CREATE INDEX IF NOT EXISTS idx_condition_timestamp ON condition_records(timestamp DESC);
	CREATE INDEX IF NOT EXISTS idx_activity_date ON activity_records(date);
	CREATE INDEX IF NOT EXISTS idx_activity_timestamp ON activity_records(timestamp DESC);
	`

	_, err := d.db.Exec(schema)
	return err
}

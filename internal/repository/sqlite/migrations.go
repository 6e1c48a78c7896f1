package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const createDriversTable = `
CREATE TABLE IF NOT EXISTS drivers (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    chat_id INTEGER NOT NULL
);
`

const createSettingsTable = `
CREATE TABLE IF NOT EXISTS settings (
    user_id INTEGER PRIMARY KEY,
    body TEXT NOT NULL
);
`

const createTimeEntriesTable = `
CREATE TABLE IF NOT EXISTS time_entries (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER NOT NULL,
    start_time TEXT NOT NULL,
    end_time TEXT NOT NULL
);
`

const createSubmissionsTable = `
CREATE TABLE IF NOT EXISTS submissions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER NOT NULL,
    date TEXT NOT NULL,
    timestamp TEXT NOT NULL,
    entries TEXT NOT NULL,
    total_minutes INTEGER NOT NULL
);
`

const createPayRecordsTable = `
CREATE TABLE IF NOT EXISTS pay_records (
    id TEXT NOT NULL,
    user_id INTEGER NOT NULL,
    date TEXT NOT NULL,
    timestamp TEXT NOT NULL,
    submission_time TEXT NOT NULL,
    standard_hours INTEGER NOT NULL,
    standard_minutes INTEGER NOT NULL,
    standard_rate REAL NOT NULL,
    standard_pay REAL NOT NULL,
    overtime_hours INTEGER NOT NULL,
    overtime_minutes INTEGER NOT NULL,
    overtime_rate REAL NOT NULL,
    overtime_pay REAL NOT NULL,
    total_pay REAL NOT NULL,
    calculation_method TEXT NOT NULL,
    tax_amount REAL,
    after_tax_pay REAL,
    tax_rate REAL,
    ni_amount REAL,
    after_ni_pay REAL,
    notes TEXT NOT NULL DEFAULT '',
    PRIMARY KEY (user_id, id)
);
`

// Open opens (creating if needed) the local database file and migrates it.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	if err := Migrate(context.Background(), db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range []string{
		createDriversTable,
		createSettingsTable,
		createTimeEntriesTable,
		createSubmissionsTable,
		createPayRecordsTable,
	} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

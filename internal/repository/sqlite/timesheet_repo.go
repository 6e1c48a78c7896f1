package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"driver-buddy/internal/domain"
	"driver-buddy/internal/model"
)

type SqliteEntryRepo struct {
	db *sql.DB
}

func NewSqliteEntryRepo(db *sql.DB) *SqliteEntryRepo {
	return &SqliteEntryRepo{db: db}
}

func (r *SqliteEntryRepo) ListEntries(ctx context.Context, userID int64) ([]model.TimeEntry, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, start_time, end_time FROM time_entries WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	entries := []model.TimeEntry{}
	for rows.Next() {
		var e model.TimeEntry
		if err := rows.Scan(&e.ID, &e.StartTime, &e.EndTime); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *SqliteEntryRepo) AddEntry(ctx context.Context, userID int64, e model.TimeEntry) (model.TimeEntry, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO time_entries (user_id, start_time, end_time) VALUES (?, ?, ?)`,
		userID, e.StartTime, e.EndTime)
	if err != nil {
		return e, err
	}
	e.ID, err = res.LastInsertId()
	return e, err
}

func (r *SqliteEntryRepo) DeleteEntry(ctx context.Context, userID int64, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM time_entries WHERE user_id = ? AND id = ?`, userID, id)
	if err != nil {
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SqliteEntryRepo) ClearEntries(ctx context.Context, userID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM time_entries WHERE user_id = ?`, userID)
	return err
}

type SqliteSubmissionRepo struct {
	db *sql.DB
}

func NewSqliteSubmissionRepo(db *sql.DB) *SqliteSubmissionRepo {
	return &SqliteSubmissionRepo{db: db}
}

func (r *SqliteSubmissionRepo) ListSubmissions(ctx context.Context, userID int64) ([]model.DailySubmission, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT date, timestamp, entries, total_minutes FROM submissions WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	subs := []model.DailySubmission{}
	for rows.Next() {
		var s model.DailySubmission
		var entries string
		if err := rows.Scan(&s.Date, &s.Timestamp, &entries, &s.TotalMinutes); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(entries), &s.Entries); err != nil {
			return nil, fmt.Errorf("decode submission %s: %w", s.Date, err)
		}
		subs = append(subs, s)
	}
	return subs, rows.Err()
}

func (r *SqliteSubmissionRepo) AddSubmission(ctx context.Context, userID int64, s model.DailySubmission) error {
	entries, err := json.Marshal(s.Entries)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO submissions (user_id, date, timestamp, entries, total_minutes) VALUES (?, ?, ?, ?, ?)`,
		userID, s.Date, s.Timestamp, string(entries), s.TotalMinutes)
	return err
}

// Store bundles the repos that follow a user's storage mode.
type Store struct {
	*SqlitePayRepo
	*SqliteEntryRepo
	*SqliteSubmissionRepo
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		SqlitePayRepo:        NewSqlitePayRepo(db),
		SqliteEntryRepo:      NewSqliteEntryRepo(db),
		SqliteSubmissionRepo: NewSqliteSubmissionRepo(db),
	}
}

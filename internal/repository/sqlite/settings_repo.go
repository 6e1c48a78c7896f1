package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"driver-buddy/internal/model"
)

// SqliteSettingsRepo keeps each user's settings as one JSON document.
type SqliteSettingsRepo struct {
	db *sql.DB
}

func NewSqliteSettingsRepo(db *sql.DB) *SqliteSettingsRepo {
	return &SqliteSettingsRepo{db: db}
}

func (r *SqliteSettingsRepo) GetSettings(ctx context.Context, userID int64) (model.Settings, bool, error) {
	var body string
	err := r.db.QueryRowContext(ctx, `SELECT body FROM settings WHERE user_id = ?`, userID).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Settings{}, false, nil
	}
	if err != nil {
		return model.Settings{}, false, err
	}
	var s model.Settings
	if err := json.Unmarshal([]byte(body), &s); err != nil {
		return model.Settings{}, false, fmt.Errorf("decode settings for %d: %w", userID, err)
	}
	return s, true, nil
}

func (r *SqliteSettingsRepo) SaveSettings(ctx context.Context, userID int64, s model.Settings) error {
	body, err := json.Marshal(s)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO settings (user_id, body) VALUES (?, ?) ON CONFLICT(user_id) DO UPDATE SET body = excluded.body`,
		userID, string(body))
	return err
}

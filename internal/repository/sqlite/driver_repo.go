package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"driver-buddy/internal/domain"
	"driver-buddy/internal/model"
)

type SqliteDriverRepo struct {
	db *sql.DB
}

func NewSqliteDriverRepo(db *sql.DB) *SqliteDriverRepo {
	return &SqliteDriverRepo{db: db}
}

func (r *SqliteDriverRepo) CreateOrUpdateDriver(ctx context.Context, d model.Driver) error {
	res, err := r.db.ExecContext(ctx, `UPDATE drivers SET name = ?, chat_id = ? WHERE id = ?`, d.Name, d.ChatID, d.ID)
	if err != nil {
		return err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		_, err = r.db.ExecContext(ctx, `INSERT INTO drivers (id, name, chat_id) VALUES (?, ?, ?)`, d.ID, d.Name, d.ChatID)
		return err
	}
	return nil
}

func (r *SqliteDriverRepo) GetAllDrivers(ctx context.Context) ([]model.Driver, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, chat_id FROM drivers ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var drivers []model.Driver
	for rows.Next() {
		var d model.Driver
		if err := rows.Scan(&d.ID, &d.Name, &d.ChatID); err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}
	return drivers, rows.Err()
}

func (r *SqliteDriverRepo) GetDriverByID(ctx context.Context, id int64) (model.Driver, error) {
	var d model.Driver
	err := r.db.QueryRowContext(ctx, `SELECT id, name, chat_id FROM drivers WHERE id = ?`, id).Scan(&d.ID, &d.Name, &d.ChatID)
	if errors.Is(err, sql.ErrNoRows) {
		return d, domain.ErrNotFound
	}
	return d, err
}

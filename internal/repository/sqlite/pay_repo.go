package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"driver-buddy/internal/domain"
	"driver-buddy/internal/model"
)

type SqlitePayRepo struct {
	db *sql.DB
}

func NewSqlitePayRepo(db *sql.DB) *SqlitePayRepo {
	return &SqlitePayRepo{db: db}
}

const payColumns = `id, date, timestamp, submission_time,
	standard_hours, standard_minutes, standard_rate, standard_pay,
	overtime_hours, overtime_minutes, overtime_rate, overtime_pay,
	total_pay, calculation_method,
	tax_amount, after_tax_pay, tax_rate, ni_amount, after_ni_pay, notes`

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// ListPays returns records in the order they were first saved.
func (r *SqlitePayRepo) ListPays(ctx context.Context, userID int64) ([]model.DailyPay, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+payColumns+` FROM pay_records WHERE user_id = ? ORDER BY rowid`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pays := []model.DailyPay{}
	for rows.Next() {
		var p model.DailyPay
		var tax, afterTax, taxRate, ni, afterNI sql.NullFloat64
		if err := rows.Scan(&p.ID, &p.Date, &p.Timestamp, &p.SubmissionTime,
			&p.StandardHours, &p.StandardMinutes, &p.StandardRate, &p.StandardPay,
			&p.OvertimeHours, &p.OvertimeMinutes, &p.OvertimeRate, &p.OvertimePay,
			&p.TotalPay, &p.CalculationMethod,
			&tax, &afterTax, &taxRate, &ni, &afterNI, &p.Notes); err != nil {
			return nil, err
		}
		p.TaxAmount = fromNull(tax)
		p.AfterTaxPay = fromNull(afterTax)
		p.TaxRate = fromNull(taxRate)
		p.NIAmount = fromNull(ni)
		p.AfterNIPay = fromNull(afterNI)
		pays = append(pays, p)
	}
	return pays, rows.Err()
}

// SavePay updates the record in place or inserts it when new.
func (r *SqlitePayRepo) SavePay(ctx context.Context, userID int64, p model.DailyPay) error {
	return upsertPay(ctx, r.db, userID, p)
}

// upsertPay updates the record in place and inserts it when no row matched.
func upsertPay(ctx context.Context, db execer, userID int64, p model.DailyPay) error {
	res, err := db.ExecContext(ctx, `UPDATE pay_records SET
		date = ?, timestamp = ?, submission_time = ?,
		standard_hours = ?, standard_minutes = ?, standard_rate = ?, standard_pay = ?,
		overtime_hours = ?, overtime_minutes = ?, overtime_rate = ?, overtime_pay = ?,
		total_pay = ?, calculation_method = ?,
		tax_amount = ?, after_tax_pay = ?, tax_rate = ?, ni_amount = ?, after_ni_pay = ?, notes = ?
		WHERE user_id = ? AND id = ?`,
		p.Date, p.Timestamp, p.SubmissionTime,
		p.StandardHours, p.StandardMinutes, p.StandardRate, p.StandardPay,
		p.OvertimeHours, p.OvertimeMinutes, p.OvertimeRate, p.OvertimePay,
		p.TotalPay, p.CalculationMethod,
		toNull(p.TaxAmount), toNull(p.AfterTaxPay), toNull(p.TaxRate), toNull(p.NIAmount), toNull(p.AfterNIPay), p.Notes,
		userID, p.ID,
	)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("save pay %s: %w", p.ID, err)
	}
	if rows == 0 {
		return insertPay(ctx, db, userID, p)
	}
	return nil
}

func insertPay(ctx context.Context, db execer, userID int64, p model.DailyPay) error {
	_, err := db.ExecContext(ctx, `INSERT INTO pay_records (user_id, `+payColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		userID, p.ID, p.Date, p.Timestamp, p.SubmissionTime,
		p.StandardHours, p.StandardMinutes, p.StandardRate, p.StandardPay,
		p.OvertimeHours, p.OvertimeMinutes, p.OvertimeRate, p.OvertimePay,
		p.TotalPay, p.CalculationMethod,
		toNull(p.TaxAmount), toNull(p.AfterTaxPay), toNull(p.TaxRate), toNull(p.NIAmount), toNull(p.AfterNIPay), p.Notes,
	)
	return err
}

func (r *SqlitePayRepo) DeletePay(ctx context.Context, userID int64, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pay_records WHERE user_id = ? AND id = ?`, userID, id)
	if err != nil {
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ReplacePays swaps the user's whole pay history in one transaction.
func (r *SqlitePayRepo) ReplacePays(ctx context.Context, userID int64, pays []model.DailyPay) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM pay_records WHERE user_id = ?`, userID); err != nil {
		return err
	}
	for _, p := range pays {
		if err := insertPay(ctx, tx, userID, p); err != nil {
			return fmt.Errorf("replace pay %s: %w", p.ID, err)
		}
	}
	return tx.Commit()
}

func toNull(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func fromNull(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

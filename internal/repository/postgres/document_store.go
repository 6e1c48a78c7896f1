package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"driver-buddy/internal/domain"
	"driver-buddy/internal/model"
)

const (
	collectionPays        = "dailyPay"
	collectionEntries     = "timeEntries"
	collectionSubmissions = "dailySubmissions"
)

const DefaultTimeout = 5 * time.Second

// DocumentStore keeps each record as a JSON document keyed by
// (user, collection, id). Writes are last-write-wins upserts.
type DocumentStore struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

func NewDocumentStore(pool *pgxpool.Pool, timeout time.Duration) *DocumentStore {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &DocumentStore{pool: pool, timeout: timeout}
}

type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

func (s *DocumentStore) list(ctx context.Context, userID int64, collection string, each func([]byte) error) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	rows, err := s.pool.Query(ctx,
		`SELECT body FROM documents WHERE user_id = $1 AND collection = $2 ORDER BY seq`,
		userID, collection)
	if err != nil {
		return fmt.Errorf("list %s: %w", collection, err)
	}
	defer rows.Close()
	for rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			return err
		}
		if err := each(body); err != nil {
			return fmt.Errorf("decode %s: %w", collection, err)
		}
	}
	return rows.Err()
}

func (s *DocumentStore) put(ctx context.Context, q querier, userID int64, collection, id string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = q.Exec(ctx, `
		INSERT INTO documents (user_id, collection, id, body)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, collection, id)
		DO UPDATE SET body = EXCLUDED.body, updated_at = NOW()`,
		userID, collection, id, string(body))
	if err != nil {
		return fmt.Errorf("put %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *DocumentStore) delete(ctx context.Context, userID int64, collection, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	tag, err := s.pool.Exec(ctx,
		`DELETE FROM documents WHERE user_id = $1 AND collection = $2 AND id = $3`,
		userID, collection, id)
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *DocumentStore) ListPays(ctx context.Context, userID int64) ([]model.DailyPay, error) {
	pays := []model.DailyPay{}
	err := s.list(ctx, userID, collectionPays, func(body []byte) error {
		var p model.DailyPay
		if err := json.Unmarshal(body, &p); err != nil {
			return err
		}
		pays = append(pays, p)
		return nil
	})
	return pays, err
}

func (s *DocumentStore) SavePay(ctx context.Context, userID int64, p model.DailyPay) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.put(ctx, s.pool, userID, collectionPays, p.ID, p)
}

func (s *DocumentStore) DeletePay(ctx context.Context, userID int64, id string) error {
	return s.delete(ctx, userID, collectionPays, id)
}

// ReplacePays rewrites the whole collection in one transaction.
func (s *DocumentStore) ReplacePays(ctx context.Context, userID int64, pays []model.DailyPay) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM documents WHERE user_id = $1 AND collection = $2`, userID, collectionPays); err != nil {
			return err
		}
		for _, p := range pays {
			if err := s.put(ctx, tx, userID, collectionPays, p.ID, p); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("replace %s: %w", collectionPays, err)
	}
	return nil
}

func (s *DocumentStore) ListEntries(ctx context.Context, userID int64) ([]model.TimeEntry, error) {
	entries := []model.TimeEntry{}
	err := s.list(ctx, userID, collectionEntries, func(body []byte) error {
		var e model.TimeEntry
		if err := json.Unmarshal(body, &e); err != nil {
			return err
		}
		entries = append(entries, e)
		return nil
	})
	return entries, err
}

// AddEntry assigns a time-based id, as the web client does.
func (s *DocumentStore) AddEntry(ctx context.Context, userID int64, e model.TimeEntry) (model.TimeEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	e.ID = time.Now().UnixNano()
	return e, s.put(ctx, s.pool, userID, collectionEntries, strconv.FormatInt(e.ID, 10), e)
}

func (s *DocumentStore) DeleteEntry(ctx context.Context, userID int64, id int64) error {
	return s.delete(ctx, userID, collectionEntries, strconv.FormatInt(id, 10))
}

func (s *DocumentStore) ClearEntries(ctx context.Context, userID int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	_, err := s.pool.Exec(ctx, `DELETE FROM documents WHERE user_id = $1 AND collection = $2`, userID, collectionEntries)
	return err
}

func (s *DocumentStore) ListSubmissions(ctx context.Context, userID int64) ([]model.DailySubmission, error) {
	subs := []model.DailySubmission{}
	err := s.list(ctx, userID, collectionSubmissions, func(body []byte) error {
		var sub model.DailySubmission
		if err := json.Unmarshal(body, &sub); err != nil {
			return err
		}
		subs = append(subs, sub)
		return nil
	})
	return subs, err
}

func (s *DocumentStore) AddSubmission(ctx context.Context, userID int64, sub model.DailySubmission) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.put(ctx, s.pool, userID, collectionSubmissions, uuid.NewString(), sub)
}

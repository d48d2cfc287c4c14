package repo

import (
	"context"
	"fmt"
	"time"

	dom "qbit/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MemoRepo provides per-day memo persistence.
type MemoRepo interface {
	Upsert(ctx context.Context, m dom.Memo) (dom.Memo, error)
	GetByDate(ctx context.Context, userID string, day time.Time) (dom.Memo, error)
	GetByID(ctx context.Context, userID, id string) (dom.Memo, error)
	List(ctx context.Context, userID string, day *time.Time) ([]dom.Memo, error)
	ListRange(ctx context.Context, userID string, from, to time.Time) ([]dom.Memo, error)
	Update(ctx context.Context, userID, id string, patch dom.Memo) (dom.Memo, error)
	Delete(ctx context.Context, userID, id string) error
}

const memoColumns = `id, user_id, scheduled_date, content, created_at, updated_at`

// PGMemoRepo implements MemoRepo with Postgres.
type PGMemoRepo struct {
	db *pgxpool.Pool
}

// NewPGMemoRepo returns a new PGMemoRepo.
func NewPGMemoRepo(db *pgxpool.Pool) *PGMemoRepo {
	return &PGMemoRepo{db: db}
}

// Upsert writes the memo of (user, day), replacing the content of an existing one.
func (r *PGMemoRepo) Upsert(ctx context.Context, m dom.Memo) (dom.Memo, error) {
	return upsertMemo(ctx, r.db, m)
}

func (r *PGMemoRepo) GetByDate(ctx context.Context, userID string, day time.Time) (dom.Memo, error) {
	query := `SELECT ` + memoColumns + ` FROM memos WHERE user_id = $1 AND scheduled_date = $2`
	return scanMemo(r.db.QueryRow(ctx, query, userID, day))
}

func (r *PGMemoRepo) GetByID(ctx context.Context, userID, id string) (dom.Memo, error) {
	query := `SELECT ` + memoColumns + ` FROM memos WHERE id = $1 AND user_id = $2`
	return scanMemo(r.db.QueryRow(ctx, query, id, userID))
}

func (r *PGMemoRepo) List(ctx context.Context, userID string, day *time.Time) ([]dom.Memo, error) {
	query := `SELECT ` + memoColumns + ` FROM memos WHERE user_id = $1`
	args := []any{userID}
	if day != nil {
		query += ` AND scheduled_date = $2`
		args = append(args, *day)
	}
	query += ` ORDER BY scheduled_date ASC`
	return r.queryMemos(ctx, query, args...)
}

func (r *PGMemoRepo) ListRange(ctx context.Context, userID string, from, to time.Time) ([]dom.Memo, error) {
	query := `SELECT ` + memoColumns + ` FROM memos
		WHERE user_id = $1 AND scheduled_date BETWEEN $2 AND $3 ORDER BY scheduled_date ASC`
	return r.queryMemos(ctx, query, userID, from, to)
}

func (r *PGMemoRepo) queryMemos(ctx context.Context, query string, args ...any) ([]dom.Memo, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list memos: %w", err)
	}
	defer rows.Close()
	list := []dom.Memo{}
	for rows.Next() {
		m, err := scanMemo(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func (r *PGMemoRepo) Update(ctx context.Context, userID, id string, patch dom.Memo) (dom.Memo, error) {
	query := `
		UPDATE memos SET scheduled_date = $3, content = $4, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + memoColumns
	return scanMemo(r.db.QueryRow(ctx, query, id, userID, patch.Date, patch.Content))
}

// Delete removes one memo. pgx.ErrNoRows when nothing matched.
func (r *PGMemoRepo) Delete(ctx context.Context, userID, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM memos WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanMemo(row pgx.Row) (dom.Memo, error) {
	var m dom.Memo
	err := row.Scan(&m.ID, &m.UserID, &m.Date, &m.Content, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

func upsertMemo(ctx context.Context, q querier, m dom.Memo) (dom.Memo, error) {
	stampNew(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	query := `
		INSERT INTO memos (` + memoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, scheduled_date) DO UPDATE SET
			content = EXCLUDED.content,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + memoColumns
	return scanMemo(q.QueryRow(ctx, query, m.ID, m.UserID, m.Date, m.Content, m.CreatedAt, m.UpdatedAt))
}

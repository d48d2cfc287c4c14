package repo

import (
	"context"
	"fmt"
	"strings"
	"time"

	dom "qbit/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TodoFilter narrows List. Zero values mean "no filter".
type TodoFilter struct {
	Date        *time.Time
	IsCompleted *bool
	Search      string
}

type TodoRepo interface {
	ListRange(ctx context.Context, userID string, from, to time.Time) ([]dom.Todo, error)
	List(ctx context.Context, userID string, f TodoFilter) ([]dom.Todo, error)
	CountRange(ctx context.Context, userID string, from, to time.Time) (int, error)
	// CompletedDays returns every distinct day with at least one completed todo.
	CompletedDays(ctx context.Context, userID string) ([]time.Time, error)
	GetByID(ctx context.Context, userID, id string) (dom.Todo, error)
	Create(ctx context.Context, t dom.Todo) (dom.Todo, error)
	Update(ctx context.Context, userID, id string, patch dom.Todo) (dom.Todo, error)
	MarkCompleted(ctx context.Context, userID, id string, done bool) (dom.Todo, error)
	Delete(ctx context.Context, userID, id string) error
	// InTx runs fn in one transaction; a non-nil error from fn rolls everything back.
	InTx(ctx context.Context, fn func(tx TodoTx) error) error
}

// TodoTx is the write surface available inside InTx.
type TodoTx interface {
	DeleteDay(ctx context.Context, userID string, day time.Time) (int64, error)
	InsertMany(ctx context.Context, todos []dom.Todo) ([]dom.Todo, error)
	UpsertMemo(ctx context.Context, m dom.Memo) (dom.Memo, error)
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

const todoColumns = `id, user_id, scheduled_date, title, description, is_completed, cert_id, created_at, updated_at`

type PGTodoRepo struct {
	db *pgxpool.Pool
}

func NewPGTodoRepo(db *pgxpool.Pool) *PGTodoRepo {
	return &PGTodoRepo{db: db}
}

func (r *PGTodoRepo) ListRange(ctx context.Context, userID string, from, to time.Time) ([]dom.Todo, error) {
	query := `
		SELECT ` + todoColumns + `
		FROM todos WHERE user_id = $1 AND scheduled_date BETWEEN $2 AND $3
		ORDER BY scheduled_date ASC, created_at ASC`
	rows, err := r.db.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	defer rows.Close()
	return scanTodoRows(rows)
}

func (r *PGTodoRepo) List(ctx context.Context, userID string, f TodoFilter) ([]dom.Todo, error) {
	where := []string{"user_id = $1"}
	args := []any{userID}
	if f.Date != nil {
		args = append(args, *f.Date)
		where = append(where, fmt.Sprintf("scheduled_date = $%d", len(args)))
	}
	if f.IsCompleted != nil {
		args = append(args, *f.IsCompleted)
		where = append(where, fmt.Sprintf("is_completed = $%d", len(args)))
	}
	if q := strings.TrimSpace(f.Search); q != "" {
		args = append(args, "%"+q+"%")
		where = append(where, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", len(args), len(args)))
	}
	query := `SELECT ` + todoColumns + ` FROM todos WHERE ` + strings.Join(where, " AND ") +
		` ORDER BY scheduled_date ASC, created_at ASC`
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	defer rows.Close()
	return scanTodoRows(rows)
}

func (r *PGTodoRepo) CountRange(ctx context.Context, userID string, from, to time.Time) (int, error) {
	var n int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM todos WHERE user_id = $1 AND scheduled_date BETWEEN $2 AND $3`,
		userID, from, to,
	).Scan(&n)
	return n, err
}

func (r *PGTodoRepo) CompletedDays(ctx context.Context, userID string) ([]time.Time, error) {
	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT scheduled_date FROM todos WHERE user_id = $1 AND is_completed`, userID)
	if err != nil {
		return nil, fmt.Errorf("completed days: %w", err)
	}
	defer rows.Close()
	var days []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, rows.Err()
}

func (r *PGTodoRepo) GetByID(ctx context.Context, userID, id string) (dom.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE id = $1 AND user_id = $2`
	return scanTodo(r.db.QueryRow(ctx, query, id, userID))
}

func (r *PGTodoRepo) Create(ctx context.Context, t dom.Todo) (dom.Todo, error) {
	stampNew(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	query := `
		INSERT INTO todos (` + todoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + todoColumns
	return scanTodo(r.db.QueryRow(ctx, query,
		t.ID, t.UserID, t.Date, t.Title, t.Description, t.IsCompleted, t.CertID, t.CreatedAt, t.UpdatedAt))
}

func (r *PGTodoRepo) Update(ctx context.Context, userID, id string, patch dom.Todo) (dom.Todo, error) {
	query := `
		UPDATE todos SET scheduled_date = $3, title = $4, description = $5, is_completed = $6, cert_id = $7, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + todoColumns
	return scanTodo(r.db.QueryRow(ctx, query,
		id, userID, patch.Date, patch.Title, patch.Description, patch.IsCompleted, patch.CertID))
}

func (r *PGTodoRepo) MarkCompleted(ctx context.Context, userID, id string, done bool) (dom.Todo, error) {
	query := `
		UPDATE todos SET is_completed = $3, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + todoColumns
	return scanTodo(r.db.QueryRow(ctx, query, id, userID, done))
}

// Delete removes one todo. pgx.ErrNoRows when nothing matched.
func (r *PGTodoRepo) Delete(ctx context.Context, userID, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM todos WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PGTodoRepo) InTx(ctx context.Context, fn func(tx TodoTx) error) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		return fn(&pgTodoTx{q: tx})
	})
}

type pgTodoTx struct {
	q querier
}

func (t *pgTodoTx) DeleteDay(ctx context.Context, userID string, day time.Time) (int64, error) {
	tag, err := t.q.Exec(ctx, `DELETE FROM todos WHERE user_id = $1 AND scheduled_date = $2`, userID, day)
	if err != nil {
		return 0, fmt.Errorf("delete day: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (t *pgTodoTx) InsertMany(ctx context.Context, todos []dom.Todo) ([]dom.Todo, error) {
	if len(todos) == 0 {
		return []dom.Todo{}, nil
	}
	out := make([]dom.Todo, len(todos))
	rows := make([][]any, len(todos))
	for i, td := range todos {
		stampNew(&td.ID, &td.CreatedAt, &td.UpdatedAt)
		out[i] = td
		rows[i] = []any{td.ID, td.UserID, td.Date, td.Title, td.Description, td.IsCompleted, td.CertID, td.CreatedAt, td.UpdatedAt}
	}
	columns := strings.Split(strings.ReplaceAll(todoColumns, " ", ""), ",")
	n, err := t.q.CopyFrom(ctx, pgx.Identifier{"todos"}, columns, pgx.CopyFromRows(rows))
	if err != nil {
		return nil, fmt.Errorf("insert todos: %w", err)
	}
	if int(n) != len(todos) {
		return nil, fmt.Errorf("insert todos: copied %d of %d rows", n, len(todos))
	}
	return out, nil
}

func (t *pgTodoTx) UpsertMemo(ctx context.Context, m dom.Memo) (dom.Memo, error) {
	return upsertMemo(ctx, t.q, m)
}

func scanTodo(row pgx.Row) (dom.Todo, error) {
	var t dom.Todo
	err := row.Scan(&t.ID, &t.UserID, &t.Date, &t.Title, &t.Description, &t.IsCompleted, &t.CertID,
		&t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func scanTodoRows(rows pgx.Rows) ([]dom.Todo, error) {
	list := []dom.Todo{}
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration: %w", err)
	}
	return list, nil
}

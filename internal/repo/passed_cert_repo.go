package repo

import (
	"context"
	"fmt"
	"strings"

	dom "qbit/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PassedCertFilter narrows List.
type PassedCertFilter struct {
	CertID string
	Type   dom.PassedCertType
}

type PassedCertRepo interface {
	List(ctx context.Context, userID string, f PassedCertFilter) ([]dom.PassedCert, error)
	GetByID(ctx context.Context, userID, id string) (dom.PassedCert, error)
	Create(ctx context.Context, p dom.PassedCert) (dom.PassedCert, error)
	Update(ctx context.Context, userID, id string, patch dom.PassedCert) (dom.PassedCert, error)
	Delete(ctx context.Context, userID, id string) error
}

const passedCertSelect = `
	SELECT p.id, p.user_id, p.cert_id, c.name, p.passed_date, p.score, p.type, p.memo, p.created_at, p.updated_at
	FROM passed_certs p JOIN certs c ON c.id = p.cert_id`

type PGPassedCertRepo struct {
	db *pgxpool.Pool
}

func NewPGPassedCertRepo(db *pgxpool.Pool) *PGPassedCertRepo {
	return &PGPassedCertRepo{db: db}
}

func (r *PGPassedCertRepo) List(ctx context.Context, userID string, f PassedCertFilter) ([]dom.PassedCert, error) {
	where := []string{"p.user_id = $1"}
	args := []any{userID}
	if f.CertID != "" {
		args = append(args, f.CertID)
		where = append(where, fmt.Sprintf("p.cert_id = $%d", len(args)))
	}
	if f.Type != "" {
		args = append(args, string(f.Type))
		where = append(where, fmt.Sprintf("p.type = $%d", len(args)))
	}
	query := passedCertSelect + ` WHERE ` + strings.Join(where, " AND ") + ` ORDER BY p.passed_date DESC, p.created_at DESC`
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list passed certs: %w", err)
	}
	defer rows.Close()
	list := []dom.PassedCert{}
	for rows.Next() {
		p, err := scanPassedCert(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *PGPassedCertRepo) GetByID(ctx context.Context, userID, id string) (dom.PassedCert, error) {
	return scanPassedCert(r.db.QueryRow(ctx, passedCertSelect+` WHERE p.id = $1 AND p.user_id = $2`, id, userID))
}

func (r *PGPassedCertRepo) Create(ctx context.Context, p dom.PassedCert) (dom.PassedCert, error) {
	stampNew(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	_, err := r.db.Exec(ctx, `
		INSERT INTO passed_certs (id, user_id, cert_id, passed_date, score, type, memo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.ID, p.UserID, p.CertID, p.PassedDate, p.Score, string(p.Type), p.Memo, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return dom.PassedCert{}, fmt.Errorf("create passed cert: %w", err)
	}
	return r.GetByID(ctx, p.UserID, p.ID)
}

func (r *PGPassedCertRepo) Update(ctx context.Context, userID, id string, patch dom.PassedCert) (dom.PassedCert, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE passed_certs SET cert_id = $3, passed_date = $4, score = $5, type = $6, memo = $7, updated_at = NOW()
		WHERE id = $1 AND user_id = $2`,
		id, userID, patch.CertID, patch.PassedDate, patch.Score, string(patch.Type), patch.Memo)
	if err != nil {
		return dom.PassedCert{}, fmt.Errorf("update passed cert: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return dom.PassedCert{}, pgx.ErrNoRows
	}
	return r.GetByID(ctx, userID, id)
}

func (r *PGPassedCertRepo) Delete(ctx context.Context, userID, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM passed_certs WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanPassedCert(row pgx.Row) (dom.PassedCert, error) {
	var p dom.PassedCert
	var typ string
	err := row.Scan(&p.ID, &p.UserID, &p.CertID, &p.CertName, &p.PassedDate, &p.Score, &typ, &p.Memo,
		&p.CreatedAt, &p.UpdatedAt)
	p.Type = dom.PassedCertType(typ)
	return p, err
}

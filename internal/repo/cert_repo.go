package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	dom "qbit/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CertFilter narrows Search. Keyword is a case-insensitive name substring; the rest match exactly.
type CertFilter struct {
	Keyword       string
	Agency        string
	Series        string
	ObligField    string
	MidObligField string
	Limit         int
}

// CertRepo provides the certification catalog and per-user reminders.
type CertRepo interface {
	Search(ctx context.Context, f CertFilter) ([]dom.Cert, error)
	GetByID(ctx context.Context, id string) (dom.Cert, error)
	ListByNames(ctx context.Context, names []string) ([]dom.Cert, error)
	// ListScheduled returns every cert with a non-empty exam schedule.
	ListScheduled(ctx context.Context) ([]dom.Cert, error)
	ListAll(ctx context.Context) ([]dom.Cert, error)
	// Upsert inserts or updates by code; inserted reports a new row.
	Upsert(ctx context.Context, c dom.Cert) (cert dom.Cert, inserted bool, err error)
	// SetSchedule replaces the schedule of every cert of the series run by agency.
	SetSchedule(ctx context.Context, agency, series string, rounds []dom.ExamRound) (int64, error)

	ListReminded(ctx context.Context, userID string) ([]dom.Cert, error)
	AddRemind(ctx context.Context, userID, certID string) error
	RemoveRemind(ctx context.Context, userID, certID string) error
}

const certColumns = `id, code, name, series_code, series_name, qual_type_code, qual_type_name, ` +
	`oblig_field_code, oblig_field_name, mid_oblig_field_code, mid_oblig_field_name, ` +
	`agency, outlook, schedule, created_at, updated_at`

// PGCertRepo implements CertRepo with Postgres.
type PGCertRepo struct {
	db *pgxpool.Pool
}

// NewPGCertRepo returns a new PGCertRepo.
func NewPGCertRepo(db *pgxpool.Pool) *PGCertRepo {
	return &PGCertRepo{db: db}
}

func (r *PGCertRepo) Search(ctx context.Context, f CertFilter) ([]dom.Cert, error) {
	var where []string
	var args []any
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}
	if kw := strings.TrimSpace(f.Keyword); kw != "" {
		add("name ILIKE $%d", "%"+kw+"%")
	}
	if f.Agency != "" {
		add("agency = $%d", f.Agency)
	}
	if f.Series != "" {
		add("series_name = $%d", f.Series)
	}
	if f.ObligField != "" {
		add("oblig_field_name = $%d", f.ObligField)
	}
	if f.MidObligField != "" {
		add("mid_oblig_field_name = $%d", f.MidObligField)
	}
	query := `SELECT ` + certColumns + ` FROM certs`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY name ASC`
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	return r.queryCerts(ctx, query, args...)
}

func (r *PGCertRepo) GetByID(ctx context.Context, id string) (dom.Cert, error) {
	return scanCert(r.db.QueryRow(ctx, `SELECT `+certColumns+` FROM certs WHERE id = $1`, id))
}

// ListByNames returns the certs named in names, in the order of names. Unknown names are skipped.
func (r *PGCertRepo) ListByNames(ctx context.Context, names []string) ([]dom.Cert, error) {
	list, err := r.queryCerts(ctx, `SELECT `+certColumns+` FROM certs WHERE name = ANY($1)`, names)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]dom.Cert, len(list))
	for _, c := range list {
		if _, ok := byName[c.Name]; !ok {
			byName[c.Name] = c
		}
	}
	out := make([]dom.Cert, 0, len(names))
	for _, n := range names {
		if c, ok := byName[n]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *PGCertRepo) ListScheduled(ctx context.Context) ([]dom.Cert, error) {
	return r.queryCerts(ctx, `SELECT `+certColumns+` FROM certs WHERE jsonb_array_length(schedule) > 0 ORDER BY name ASC`)
}

func (r *PGCertRepo) ListAll(ctx context.Context) ([]dom.Cert, error) {
	return r.queryCerts(ctx, `SELECT `+certColumns+` FROM certs ORDER BY name ASC`)
}

func (r *PGCertRepo) Upsert(ctx context.Context, c dom.Cert) (dom.Cert, bool, error) {
	stampNew(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if c.Schedule == nil {
		c.Schedule = []dom.ExamRound{}
	}
	scheduleJSON, err := json.Marshal(c.Schedule)
	if err != nil {
		return dom.Cert{}, false, fmt.Errorf("marshal schedule: %w", err)
	}
	query := `
		INSERT INTO certs (` + certColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14::jsonb, $15, $16)
		ON CONFLICT (code) DO UPDATE SET
			name = EXCLUDED.name,
			series_code = EXCLUDED.series_code,
			series_name = EXCLUDED.series_name,
			qual_type_code = EXCLUDED.qual_type_code,
			qual_type_name = EXCLUDED.qual_type_name,
			oblig_field_code = EXCLUDED.oblig_field_code,
			oblig_field_name = EXCLUDED.oblig_field_name,
			mid_oblig_field_code = EXCLUDED.mid_oblig_field_code,
			mid_oblig_field_name = EXCLUDED.mid_oblig_field_name,
			agency = EXCLUDED.agency,
			outlook = EXCLUDED.outlook,
			schedule = EXCLUDED.schedule,
			updated_at = EXCLUDED.updated_at
		RETURNING (xmax = 0) AS inserted, ` + certColumns
	row := r.db.QueryRow(ctx, query,
		c.ID, c.Code, c.Name, c.SeriesCode, c.SeriesName, c.QualTypeCode, c.QualTypeName,
		c.ObligFieldCode, c.ObligFieldName, c.MidObligFieldCode, c.MidObligFieldName,
		c.Agency, c.Outlook, string(scheduleJSON), c.CreatedAt, c.UpdatedAt)
	var inserted bool
	out, err := scanCertPrefixed(row, &inserted)
	return out, inserted, err
}

func (r *PGCertRepo) ListReminded(ctx context.Context, userID string) ([]dom.Cert, error) {
	query := `
		SELECT c.` + strings.ReplaceAll(certColumns, ", ", ", c.") + `
		FROM user_remind_certs rc JOIN certs c ON c.id = rc.cert_id
		WHERE rc.user_id = $1
		ORDER BY rc.created_at DESC`
	return r.queryCerts(ctx, query, userID)
}

func (r *PGCertRepo) SetSchedule(ctx context.Context, agency, series string, rounds []dom.ExamRound) (int64, error) {
	if rounds == nil {
		rounds = []dom.ExamRound{}
	}
	b, err := json.Marshal(rounds)
	if err != nil {
		return 0, fmt.Errorf("marshal schedule: %w", err)
	}
	tag, err := r.db.Exec(ctx,
		`UPDATE certs SET schedule = $1::jsonb, updated_at = NOW() WHERE agency = $2 AND series_name = $3`,
		b, agency, series)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// AddRemind is idempotent.
func (r *PGCertRepo) AddRemind(ctx context.Context, userID, certID string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO user_remind_certs (user_id, cert_id) VALUES ($1, $2)
		ON CONFLICT (user_id, cert_id) DO NOTHING`, userID, certID)
	return err
}

// RemoveRemind returns pgx.ErrNoRows when the cert was not on the list.
func (r *PGCertRepo) RemoveRemind(ctx context.Context, userID, certID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM user_remind_certs WHERE user_id = $1 AND cert_id = $2`, userID, certID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PGCertRepo) queryCerts(ctx context.Context, query string, args ...any) ([]dom.Cert, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query certs: %w", err)
	}
	defer rows.Close()
	list := []dom.Cert{}
	for rows.Next() {
		c, err := scanCert(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func scanCert(row pgx.Row) (dom.Cert, error) {
	return scanCertPrefixed(row)
}

// scanCertPrefixed scans certColumns after any leading destinations.
func scanCertPrefixed(row pgx.Row, lead ...any) (dom.Cert, error) {
	var c dom.Cert
	var scheduleJSON []byte
	dest := append(lead,
		&c.ID, &c.Code, &c.Name, &c.SeriesCode, &c.SeriesName, &c.QualTypeCode, &c.QualTypeName,
		&c.ObligFieldCode, &c.ObligFieldName, &c.MidObligFieldCode, &c.MidObligFieldName,
		&c.Agency, &c.Outlook, &scheduleJSON, &c.CreatedAt, &c.UpdatedAt)
	if err := row.Scan(dest...); err != nil {
		return dom.Cert{}, err
	}
	if err := json.Unmarshal(scheduleJSON, &c.Schedule); err != nil {
		c.Schedule = []dom.ExamRound{}
	}
	return c, nil
}

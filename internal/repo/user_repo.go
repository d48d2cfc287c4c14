package repo

import (
	"context"

	dom "qbit/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepo provides user persistence.
type UserRepo interface {
	GetByID(ctx context.Context, id string) (dom.User, error)
	// UpsertKakao inserts the user or refreshes its Kakao profile fields; created is true on insert.
	UpsertKakao(ctx context.Context, u dom.User) (user dom.User, created bool, err error)
	UpdateNickname(ctx context.Context, id, nickname string) (dom.User, error)
}

const userColumns = `id, kakao_id, email, nickname, profile_image, created_at, updated_at`

// PGUserRepo implements UserRepo with Postgres.
type PGUserRepo struct {
	db *pgxpool.Pool
}

// NewPGUserRepo returns a new PGUserRepo.
func NewPGUserRepo(db *pgxpool.Pool) *PGUserRepo {
	return &PGUserRepo{db: db}
}

// GetByID returns the user by id.
func (r *PGUserRepo) GetByID(ctx context.Context, id string) (dom.User, error) {
	var u dom.User
	err := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id).Scan(
		&u.ID, &u.KakaoID, &u.Email, &u.Nickname, &u.ProfileImage, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

// UpsertKakao keys users by kakao_id. The nickname chosen during onboarding is never overwritten.
func (r *PGUserRepo) UpsertKakao(ctx context.Context, u dom.User) (dom.User, bool, error) {
	stampNew(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (kakao_id) DO UPDATE SET
			email = CASE WHEN EXCLUDED.email <> '' THEN EXCLUDED.email ELSE users.email END,
			profile_image = EXCLUDED.profile_image,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + userColumns + `, (xmax = 0) AS inserted`
	var out dom.User
	var inserted bool
	err := r.db.QueryRow(ctx, query,
		u.ID, u.KakaoID, u.Email, u.Nickname, u.ProfileImage, u.CreatedAt, u.UpdatedAt,
	).Scan(&out.ID, &out.KakaoID, &out.Email, &out.Nickname, &out.ProfileImage, &out.CreatedAt, &out.UpdatedAt, &inserted)
	return out, inserted, err
}

// UpdateNickname sets the display name.
func (r *PGUserRepo) UpdateNickname(ctx context.Context, id, nickname string) (dom.User, error) {
	var u dom.User
	err := r.db.QueryRow(ctx,
		`UPDATE users SET nickname = $2, updated_at = NOW() WHERE id = $1 RETURNING `+userColumns,
		id, nickname,
	).Scan(&u.ID, &u.KakaoID, &u.Email, &u.Nickname, &u.ProfileImage, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

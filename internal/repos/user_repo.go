package repos

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"hooksaurus/internal/domain"
)

type UserRepo struct {
	db   sqlx.ExtContext
	Cost int // bcrypt cost for new passwords
}

func NewUserRepo(db sqlx.ExtContext) *UserRepo {
	return &UserRepo{db: db, Cost: bcrypt.DefaultCost}
}

const userColumns = `
    user_id, email, username, bio, role, image, password_hash,
    created_at, updated_at, etag`

func (r *UserRepo) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	var out []domain.User
	err := sqlx.SelectContext(ctx, r.db, &out, `SELECT`+userColumns+` FROM users`+newestFirst, limit, offset)
	return out, err
}

func (r *UserRepo) Get(ctx context.Context, id uuid.UUID) (domain.User, error) {
	var u domain.User
	err := sqlx.GetContext(ctx, r.db, &u, `SELECT`+userColumns+` FROM users WHERE user_id = ?`, id)
	return u, err
}

func (r *UserRepo) ByEmail(ctx context.Context, email string) (domain.User, error) {
	var u domain.User
	err := sqlx.GetContext(ctx, r.db, &u, `SELECT`+userColumns+` FROM users WHERE LOWER(email) = LOWER(?)`, email)
	return u, err
}

// Insert hashes password and stores u.
func (r *UserRepo) Insert(ctx context.Context, u *domain.User, password string) error {
	cost := r.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return err
	}
	u.Hash = string(h)
	stamp(&u.ID, &u.CreatedAt, &u.UpdatedAt, &u.Etag)
	_, err = sqlx.NamedExecContext(ctx, r.db, `
		INSERT INTO users (`+userColumns+`)
		VALUES (
		  :user_id, :email, :username, :bio, :role, :image, :password_hash,
		  :created_at, :updated_at, :etag)`, u)
	return err
}


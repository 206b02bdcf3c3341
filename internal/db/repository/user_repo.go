package repository

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository exposes the DB operations required by auth flows.
type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new account. A duplicate email surfaces as ErrConstraint.
func (r *UserRepository) Create(ctx context.Context, email, passwordHash string) (User, error) {
	var u User
	err := r.db.QueryRow(ctx,
		"INSERT INTO users (id, email, password_hash) VALUES ($1, $2, $3) RETURNING id, email, password_hash, created_at",
		uuid.New(), email, passwordHash,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return User{}, mapError("create user", err)
	}
	return u, nil
}

// GetByEmail fetches an account by email, ErrNotFound when missing.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := r.db.QueryRow(ctx,
		"SELECT id, email, password_hash, created_at FROM users WHERE email = $1", email,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return User{}, mapError("get user", err)
	}
	return u, nil
}

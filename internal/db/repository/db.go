package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of pgxpool.Pool the repositories need. A pgx.Tx also
// satisfies it, so repositories can run inside transactions unchanged.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Question is a row of the questions table.
type Question struct {
	ID         int32
	Question   string
	Answer     string
	Category   int32
	Difficulty int32
}

// Category is a row of the categories table.
type Category struct {
	ID   int32
	Type string
}

// User is a row of the users table.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

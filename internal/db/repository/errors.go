package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors returned by every repository. Handlers map these
// deterministically to response codes instead of guessing from raw
// driver errors.
var (
	// ErrNotFound means the requested row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConstraint means an integrity constraint rejected the write
	// (foreign key, unique, not-null, check).
	ErrConstraint = errors.New("constraint violation")
)

// mapError classifies a pgx error into the repository error taxonomy.
// Unclassified errors (connection failures and the like) pass through
// wrapped so callers treat them as internal.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && len(pgErr.Code) >= 2 && pgErr.Code[:2] == "23" {
		return fmt.Errorf("%s: %s: %w", op, pgErr.ConstraintName, ErrConstraint)
	}
	return fmt.Errorf("%s: %w", op, err)
}

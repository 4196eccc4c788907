package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jsamuelsen11/agency-site-api/internal/domain"
)

// mapError translates pgx errors into domain sentinels.
func (s *Store) mapError(op string, err error) error {
	if errors.Is(err, domain.ErrUnavailable) {
		return fmt.Errorf("%s: %w", op, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if s.conflictCodes[pgErr.Code] {
			return fmt.Errorf("%s: %w: %s", op, domain.ErrConflict, pgErr.ConstraintName)
		}
		switch pgErr.Code {
		case "23502", "23514", "22P02": // not_null, check, invalid_text_representation
			return fmt.Errorf("%s: %w: %s", op, domain.ErrValidation, pgErr.Message)
		}
	}

	return fmt.Errorf("%s: %w: %w", op, domain.ErrUnavailable, err)
}

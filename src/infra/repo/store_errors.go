package repo

import (
	"errors"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"jokesapi/src/core/domain"
)

// SQLSTATE codes the repository distinguishes. Codes sharing a class
// prefix (22 data exceptions, 08 connection exceptions) are matched by
// class.
const (
	codeUniqueViolation  = "23505"
	codeForeignKey       = "23503"
	codeNotNullViolation = "23502"

	// codeNoRows stands in for engine-raised missing rows (no_data_found);
	// pgx.ErrNoRows carries no SQLSTATE of its own.
	codeNoRows = "P0002"
)

// mapStoreError converts a pgx failure into the closed domain.StoreError
// variant set the HTTP layer translates. Errors it cannot classify pass
// through unchanged and surface as 500s.
func mapStoreError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return mapPgError(pgErr)
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return &domain.StoreError{
			Kind:    domain.StoreConnection,
			Message: err.Error(),
		}
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return &domain.StoreError{
			Kind:    domain.StoreNotFound,
			Code:    codeNoRows,
			Message: "record not found",
		}
	}

	return err
}

// mapPgError classifies a coded Postgres server error.
func mapPgError(pgErr *pgconn.PgError) *domain.StoreError {
	switch {
	case pgErr.Code == codeUniqueViolation:
		return &domain.StoreError{
			Kind:    domain.StoreUniqueViolation,
			Code:    pgErr.Code,
			Message: pgErr.Message,
			Fields:  constraintColumns(pgErr.ConstraintName),
		}
	case pgErr.Code == codeForeignKey:
		return &domain.StoreError{
			Kind:    domain.StoreForeignKey,
			Code:    pgErr.Code,
			Message: pgErr.Message,
		}
	case pgErr.Code == codeNotNullViolation:
		return &domain.StoreError{
			Kind:    domain.StoreRequiredRelation,
			Code:    pgErr.Code,
			Message: pgErr.Message,
		}
	case strings.HasPrefix(pgErr.Code, "22"):
		return &domain.StoreError{
			Kind:    domain.StoreInvalidData,
			Code:    pgErr.Code,
			Message: pgErr.Message,
		}
	case strings.HasPrefix(pgErr.Code, "08"):
		return &domain.StoreError{
			Kind:    domain.StoreConnection,
			Code:    pgErr.Code,
			Message: pgErr.Message,
		}
	default:
		return &domain.StoreError{
			Kind:    domain.StoreRequest,
			Code:    pgErr.Code,
			Message: pgErr.Message,
		}
	}
}

var uniqueKeyRe = regexp.MustCompile(`_([^_]+)_(?:key|ukey|idx)$`)

// constraintColumns infers the violating columns from a unique constraint
// name following the <table>_<column>_key convention. When the convention
// does not apply, the constraint name itself is reported.
func constraintColumns(constraint string) []string {
	if constraint == "" {
		return nil
	}
	if m := uniqueKeyRe.FindStringSubmatch(constraint); len(m) > 1 {
		return []string{m[1]}
	}
	return []string{constraint}
}

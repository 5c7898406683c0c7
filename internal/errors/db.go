package errors

import (
	"context"
	"errors"
	"regexp"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// reKeyField extracts the field name from a unique violation detail:
// "Key (field)=(value) already exists.".
var reKeyField = regexp.MustCompile(`Key \(([^)]+)\)=`)

// MapDBError maps database errors to AppError instances:
// pgx.ErrNoRows -> NotFound, unique violations -> Conflict, foreign key and
// check/not-null violations -> Validation, context errors -> Timeout or
// Canceled. Unrecognized errors are returned unchanged.
func MapDBError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &AppError{Code: ErrCodeTimeout, Message: "request timed out", Cause: err}
	}
	if errors.Is(err, context.Canceled) {
		return &AppError{Code: ErrCodeCanceled, Message: "request was canceled", Cause: err}
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return &AppError{Code: ErrCodeNotFound, Message: "resource not found", Cause: err}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return mapPgError(pgErr)
	}
	return err
}

func mapPgError(pgErr *pgconn.PgError) error {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		field := pgErr.ColumnName
		if field == "" {
			if m := reKeyField.FindStringSubmatch(pgErr.Detail); len(m) == 2 {
				field = m[1]
			}
		}
		return &AppError{
			Code:    ErrCodeConflict,
			Message: "this value already exists",
			Field:   field,
			Cause:   pgErr,
		}
	case pgerrcode.ForeignKeyViolation:
		return &AppError{
			Code:    ErrCodeValidation,
			Message: "referenced record does not exist or is still in use",
			Cause:   pgErr,
		}
	case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
		return &AppError{
			Code:    ErrCodeValidation,
			Message: "invalid value",
			Field:   pgErr.ColumnName,
			Cause:   pgErr,
		}
	default:
		return &AppError{Code: ErrCodeInternal, Message: "database error", Cause: pgErr}
	}
}

package errors

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	plain := NotFound("organization not found")
	assert.Equal(t, "organization not found", plain.Error())

	wrapped := Internal("loading settings failed", errors.New("boom"))
	assert.Equal(t, "loading settings failed: boom", wrapped.Error())
	assert.Equal(t, "boom", errors.Unwrap(wrapped).Error())
}

func TestIsCode(t *testing.T) {
	err := Unauthorized("missing session")
	assert.True(t, IsCode(err, ErrCodeUnauthorized))
	assert.False(t, IsCode(err, ErrCodeForbidden))
	assert.False(t, IsCode(errors.New("plain"), ErrCodeUnauthorized))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrCodeValidation, CodeOf(ValidationField("email", "invalid email")))
	assert.Equal(t, ErrCodeInternal, CodeOf(errors.New("plain")))
}

func TestMapDBError(t *testing.T) {
	tests := []struct {
		name     string
		in       error
		wantCode ErrorCode
	}{
		{"no rows", pgx.ErrNoRows, ErrCodeNotFound},
		{"deadline", context.DeadlineExceeded, ErrCodeTimeout},
		{"canceled", context.Canceled, ErrCodeCanceled},
		{"unique", &pgconn.PgError{Code: pgerrcode.UniqueViolation}, ErrCodeConflict},
		{"foreign key", &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, ErrCodeValidation},
		{"check", &pgconn.PgError{Code: pgerrcode.CheckViolation}, ErrCodeValidation},
		{"unknown pg", &pgconn.PgError{Code: pgerrcode.AdminShutdown}, ErrCodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := MapDBError(tt.in)
			var appErr *AppError
			require.ErrorAs(t, mapped, &appErr)
			assert.Equal(t, tt.wantCode, appErr.Code)
		})
	}
}

func TestMapDBError_UniqueViolationField(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:   pgerrcode.UniqueViolation,
		Detail: "Key (subdomain)=(northside) already exists.",
	}
	mapped := MapDBError(pgErr)
	var appErr *AppError
	require.ErrorAs(t, mapped, &appErr)
	assert.Equal(t, "subdomain", appErr.Field)
}

func TestMapDBError_PassThrough(t *testing.T) {
	assert.Nil(t, MapDBError(nil))
	plain := errors.New("not a db error")
	assert.Same(t, plain, MapDBError(plain))
}

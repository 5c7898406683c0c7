package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/campushq/campushq-api/internal/data/pgxutil"
	"github.com/campushq/campushq-api/internal/domain/model"
)

const studentColumns = `id, org_id, first_name, last_name, email, date_of_birth, created_at`

// StudentRepo provides database operations for students.
type StudentRepo struct {
	DB *sql.DB
}

// NewStudentRepo creates a new StudentRepo.
func NewStudentRepo(db *sql.DB) *StudentRepo {
	return &StudentRepo{DB: db}
}

// Create inserts a new student.
func (r *StudentRepo) Create(ctx context.Context, req *model.CreateStudentRequest) (*model.Student, error) {
	if req == nil {
		return nil, errors.New("create student request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	dob, err := req.ParseDateOfBirth()
	if err != nil {
		return nil, err
	}

	var out model.Student
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, qerr := conn.Query(ctx, `
			INSERT INTO students (org_id, first_name, last_name, email, date_of_birth)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING `+studentColumns,
			req.OrgID,
			strings.TrimSpace(req.FirstName),
			strings.TrimSpace(req.LastName),
			strings.ToLower(strings.TrimSpace(req.Email)),
			dob,
		)
		if qerr != nil {
			return qerr
		}
		defer rows.Close()
		out, qerr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Student])
		return qerr
	}); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, ErrStudentEmailExists
		}
		return nil, fmt.Errorf("create student: %w", err)
	}
	return &out, nil
}

// GetByID retrieves a student by ID.
func (r *StudentRepo) GetByID(ctx context.Context, id string) (*model.Student, error) {
	return r.getOne(ctx, `SELECT `+studentColumns+` FROM students WHERE id = $1`, id)
}

// FindByOrgAndFirstName resolves the student login username convention
// "<org_id>-<first_name>". First names are matched case-insensitively; the
// first enrolled match wins, mirroring the legacy credential path.
func (r *StudentRepo) FindByOrgAndFirstName(ctx context.Context, orgID, firstName string) (*model.Student, error) {
	return r.getOne(ctx, `
		SELECT `+studentColumns+` FROM students
		WHERE org_id = $1 AND LOWER(first_name) = LOWER($2)
		ORDER BY created_at LIMIT 1`,
		orgID, strings.TrimSpace(firstName))
}

// List retrieves an organization's students ordered by last name.
func (r *StudentRepo) List(ctx context.Context, orgID string) ([]model.Student, error) {
	var out []model.Student
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+studentColumns+` FROM students
			WHERE org_id = $1 ORDER BY last_name, first_name`, orgID)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Student])
		return err
	}); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return out, nil
}

// Delete removes a student.
func (r *StudentRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete student rows affected: %w", err)
	}
	if n == 0 {
		return ErrStudentNotFound
	}
	return nil
}

func (r *StudentRepo) getOne(ctx context.Context, query string, args ...any) (*model.Student, error) {
	var out model.Student
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Student])
		return err
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("get student: %w", err)
	}
	return &out, nil
}

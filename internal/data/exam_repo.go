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

const (
	examColumns   = `id, org_id, name, subject, exam_date, max_score, created_at`
	resultColumns = `id, exam_id, student_id, score, grade, recorded_at`
)

// ExamRepo provides database operations for exams and their results.
type ExamRepo struct {
	DB *sql.DB
}

// NewExamRepo creates a new ExamRepo.
func NewExamRepo(db *sql.DB) *ExamRepo {
	return &ExamRepo{DB: db}
}

// CreateExam inserts a new exam.
func (r *ExamRepo) CreateExam(ctx context.Context, req *model.CreateExamRequest) (*model.Exam, error) {
	if req == nil {
		return nil, errors.New("create exam request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	examDate, err := req.ParseExamDate()
	if err != nil {
		return nil, err
	}

	var out model.Exam
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, qerr := conn.Query(ctx, `
			INSERT INTO exams (org_id, name, subject, exam_date, max_score)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING `+examColumns,
			req.OrgID, strings.TrimSpace(req.Name), req.Subject, examDate, req.MaxScore,
		)
		if qerr != nil {
			return qerr
		}
		defer rows.Close()
		out, qerr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Exam])
		return qerr
	}); err != nil {
		return nil, fmt.Errorf("create exam: %w", err)
	}
	return &out, nil
}

// GetExam retrieves an exam by ID.
func (r *ExamRepo) GetExam(ctx context.Context, id string) (*model.Exam, error) {
	var out model.Exam
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+examColumns+` FROM exams WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Exam])
		return err
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExamNotFound
		}
		return nil, fmt.Errorf("get exam: %w", err)
	}
	return &out, nil
}

// ListExams retrieves an organization's exams ordered by date, newest first.
func (r *ExamRepo) ListExams(ctx context.Context, orgID string) ([]model.Exam, error) {
	var out []model.Exam
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+examColumns+` FROM exams WHERE org_id = $1 ORDER BY exam_date DESC`, orgID)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Exam])
		return err
	}); err != nil {
		return nil, fmt.Errorf("list exams: %w", err)
	}
	return out, nil
}

// CreateResult records a student's score for an exam. One result per
// student and exam; duplicates surface as ErrResultExists.
func (r *ExamRepo) CreateResult(ctx context.Context, examID string, req *model.CreateResultRequest) (*model.ExamResult, error) {
	if req == nil {
		return nil, errors.New("create result request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.ExamResult
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, qerr := conn.Query(ctx, `
			INSERT INTO exam_results (exam_id, student_id, score, grade)
			VALUES ($1, $2, $3, $4)
			RETURNING `+resultColumns,
			examID, req.StudentID, req.Score, req.Grade,
		)
		if qerr != nil {
			return qerr
		}
		defer rows.Close()
		out, qerr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.ExamResult])
		return qerr
	}); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.UniqueViolation:
				return nil, ErrResultExists
			case pgerrcode.ForeignKeyViolation:
				return nil, ErrExamNotFound
			}
		}
		return nil, fmt.Errorf("create result: %w", err)
	}
	return &out, nil
}

// ListResultsByExam retrieves all recorded results for an exam.
func (r *ExamRepo) ListResultsByExam(ctx context.Context, examID string) ([]model.ExamResult, error) {
	return r.listResults(ctx,
		`SELECT `+resultColumns+` FROM exam_results WHERE exam_id = $1 ORDER BY recorded_at`, examID)
}

// ListResultsByStudent retrieves a student's results across exams.
func (r *ExamRepo) ListResultsByStudent(ctx context.Context, studentID string) ([]model.ExamResult, error) {
	return r.listResults(ctx,
		`SELECT `+resultColumns+` FROM exam_results WHERE student_id = $1 ORDER BY recorded_at DESC`, studentID)
}

func (r *ExamRepo) listResults(ctx context.Context, query, arg string) ([]model.ExamResult, error) {
	var out []model.ExamResult
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, arg)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.ExamResult])
		return err
	}); err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	return out, nil
}

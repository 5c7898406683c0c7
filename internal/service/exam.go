package service

import (
	"context"
	"errors"

	"github.com/campushq/campushq-api/internal/core"
	"github.com/campushq/campushq-api/internal/domain/model"
)

// ExamServiceOptions groups dependencies for ExamService.
type ExamServiceOptions struct {
	Exams core.ExamRepository
}

// ExamService manages exams and recorded results.
type ExamService struct {
	exams core.ExamRepository
}

// NewExamService constructs a new ExamService.
func NewExamService(opts ExamServiceOptions) *ExamService {
	return &ExamService{exams: opts.Exams}
}

// CreateExam schedules an exam.
func (s *ExamService) CreateExam(ctx context.Context, req *model.CreateExamRequest) (*model.Exam, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.exams.CreateExam(ctx, req)
}

// GetExam retrieves an exam by ID.
func (s *ExamService) GetExam(ctx context.Context, id string) (*model.Exam, error) {
	return s.exams.GetExam(ctx, id)
}

// ListExams returns an organization's exams.
func (s *ExamService) ListExams(ctx context.Context, orgID string) ([]model.Exam, error) {
	return s.exams.ListExams(ctx, orgID)
}

// RecordResult records one student's score for an exam. When no letter grade
// is supplied it is derived from the score against the exam's max score.
func (s *ExamService) RecordResult(ctx context.Context, examID string, req *model.CreateResultRequest) (*model.ExamResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	exam, err := s.exams.GetExam(ctx, examID)
	if err != nil {
		return nil, err
	}
	if req.Score > exam.MaxScore {
		return nil, errors.New("score cannot exceed the exam's max score")
	}
	if req.Grade == "" {
		req.Grade = gradeFor(req.Score, exam.MaxScore)
	}

	return s.exams.CreateResult(ctx, examID, req)
}

// ListResultsByExam returns the recorded results for an exam.
func (s *ExamService) ListResultsByExam(ctx context.Context, examID string) ([]model.ExamResult, error) {
	return s.exams.ListResultsByExam(ctx, examID)
}

// ListResultsByStudent returns a student's recorded results.
func (s *ExamService) ListResultsByStudent(ctx context.Context, studentID string) ([]model.ExamResult, error) {
	return s.exams.ListResultsByStudent(ctx, studentID)
}

// gradeFor maps a score percentage to a letter grade.
func gradeFor(score, maxScore int) string {
	if maxScore <= 0 {
		return ""
	}
	pct := score * 100 / maxScore
	switch {
	case pct >= 90:
		return "A"
	case pct >= 80:
		return "B"
	case pct >= 70:
		return "C"
	case pct >= 60:
		return "D"
	default:
		return "F"
	}
}

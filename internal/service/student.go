package service

import (
	"context"

	"github.com/campushq/campushq-api/internal/core"
	"github.com/campushq/campushq-api/internal/domain/model"
)

// StudentServiceOptions groups dependencies for StudentService.
type StudentServiceOptions struct {
	Students core.StudentRepository
}

// StudentService manages student records for the admin portal.
type StudentService struct {
	students core.StudentRepository
}

// NewStudentService constructs a new StudentService.
func NewStudentService(opts StudentServiceOptions) *StudentService {
	return &StudentService{students: opts.Students}
}

// Create enrolls a student.
func (s *StudentService) Create(ctx context.Context, req *model.CreateStudentRequest) (*model.Student, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.students.Create(ctx, req)
}

// GetByID retrieves a student by ID.
func (s *StudentService) GetByID(ctx context.Context, id string) (*model.Student, error) {
	return s.students.GetByID(ctx, id)
}

// List returns an organization's students.
func (s *StudentService) List(ctx context.Context, orgID string) ([]model.Student, error) {
	return s.students.List(ctx, orgID)
}

// Delete removes a student.
func (s *StudentService) Delete(ctx context.Context, id string) error {
	return s.students.Delete(ctx, id)
}

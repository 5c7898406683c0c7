//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
)

// Exam is one scheduled exam for a tenant.
type Exam struct {
	ID        string    `json:"id"         db:"id"`
	OrgID     string    `json:"org_id"     db:"org_id"`
	Name      string    `json:"name"       db:"name"`
	Subject   string    `json:"subject"    db:"subject"`
	ExamDate  time.Time `json:"exam_date"  db:"exam_date"`
	MaxScore  int       `json:"max_score"  db:"max_score"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CreateExamRequest carries input for creating an exam.
type CreateExamRequest struct {
	OrgID    string `json:"org_id"`
	Name     string `json:"name"`
	Subject  string `json:"subject"`
	ExamDate string `json:"exam_date"` // ISO date, YYYY-MM-DD
	MaxScore int    `json:"max_score"`
}

// Validate checks required fields.
func (r *CreateExamRequest) Validate() error {
	if strings.TrimSpace(r.OrgID) == "" {
		return errors.New("org_id is required")
	}
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	if _, err := time.Parse("2006-01-02", r.ExamDate); err != nil {
		return errors.New("exam_date must be an ISO date (YYYY-MM-DD)")
	}
	if r.MaxScore <= 0 {
		return errors.New("max_score must be positive")
	}
	return nil
}

// ParseExamDate returns the request's exam date as a time.Time. Call
// Validate first.
func (r *CreateExamRequest) ParseExamDate() (time.Time, error) {
	return time.Parse("2006-01-02", r.ExamDate)
}

// ExamResult is one student's recorded score for an exam.
type ExamResult struct {
	ID         string    `json:"id"          db:"id"`
	ExamID     string    `json:"exam_id"     db:"exam_id"`
	StudentID  string    `json:"student_id"  db:"student_id"`
	Score      int       `json:"score"       db:"score"`
	Grade      string    `json:"grade"       db:"grade"`
	RecordedAt time.Time `json:"recorded_at" db:"recorded_at"`
}

// CreateResultRequest carries input for recording an exam result.
type CreateResultRequest struct {
	StudentID string `json:"student_id"`
	Score     int    `json:"score"`
	Grade     string `json:"grade"`
}

// Validate checks required fields.
func (r *CreateResultRequest) Validate() error {
	if strings.TrimSpace(r.StudentID) == "" {
		return errors.New("student_id is required")
	}
	if r.Score < 0 {
		return errors.New("score cannot be negative")
	}
	return nil
}

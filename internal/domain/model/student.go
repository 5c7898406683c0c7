//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
)

// Student is one enrolled student record. DateOfBirth doubles as the
// credential for the student login path (compared as DD/MM/YYYY).
type Student struct {
	ID          string    `json:"id"            db:"id"`
	OrgID       string    `json:"org_id"        db:"org_id"`
	FirstName   string    `json:"first_name"    db:"first_name"`
	LastName    string    `json:"last_name"     db:"last_name"`
	Email       string    `json:"email"         db:"email"`
	DateOfBirth time.Time `json:"date_of_birth" db:"date_of_birth"`
	CreatedAt   time.Time `json:"created_at"    db:"created_at"`
}

// Username returns the conventional login username, "<org_id>-<first_name>".
func (s Student) Username() string {
	return s.OrgID + "-" + s.FirstName
}

// CreateStudentRequest carries input for creating a student.
type CreateStudentRequest struct {
	OrgID       string `json:"org_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	DateOfBirth string `json:"date_of_birth"` // ISO date, YYYY-MM-DD
}

// Validate checks required fields and the date format.
func (r *CreateStudentRequest) Validate() error {
	if strings.TrimSpace(r.OrgID) == "" {
		return errors.New("org_id is required")
	}
	if strings.TrimSpace(r.FirstName) == "" {
		return errors.New("first_name is required")
	}
	if strings.TrimSpace(r.LastName) == "" {
		return errors.New("last_name is required")
	}
	if _, err := time.Parse("2006-01-02", r.DateOfBirth); err != nil {
		return errors.New("date_of_birth must be an ISO date (YYYY-MM-DD)")
	}
	return nil
}

// ParseDateOfBirth returns the request's date of birth as a time.Time. Call
// Validate first.
func (r *CreateStudentRequest) ParseDateOfBirth() (time.Time, error) {
	return time.Parse("2006-01-02", r.DateOfBirth)
}

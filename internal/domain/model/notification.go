//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const maxNotificationTitleLen = 255

// NotificationAudience scopes who a notification is shown to.
type NotificationAudience string

const (
	AudienceAll      NotificationAudience = "all"
	AudienceStudents NotificationAudience = "students"
	AudienceTeachers NotificationAudience = "teachers"
)

// Valid reports whether the audience is supported.
func (a NotificationAudience) Valid() bool {
	switch a {
	case AudienceAll, AudienceStudents, AudienceTeachers:
		return true
	default:
		return false
	}
}

// ParseNotificationAudience normalizes an audience string, defaulting to
// "all" when empty, and reports whether it is supported.
func ParseNotificationAudience(value string) (NotificationAudience, bool) {
	a := NotificationAudience(strings.ToLower(strings.TrimSpace(value)))
	if a == "" {
		return AudienceAll, true
	}
	if a.Valid() {
		return a, true
	}
	return "", false
}

// Notification is one tenant announcement.
type Notification struct {
	ID        string               `json:"id"         db:"id"`
	OrgID     string               `json:"org_id"     db:"org_id"`
	Title     string               `json:"title"      db:"title"`
	Body      string               `json:"body"       db:"body"`
	Audience  NotificationAudience `json:"audience"   db:"audience"`
	CreatedAt time.Time            `json:"created_at" db:"created_at"`
	UpdatedAt time.Time            `json:"updated_at" db:"updated_at"`
}

// CreateNotificationRequest carries input for creating a notification.
type CreateNotificationRequest struct {
	OrgID    string `json:"org_id"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Audience string `json:"audience"`
}

// Validate checks required fields and bounds.
func (r *CreateNotificationRequest) Validate() error {
	if strings.TrimSpace(r.OrgID) == "" {
		return errors.New("org_id is required")
	}
	title := strings.TrimSpace(r.Title)
	if title == "" {
		return errors.New("title is required")
	}
	if utf8.RuneCountInString(title) > maxNotificationTitleLen {
		return errors.New("title must be at most 255 characters")
	}
	if _, ok := ParseNotificationAudience(r.Audience); !ok {
		return errors.New("audience must be one of: all, students, teachers")
	}
	return nil
}

// UpdateNotificationRequest carries partial updates for a notification.
// Nil fields are left unchanged.
type UpdateNotificationRequest struct {
	Title    *string `json:"title"`
	Body     *string `json:"body"`
	Audience *string `json:"audience"`
}

// Validate checks any provided fields.
func (r *UpdateNotificationRequest) Validate() error {
	if r.Title != nil {
		title := strings.TrimSpace(*r.Title)
		if title == "" {
			return errors.New("title cannot be empty")
		}
		if utf8.RuneCountInString(title) > maxNotificationTitleLen {
			return errors.New("title must be at most 255 characters")
		}
	}
	if r.Audience != nil {
		if _, ok := ParseNotificationAudience(*r.Audience); !ok {
			return errors.New("audience must be one of: all, students, teachers")
		}
	}
	return nil
}

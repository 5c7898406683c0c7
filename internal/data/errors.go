package data

import "errors"

// Shared sentinel errors for data-layer repositories.
var (
	ErrOrgNotFound          = errors.New("organization not found")
	ErrStudentNotFound      = errors.New("student not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrSettingsNotFound     = errors.New("school settings not found")
	ErrExamNotFound         = errors.New("exam not found")

	ErrSubdomainExists    = errors.New("subdomain already exists")
	ErrStudentEmailExists = errors.New("student email already exists")
	ErrResultExists       = errors.New("result already recorded for this student and exam")
)

package auth

import "strings"

// Permission keys recognized by the role resolver. The upstream identity
// service has produced several spellings over time; all are honored here so
// that every caller derives the same role from the same profile.
const (
	facultyType = "faculty"

	permAdmin      = "admin"
	permOrgAdmin   = "organization_admin"
	permOrg        = "org"
	permTeacher    = "teacher"
	permInstructor = "instructor"

	teamPermPrefix = "team-"
)

// ResolveRole maps a normalized account type and permission map to exactly
// one application role. Precedence, highest first:
//
//  1. account type "faculty" -> teacher (checked before any permission)
//  2. permission key "admin", "organization_admin", or "org" -> admin
//  3. permission key "teacher", "instructor", or any "team-*" key -> teacher
//  4. otherwise -> student
//
// This is the only role derivation in the codebase; login handlers, the
// token handoff path, and the dashboard gate must all call it rather than
// inspecting permissions inline.
func ResolveRole(accountType string, permissions map[string]string) Role {
	if strings.EqualFold(accountType, facultyType) {
		return RoleTeacher
	}
	for key := range permissions {
		switch key {
		case permAdmin, permOrgAdmin, permOrg:
			return RoleAdmin
		}
	}
	for key := range permissions {
		if key == permTeacher || key == permInstructor || strings.HasPrefix(key, teamPermPrefix) {
			return RoleTeacher
		}
	}
	return RoleStudent
}

// DashboardPath returns the dashboard route for a role. Unknown roles fall
// back to the student dashboard, the least privileged variant.
func DashboardPath(r Role) string {
	switch r {
	case RoleAdmin:
		return "/dashboard"
	case RoleTeacher:
		return "/teacher-dashboard"
	case RoleStudent:
		return "/student-dashboard"
	default:
		return "/student-dashboard"
	}
}

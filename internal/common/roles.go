// File: internal/common/roles.go
package common

// User roles. New accounts default to RoleStudent; RoleAlumni is only set by
// the alumni-profile workflow and RoleAdmin is provisioned out of band.
const (
	RoleStudent = "STUDENT"
	RoleAlumni  = "ALUMNI"
	RoleAdmin   = "ADMIN"
)

// IsValidRole reports whether role is one of the known user roles.
func IsValidRole(role string) bool {
	switch role {
	case RoleStudent, RoleAlumni, RoleAdmin:
		return true
	}
	return false
}

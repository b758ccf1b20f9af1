package constants

// Role is the closed set of account roles. Authorization decisions branch on
// this type at the route-group boundary, never on raw strings in handlers.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return Role(s), true
	default:
		return "", false
	}
}

func (r Role) String() string { return string(r) }

// IsStaff reports whether the role may grade, award points or manage content.
func (r Role) IsStaff() bool {
	return r == RoleTeacher || r == RoleAdmin
}

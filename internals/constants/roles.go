package constants

// Roles carried by the seeded accounts
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
)

// ==========================
// ✅ Seed accounts
// ==========================
const (
	AdminUID     = "admin123uid"
	AdminEmail   = "admin@attendancemarkin.com"
	TeacherUID   = "teacher123uid"
	TeacherEmail = "teacher@attendancemarkin.com"
)

var AllRoles = []string{
	RoleAdmin,
	RoleTeacher,
}

// IsKnownRole reports whether role is one of AllRoles.
func IsKnownRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

package entity

type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleSuperadmin UserRole = "superadmin"
)

// AtLeast is the single authorization policy check. Superadmin is a strict
// superset of admin; both route guards and handlers go through this.
func (r UserRole) AtLeast(required UserRole) bool {
	if r == RoleSuperadmin {
		return true
	}
	return r == required
}

type User struct {
	Base
	Username     string   `db:"username"`
	PasswordHash string   `db:"password"`
	Role         UserRole `db:"role"`
}

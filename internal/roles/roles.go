package roles

import "strings"

// Role governs which views and mutations a principal may perform.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleMechanic Role = "mechanic"

	// RoleNone means "not authenticated". Callers must treat it as a
	// redirect to login, never as a third role.
	RoleNone Role = ""
)

func Normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Resolve derives the role from an authenticated email. Pure and total:
// the single mechanic address maps to mechanic, every other address is a
// customer. No stored role field is ever consulted.
func Resolve(email, mechanicEmail string) Role {
	e := Normalize(email)
	if e == "" {
		return RoleNone
	}
	if e == Normalize(mechanicEmail) {
		return RoleMechanic
	}
	return RoleCustomer
}

package models

import (
	"fmt"
	"strings"
)

// Role is the account permission level. Stored on the account document as a
// plain string.
type Role string

const (
	RoleSuperAdmin Role = "SuperAdmin"
	RoleAdmin      Role = "Admin"
	RoleUser       Role = "User"
)

// Roles lists every assignable role.
var Roles = []Role{RoleSuperAdmin, RoleAdmin, RoleUser}

func ParseRole(s string) (Role, error) {
	for _, r := range Roles {
		if strings.EqualFold(string(r), s) {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown role: %q", s)
}

func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleUser:
		return true
	}
	return false
}

// IsStaff reports whether the role grants access to the admin surface.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// CanAssign decides whether an account with the acting role may change the
// target account's role to next. SuperAdmins may do anything; Admins may not
// touch SuperAdmins and may only hand out Admin or User; Users assign nothing.
func CanAssign(acting, target, next Role) bool {
	if !next.Valid() {
		return false
	}
	switch acting {
	case RoleSuperAdmin:
		return true
	case RoleAdmin:
		if target == RoleSuperAdmin {
			return false
		}
		return next == RoleAdmin || next == RoleUser
	default:
		return false
	}
}

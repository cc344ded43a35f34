package kernel

import "strings"

// Role is the capacity in which an authenticated caller acts.
type Role string

const (
	RoleUnknown Role = ""
	RoleSeller  Role = "SELLER"
	RoleBuyer   Role = "BUYER"
	RoleCourier Role = "COURIER"
)

// ParseRole accepts both bare names and the "ROLE_" authority form, in any
// case. Anything else maps to RoleUnknown rather than an error: callers with
// an unknown role simply see no orders.
func ParseRole(s string) Role {
	name := strings.ToUpper(strings.TrimSpace(s))
	name = strings.TrimPrefix(name, "ROLE_")

	switch Role(name) {
	case RoleSeller, RoleBuyer, RoleCourier:
		return Role(name)
	default:
		return RoleUnknown
	}
}

func (r Role) String() string {
	if r == RoleUnknown {
		return "UNKNOWN"
	}
	return string(r)
}

// IsOneOf reports whether r matches any of roles.
func (r Role) IsOneOf(roles ...Role) bool {
	for _, candidate := range roles {
		if r != RoleUnknown && r == candidate {
			return true
		}
	}
	return false
}

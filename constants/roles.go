package constants

// Canonical role labels. Input is matched case-insensitively and normalized
// to these forms before it reaches the store.
const (
	RoleSalesAssociate   = "Sales Associate"
	RoleAccountExecutive = "Account Executive"
	RoleSalesManager     = "Sales Manager"
	RoleRegionalDirector = "Regional Director"
)

// Roles is the closed set of roles a user can hold.
var Roles = []string{
	RoleSalesAssociate,
	RoleAccountExecutive,
	RoleSalesManager,
	RoleRegionalDirector,
}

// IsRole reports whether role is one of the canonical role labels.
func IsRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

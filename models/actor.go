package models

// Staff roles recognized by the authorization middleware. Tokens are issued by
// the auth service; this service only consumes them.
const (
	RoleClerk     = "clerk"
	RoleDoctor    = "doctor"
	RoleNurse     = "nurse"
	RoleParamedic = "paramedic"
	RoleAdmin     = "admin"
	RoleClinician = "clinician"
)

// StaffRoles returns every role allowed to read scheduling data.
func StaffRoles() []string {
	return []string{RoleClerk, RoleDoctor, RoleNurse, RoleParamedic, RoleAdmin, RoleClinician}
}

// Actor identifies the authenticated caller of a write operation.
type Actor struct {
	UserID string
	Role   string
}

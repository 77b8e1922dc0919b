package model

import "strings"

// Role is a user's role in the workspace.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSupervisor Role = "supervisor"
	RoleDeveloper  Role = "developer"
	RoleUser       Role = "user"
)

// roleAliases maps every accepted spelling (Thai and English) to a Role.
var roleAliases = map[string]Role{
	"admin":      RoleAdmin,
	"แอดมิน":     RoleAdmin,
	"supervisor": RoleSupervisor,
	"หัวหน้า":    RoleSupervisor,
	"developer":  RoleDeveloper,
	"dev":        RoleDeveloper,
	"นักพัฒนา":   RoleDeveloper,
	"user":       RoleUser,
	"ผู้ใช้":     RoleUser,
}

// IsRoleWord reports whether w is one of the known role spellings.
func IsRoleWord(w string) bool {
	_, ok := roleAliases[strings.ToLower(strings.TrimSpace(w))]
	return ok
}

// NormalizeRole maps a role spelling to its canonical Role. Unknown
// non-empty values are kept as typed; empty means user.
func NormalizeRole(r string) Role {
	v := strings.ToLower(strings.TrimSpace(r))
	if role, ok := roleAliases[v]; ok {
		return role
	}
	if v == "" {
		return RoleUser
	}
	return Role(v)
}

// Label is the display form of the role.
func (r Role) Label() string {
	switch NormalizeRole(string(r)) {
	case RoleAdmin:
		return "Admin"
	case RoleSupervisor:
		return "Supervisor"
	case RoleDeveloper:
		return "Developer"
	case RoleUser:
		return "User"
	}
	return string(r)
}

// IsManager reports whether the role receives supervisor summaries.
func (r Role) IsManager() bool {
	v := NormalizeRole(string(r))
	return v == RoleAdmin || v == RoleSupervisor
}

// User is a registered chat user.
type User struct {
	ID        string // LINE user id
	Username  string
	RealName  string
	Role      Role
	Status    string // "Active" unless disabled in the sheet
	UpdatedAt string
}

// IsActive reports whether the user should receive digests; an empty
// status counts as active.
func (u User) IsActive() bool {
	return u.Status == "" || strings.EqualFold(u.Status, "active")
}

// DisplayName prefers the username, then the real name.
func (u User) DisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	return u.RealName
}

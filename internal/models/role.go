package models

import "fmt"

// Role is the closed set of staff roles. Doctors authenticate through the
// Doctor entity; the "doctor" role only ever appears inside claims tokens.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleDoctor       Role = "doctor"
	RoleReceptionist Role = "receptionist"
	RoleAccountant   Role = "accountant"
	RoleEmployee     Role = "employee"
)

type Permission string

const (
	PermViewPatients      Permission = "viewPatients"
	PermEditPatients      Permission = "editPatients"
	PermDeletePatients    Permission = "deletePatients"
	PermViewAccounts      Permission = "viewAccounts"
	PermEditAccounts      Permission = "editAccounts"
	PermManageEmployees   Permission = "manageEmployees"
	PermManageDepartments Permission = "manageDepartments"
)

// rolePermissions is the default capability set per role. Records may carry
// extra permissions on top of these.
var rolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermViewPatients, PermEditPatients, PermDeletePatients,
		PermViewAccounts, PermEditAccounts,
		PermManageEmployees, PermManageDepartments,
	},
	RoleDoctor:       {PermViewPatients, PermEditPatients},
	RoleReceptionist: {PermViewPatients},
	RoleAccountant:   {PermViewAccounts, PermEditAccounts},
	RoleEmployee:     {},
}

func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleAdmin, RoleDoctor, RoleReceptionist, RoleAccountant, RoleEmployee:
		return r, nil
	}
	return "", fmt.Errorf("invalid role: %q", s)
}

// DefaultPermissions returns a copy of the role's default permission set.
func DefaultPermissions(r Role) []string {
	perms := rolePermissions[r]
	out := make([]string, len(perms))
	for i, p := range perms {
		out[i] = string(p)
	}
	return out
}

// HasPermission resolves a permission check for a role plus any extra
// permissions carried on the record or token. Admin holds every permission.
func HasPermission(r Role, extra []string, p Permission) bool {
	if r == RoleAdmin {
		return true
	}
	for _, rp := range rolePermissions[r] {
		if rp == p {
			return true
		}
	}
	for _, s := range extra {
		if s == string(p) {
			return true
		}
	}
	return false
}

// requiredPositions constrains the free-text position field for roles that
// map to a single front-desk position.
var requiredPositions = map[Role]string{
	RoleAdmin:        "admin",
	RoleReceptionist: "receptionist",
	RoleAccountant:   "accountant",
}

// RequiredPosition returns the position an employee with the given role must
// hold, if the role constrains it.
func RequiredPosition(r Role) (string, bool) {
	p, ok := requiredPositions[r]
	return p, ok
}

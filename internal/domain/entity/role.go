// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Well-known role names. RoleNormalUser is the default assigned at
// self-registration; the others are granted through user management.
const (
	RoleNormalUser = "NORMAL_USER"
	RoleHR         = "HR"
	RoleSuperAdmin = "SUPER_ADMIN"
)

// Role groups permissions under a name. Inactive roles still resolve but
// grant nothing.
type Role struct {
	ID          uuid.UUID
	Name        string
	Description string
	Active      bool
	Permissions []*Permission
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Permission is a fine-grained capability: the API path pattern and method it
// unlocks, tagged with the module it belongs to.
type Permission struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	APIPath string    `json:"apiPath"`
	Method  string    `json:"method"`
	Module  string    `json:"module"`
}

// Grants reports whether the role's permission set covers the given API path
// and method. Inactive roles grant nothing.
func (r *Role) Grants(apiPath, method string) bool {
	if r == nil || !r.Active {
		return false
	}
	for _, p := range r.Permissions {
		if p.APIPath == apiPath && p.Method == method {
			return true
		}
	}

	return false
}

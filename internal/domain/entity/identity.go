// Package entity contains the core business objects of the project.
package entity

import "github.com/google/uuid"

// Identity is the authenticated principal attached to a request after the
// access token has been verified. The permission list is not carried in the
// token; it is filled lazily by the permission resolver when a handler asks
// for it.
type Identity struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Role        RoleRef       `json:"role"`
	Company     *CompanyRef   `json:"company,omitempty"`
	Permissions []*Permission `json:"permissions,omitempty"`
}

// IdentityFromUser builds the token-facing identity snapshot from a loaded
// credential record. The snapshot is stale until the next login or refresh.
func IdentityFromUser(user *User) *Identity {
	identity := &Identity{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
	if user.Role != nil {
		identity.Role = *user.Role
	}
	if user.Company != nil {
		company := *user.Company
		identity.Company = &company
	}

	return identity
}

package usecase

import (
	"context"

	"jobboard/internal/domain/entity"

	"github.com/google/uuid"
)

// PermissionResolver expands a role reference into its permission set and
// answers route-level grant checks. Lookups always hit the directory, so a
// permission change takes effect on the next request rather than the next
// login.
type PermissionResolver interface {
	// Resolve returns the permissions granted to the role. An unknown or
	// inactive role resolves to an empty set, not an error.
	Resolve(ctx context.Context, roleID uuid.UUID) ([]*entity.Permission, error)

	// Grants reports whether the role allows the given route.
	Grants(ctx context.Context, roleID uuid.UUID, apiPath, method string) (bool, error)
}

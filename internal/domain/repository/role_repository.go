// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"jobboard/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRoleNotFound is returned when a role reference cannot be resolved.
var ErrRoleNotFound = errors.New("role not found")

// RoleRepository is the Role/Permission Directory: it resolves a role
// reference into the full role record with its permission set expanded.
type RoleRepository interface {
	// FindByID retrieves a role with its permissions preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Role, error)

	// FindByName retrieves a role by its unique name, permissions preloaded.
	// Used to resolve the default registration role.
	FindByName(ctx context.Context, name string) (*entity.Role, error)
}

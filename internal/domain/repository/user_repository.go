// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"jobboard/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrEmailTaken is returned by Create when the email is already registered.
var ErrEmailTaken = errors.New("email already registered")

// UserRepository is the User Directory of the auth core: lookup by id or
// email, creation, and the password-change path. The refresh-token slot is
// managed through RefreshLedger, not here.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID, role reference included.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address, role reference included.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// UpdatePassword replaces the stored password hash for a user.
	// Callers are expected to clear the refresh ledger alongside.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

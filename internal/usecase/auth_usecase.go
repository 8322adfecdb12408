// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"jobboard/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Age      int
	Gender   string
	Address  string
}

// LoginInput defines the data required to open a session.
type LoginInput struct {
	Email    string
	Password string
}

// ChangePasswordInput carries the current and replacement password.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's public fields.
type RegisterOutput struct {
	User *entity.User
}

// SessionOutput is the result of opening or refreshing a session: a fresh
// token pair plus the identity snapshot embedded in the access token. The
// refresh token replaces whatever the user's ledger slot held before.
type SessionOutput struct {
	AccessToken  string
	RefreshToken string
	Identity     *entity.Identity
}

// AuthUsecase is the session issuer: the only component that both mints
// tokens and writes the refresh ledger. The delivery layer depends on this
// contract for every /auth route.
type AuthUsecase interface {
	// Register creates an account with the default role. The email must be unused.
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)

	// Login verifies credentials and opens a session. Unknown email and
	// wrong password fail identically.
	Login(ctx context.Context, input LoginInput) (*SessionOutput, error)

	// Refresh redeems a refresh token for a new pair, rotating the ledger
	// slot so the redeemed token cannot be used again.
	Refresh(ctx context.Context, refreshToken string) (*SessionOutput, error)

	// Logout clears the user's ledger slot. Safe to call repeatedly.
	Logout(ctx context.Context, userID uuid.UUID) error

	// Account re-reads the caller's record and expands the role into its
	// permission set, bypassing the possibly stale token snapshot.
	Account(ctx context.Context, userID uuid.UUID) (*entity.Identity, error)

	// ChangePassword replaces the password after verifying the current one,
	// and clears the ledger slot so existing refresh tokens die with it.
	ChangePassword(ctx context.Context, userID uuid.UUID, input ChangePasswordInput) error
}

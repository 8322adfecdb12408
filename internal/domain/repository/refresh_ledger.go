// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"github.com/google/uuid"
)

// RefreshLedger is the per-user single-slot store of the currently valid
// refresh token. Store is the rotation primitive: an unconditional overwrite
// that makes the previous token unrecognized on its next Check. The backing
// storage (user record column, separate table, cache) is an implementation
// detail behind this interface.
type RefreshLedger interface {
	// Store overwrites the user's slot with token. Last writer wins.
	Store(ctx context.Context, userID uuid.UUID, token string) error

	// Check reports whether the slot is non-null and equal to token.
	// A false result carries no reason: rotated-away, never-issued and
	// cleared slots are indistinguishable by design.
	Check(ctx context.Context, userID uuid.UUID, token string) (bool, error)

	// Clear nulls the slot. Clearing an already-null slot is not an error.
	Clear(ctx context.Context, userID uuid.UUID) error
}

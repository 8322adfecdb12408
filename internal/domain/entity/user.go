// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the credential record for a single account on the job board.
// Besides profile fields it carries the two pieces of state the auth core
// owns: the password hash and the single refresh-token slot.
type User struct {
	ID           uuid.UUID   // The unique identifier for the user.
	Name         string      // Display name.
	Email        string      // Primary login identifier, unique across accounts.
	PasswordHash string      // bcrypt digest; never serialized to clients.
	Age          int         // Optional profile field.
	Gender       string      // Optional profile field.
	Address      string      // Optional profile field.
	Role         *RoleRef    // Role reference snapshot (id + name).
	Company      *CompanyRef // Company reference for HR-style roles, nil otherwise.
	RefreshToken *string     // Single-slot ledger entry: the currently valid refresh token, nil when logged out.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RoleRef is the (id, name) pair embedded into users and access tokens.
type RoleRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// CompanyRef is the (id, name) pair linking a user to the company they act for.
type CompanyRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

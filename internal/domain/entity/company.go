// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Company is a hiring organization that owns job postings. It is a business
// entity outside the auth core; the core only needs the (id, name) reference
// embedded into users and access tokens.
type Company struct {
	ID          uuid.UUID
	Name        string
	Address     string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

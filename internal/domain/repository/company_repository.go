// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"jobboard/internal/domain/entity"
)

// ErrCompanyExists is returned by Create when the company name is taken.
var ErrCompanyExists = errors.New("company already exists")

// CompanyRepository persists hiring organizations. Kept minimal: the auth
// core only needs companies to exist so user records and tokens can
// reference them.
type CompanyRepository interface {
	// Create persists a new company.
	Create(ctx context.Context, company *entity.Company) error

	// List returns all companies.
	List(ctx context.Context) ([]*entity.Company, error)
}

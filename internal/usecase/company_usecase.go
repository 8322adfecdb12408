package usecase

import (
	"context"

	"jobboard/internal/domain/entity"
)

// CreateCompanyInput defines the data required to register a company.
type CreateCompanyInput struct {
	Name        string
	Address     string
	Description string
}

// CompanyUsecase manages hiring organizations. Write access is gated by
// role permissions at the delivery layer.
type CompanyUsecase interface {
	// CreateCompany persists a new company. The name must be unused.
	CreateCompany(ctx context.Context, input CreateCompanyInput) (*entity.Company, error)

	// ListCompanies returns all companies, newest first.
	ListCompanies(ctx context.Context) ([]*entity.Company, error)
}

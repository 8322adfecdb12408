package impl

import (
	"context"
	"log/slog"

	deliverycontext "jobboard/internal/delivery/context"
	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/domain/repository"
	"jobboard/internal/usecase"

	"github.com/pkg/errors"
)

// companyService implements the CompanyUsecase interface.
type companyService struct {
	companyRepo repository.CompanyRepository
	logger      *slog.Logger
}

// NewCompanyService is the constructor for companyService.
func NewCompanyService(companyRepo repository.CompanyRepository, logger *slog.Logger) usecase.CompanyUsecase {
	return &companyService{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

func (srv *companyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCompany persists a new company.
func (srv *companyService) CreateCompany(ctx context.Context, input usecase.CreateCompanyInput) (*entity.Company, error) {
	company := &entity.Company{
		Name:        input.Name,
		Address:     input.Address,
		Description: input.Description,
	}
	if err := srv.companyRepo.Create(ctx, company); err != nil {
		if errors.Is(err, repository.ErrCompanyExists) {
			return nil, domainerrors.ErrAlreadyExists.WrapMessage("company name already taken")
		}
		srv.log(ctx).Error("Failed to create company", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create company")
	}

	srv.log(ctx).Info("Company created", slog.Any("companyID", company.ID))

	return company, nil
}

// ListCompanies returns all companies.
func (srv *companyService) ListCompanies(ctx context.Context) ([]*entity.Company, error) {
	companies, err := srv.companyRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list companies")
	}

	return companies, nil
}

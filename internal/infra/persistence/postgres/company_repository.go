package postgres

import (
	"context"

	"jobboard/internal/domain/entity"
	"jobboard/internal/domain/repository"
	"jobboard/internal/errors"
	"jobboard/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new instance of a GORM-based company repository.
func NewCompanyRepository(db *gorm.DB) repository.CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Create(ctx context.Context, company *entity.Company) error {
	companyModel := &model.CompanyModel{
		ID:          company.ID,
		Name:        company.Name,
		Address:     company.Address,
		Description: company.Description,
	}
	if err := r.db.WithContext(ctx).Create(companyModel).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(repository.ErrCompanyExists, company.Name)
		}

		return errors.Wrap(err, "failed to create company")
	}

	company.ID = companyModel.ID
	company.CreatedAt = companyModel.CreatedAt
	company.UpdatedAt = companyModel.UpdatedAt

	return nil
}

func (r *companyRepository) List(ctx context.Context) ([]*entity.Company, error) {
	var companyModels []*model.CompanyModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&companyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list companies")
	}

	companies := make([]*entity.Company, 0, len(companyModels))
	for _, companyModel := range companyModels {
		companies = append(companies, &entity.Company{
			ID:          companyModel.ID,
			Name:        companyModel.Name,
			Address:     companyModel.Address,
			Description: companyModel.Description,
			CreatedAt:   companyModel.CreatedAt,
			UpdatedAt:   companyModel.UpdatedAt,
		})
	}

	return companies, nil
}

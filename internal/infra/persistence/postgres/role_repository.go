package postgres

import (
	"context"

	"jobboard/internal/domain/entity"
	"jobboard/internal/domain/repository"
	"jobboard/internal/errors"
	"jobboard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository creates a new instance of a GORM-based role repository.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Role, error) {
	var roleModel model.RoleModel
	err := r.db.WithContext(ctx).
		Preload("Permissions").
		Where("id = ?", id).
		First(&roleModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoleNotFound
		}

		return nil, errors.Wrap(err, "failed to find role by id")
	}

	return toRoleEntity(&roleModel), nil
}

func (r *roleRepository) FindByName(ctx context.Context, name string) (*entity.Role, error) {
	var roleModel model.RoleModel
	err := r.db.WithContext(ctx).
		Preload("Permissions").
		Where("name = ?", name).
		First(&roleModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoleNotFound
		}

		return nil, errors.Wrap(err, "failed to find role by name")
	}

	return toRoleEntity(&roleModel), nil
}

func toRoleEntity(roleModel *model.RoleModel) *entity.Role {
	role := &entity.Role{
		ID:          roleModel.ID,
		Name:        roleModel.Name,
		Description: roleModel.Description,
		Active:      roleModel.Active,
		CreatedAt:   roleModel.CreatedAt,
		UpdatedAt:   roleModel.UpdatedAt,
	}
	for _, permModel := range roleModel.Permissions {
		role.Permissions = append(role.Permissions, &entity.Permission{
			ID:      permModel.ID,
			Name:    permModel.Name,
			APIPath: permModel.APIPath,
			Method:  permModel.Method,
			Module:  permModel.Module,
		})
	}

	return role
}

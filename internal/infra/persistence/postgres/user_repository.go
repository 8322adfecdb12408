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

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of a GORM-based user repository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userModel model.UserModel
	err := r.db.WithContext(ctx).
		Preload("Role").
		Where("id = ?", id).
		First(&userModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserEntity(&userModel), nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.UserModel
	err := r.db.WithContext(ctx).
		Preload("Role").
		Where("email = ?", email).
		First(&userModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserEntity(&userModel), nil
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := toUserModel(user)
	if err := r.db.WithContext(ctx).Create(userModel).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(repository.ErrEmailTaken, user.Email)
		}

		return errors.Wrap(err, "failed to create user")
	}

	user.ID = userModel.ID
	user.CreatedAt = userModel.CreatedAt
	user.UpdatedAt = userModel.UpdatedAt

	return nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	userModel := toUserModel(user)
	result := r.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"name":    userModel.Name,
			"age":     userModel.Age,
			"gender":  userModel.Gender,
			"address": userModel.Address,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result := r.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update password")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func toUserModel(user *entity.User) *model.UserModel {
	userModel := &model.UserModel{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Age:          user.Age,
		Gender:       user.Gender,
		Address:      user.Address,
		RefreshToken: user.RefreshToken,
	}
	if user.Role != nil {
		userModel.RoleID = user.Role.ID
	}
	if user.Company != nil {
		companyID := user.Company.ID
		userModel.CompanyID = &companyID
		userModel.CompanyName = user.Company.Name
	}

	return userModel
}

func toUserEntity(userModel *model.UserModel) *entity.User {
	user := &entity.User{
		ID:           userModel.ID,
		Name:         userModel.Name,
		Email:        userModel.Email,
		PasswordHash: userModel.PasswordHash,
		Age:          userModel.Age,
		Gender:       userModel.Gender,
		Address:      userModel.Address,
		RefreshToken: userModel.RefreshToken,
		CreatedAt:    userModel.CreatedAt,
		UpdatedAt:    userModel.UpdatedAt,
	}
	if userModel.Role != nil {
		user.Role = &entity.RoleRef{ID: userModel.Role.ID, Name: userModel.Role.Name}
	} else if userModel.RoleID != uuid.Nil {
		user.Role = &entity.RoleRef{ID: userModel.RoleID}
	}
	if userModel.CompanyID != nil {
		user.Company = &entity.CompanyRef{ID: *userModel.CompanyID, Name: userModel.CompanyName}
	}

	return user
}

package postgres

import (
	"context"
	"crypto/subtle"

	"jobboard/internal/domain/repository"
	"jobboard/internal/errors"
	"jobboard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// refreshLedger backs the single-slot ledger with the refresh_token column
// on the users table. One UPDATE per Store keeps rotation a single write.
type refreshLedger struct {
	db *gorm.DB
}

// NewRefreshLedger creates a new instance of a GORM-based refresh ledger.
func NewRefreshLedger(db *gorm.DB) repository.RefreshLedger {
	return &refreshLedger{db: db}
}

func (l *refreshLedger) Store(ctx context.Context, userID uuid.UUID, token string) error {
	result := l.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("refresh_token", token)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to store refresh token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func (l *refreshLedger) Check(ctx context.Context, userID uuid.UUID, token string) (bool, error) {
	var row struct {
		RefreshToken *string
	}
	err := l.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Select("refresh_token").
		Where("id = ?", userID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, repository.ErrUserNotFound
		}

		return false, errors.Wrap(err, "failed to read refresh token slot")
	}

	if row.RefreshToken == nil {
		return false, nil
	}

	return subtle.ConstantTimeCompare([]byte(*row.RefreshToken), []byte(token)) == 1, nil
}

func (l *refreshLedger) Clear(ctx context.Context, userID uuid.UUID) error {
	err := l.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("refresh_token", gorm.Expr("NULL")).Error
	if err != nil {
		return errors.Wrap(err, "failed to clear refresh token slot")
	}

	return nil
}

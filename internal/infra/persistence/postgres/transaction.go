package postgres

import (
	"context"

	"jobboard/internal/domain/repository"
	"jobboard/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements the repository.TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager creates a new transaction manager backed by GORM.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormRepositoryFactory{tx: tx})
	})
	if err != nil {
		return errors.Wrap(err, "transaction failed")
	}

	return nil
}

// gormRepositoryFactory hands out repositories bound to a single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (f *gormRepositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f *gormRepositoryFactory) RoleRepo() repository.RoleRepository {
	return NewRoleRepository(f.tx)
}

func (f *gormRepositoryFactory) Ledger() repository.RefreshLedger {
	return NewRefreshLedger(f.tx)
}

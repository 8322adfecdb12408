package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// The refresh_token column is the single-slot ledger: at most one live
// refresh token per user, overwritten on every login and refresh.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name         string    `gorm:"type:varchar(100)"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Age          int
	Gender       string     `gorm:"type:varchar(20)"`
	Address      string     `gorm:"type:varchar(255)"`
	RoleID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	Role         *RoleModel `gorm:"foreignKey:RoleID"`
	CompanyID    *uuid.UUID `gorm:"type:uuid"`
	CompanyName  string     `gorm:"type:varchar(255)"`
	RefreshToken *string    `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName overrides the default table name.
func (UserModel) TableName() string {
	return "users"
}

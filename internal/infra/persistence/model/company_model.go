package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyModel mirrors the 'companies' table.
type CompanyModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(255);unique;not null"`
	Address     string    `gorm:"type:varchar(255)"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName overrides the default table name.
func (CompanyModel) TableName() string {
	return "companies"
}

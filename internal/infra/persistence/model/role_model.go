package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoleModel mirrors the 'roles' table.
type RoleModel struct {
	ID          uuid.UUID          `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string             `gorm:"type:varchar(100);unique;not null"`
	Description string             `gorm:"type:varchar(255)"`
	Active      bool               `gorm:"not null;default:true"`
	Permissions []*PermissionModel `gorm:"many2many:role_permissions"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName overrides the default table name.
func (RoleModel) TableName() string {
	return "roles"
}

// PermissionModel mirrors the 'permissions' table.
type PermissionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	APIPath   string    `gorm:"column:api_path;type:varchar(255);not null"`
	Method    string    `gorm:"type:varchar(10);not null"`
	Module    string    `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the default table name.
func (PermissionModel) TableName() string {
	return "permissions"
}

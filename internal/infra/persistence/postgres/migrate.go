package postgres

import (
	"context"
	"log/slog"

	"jobboard/internal/domain/entity"
	"jobboard/internal/errors"
	"jobboard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Migrate creates the schema and seeds the role/permission directory.
// Seeding is idempotent so restarts do not duplicate rows.
func Migrate(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	db = db.WithContext(ctx)

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS pg_uuidv7").Error; err != nil {
		return errors.Wrap(err, "failed to create pg_uuidv7 extension")
	}

	if err := db.AutoMigrate(
		&model.PermissionModel{},
		&model.RoleModel{},
		&model.CompanyModel{},
		&model.UserModel{},
	); err != nil {
		return errors.Wrap(err, "failed to auto-migrate schema")
	}

	if err := seedRoles(db); err != nil {
		return errors.Wrap(err, "failed to seed roles")
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "schema migrated and roles seeded")

	return nil
}

type seedPermission struct {
	name    string
	apiPath string
	method  string
	module  string
}

var seedPermissions = []seedPermission{
	{name: "List companies", apiPath: "/companies", method: "GET", module: "COMPANIES"},
	{name: "Create company", apiPath: "/companies", method: "POST", module: "COMPANIES"},
	{name: "Fetch account", apiPath: "/auth/account", method: "GET", module: "AUTH"},
	{name: "Change password", apiPath: "/users/password", method: "POST", module: "USERS"},
}

// seedRoleGrants maps each built-in role to the permissions it starts with.
// SUPER_ADMIN holds everything; NORMAL_USER only reads.
var seedRoleGrants = map[string][]string{
	entity.RoleNormalUser: {"Fetch account", "Change password", "List companies"},
	entity.RoleHR:         {"Fetch account", "Change password", "List companies", "Create company"},
	entity.RoleSuperAdmin: {"Fetch account", "Change password", "List companies", "Create company"},
}

var seedRoleDescriptions = map[string]string{
	entity.RoleNormalUser: "Default role for registered job seekers",
	entity.RoleHR:         "Recruiter role able to manage company listings",
	entity.RoleSuperAdmin: "Full administrative access",
}

func seedRoles(db *gorm.DB) error {
	permissionsByName := make(map[string]*model.PermissionModel, len(seedPermissions))
	for _, seed := range seedPermissions {
		permModel := &model.PermissionModel{
			ID:      uuid.New(),
			Name:    seed.name,
			APIPath: seed.apiPath,
			Method:  seed.method,
			Module:  seed.module,
		}
		err := db.Where("api_path = ? AND method = ?", seed.apiPath, seed.method).
			Attrs(permModel).
			FirstOrCreate(permModel).Error
		if err != nil {
			return errors.Wrapf(err, "failed to seed permission %s %s", seed.method, seed.apiPath)
		}
		permissionsByName[seed.name] = permModel
	}

	for roleName, grantNames := range seedRoleGrants {
		roleModel := &model.RoleModel{
			ID:          uuid.New(),
			Name:        roleName,
			Description: seedRoleDescriptions[roleName],
			Active:      true,
		}
		err := db.Where("name = ?", roleName).
			Attrs(roleModel).
			FirstOrCreate(roleModel).Error
		if err != nil {
			return errors.Wrapf(err, "failed to seed role %s", roleName)
		}

		grants := make([]*model.PermissionModel, 0, len(grantNames))
		for _, grantName := range grantNames {
			grants = append(grants, permissionsByName[grantName])
		}
		err = db.Model(roleModel).
			Association("Permissions").
			Replace(grants)
		if err != nil {
			return errors.Wrapf(err, "failed to grant permissions to role %s", roleName)
		}
	}

	return nil
}

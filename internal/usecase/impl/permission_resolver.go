package impl

import (
	"context"
	"log/slog"

	deliverycontext "jobboard/internal/delivery/context"
	"jobboard/internal/domain/entity"
	"jobboard/internal/domain/repository"
	"jobboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// permissionResolver implements the PermissionResolver interface on top of
// the role directory.
type permissionResolver struct {
	roleRepo repository.RoleRepository
	logger   *slog.Logger
}

// NewPermissionResolver is the constructor for permissionResolver.
func NewPermissionResolver(roleRepo repository.RoleRepository, logger *slog.Logger) usecase.PermissionResolver {
	return &permissionResolver{
		roleRepo: roleRepo,
		logger:   logger,
	}
}

func (srv *permissionResolver) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve returns the role's permissions. A deleted or inactive role yields
// an empty set so its holders lose access without their tokens erroring.
func (srv *permissionResolver) Resolve(ctx context.Context, roleID uuid.UUID) ([]*entity.Permission, error) {
	role, err := srv.roleRepo.FindByID(ctx, roleID)
	if err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			srv.log(ctx).Warn("Role reference resolves to nothing", slog.Any("roleID", roleID))

			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to resolve role")
	}
	if !role.Active {
		return nil, nil
	}

	return role.Permissions, nil
}

// Grants reports whether the role allows the given route.
func (srv *permissionResolver) Grants(ctx context.Context, roleID uuid.UUID, apiPath, method string) (bool, error) {
	role, err := srv.roleRepo.FindByID(ctx, roleID)
	if err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to resolve role")
	}

	return role.Grants(apiPath, method), nil
}

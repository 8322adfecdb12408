// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "jobboard/internal/delivery/context"
	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/domain/repository"
	"jobboard/internal/domain/service"
	"jobboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dummyHash is a valid bcrypt digest checked when the email is unknown, so
// the two login failure paths cost roughly the same amount of work.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	roleRepo     repository.RoleRepository
	ledger       repository.RefreshLedger
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	RoleRepo     repository.RoleRepository
	Ledger       repository.RefreshLedger
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		roleRepo:     params.RoleRepo,
		ledger:       params.Ledger,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account with the default role inside a single transaction.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password")
	}

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		defaultRole, err := repoFactory.RoleRepo().FindByName(ctx, entity.RoleNormalUser)
		if err != nil {
			return errors.Wrap(err, "failed to resolve default role")
		}

		newUser := &entity.User{
			Name:         input.Name,
			Email:        input.Email,
			PasswordHash: hashedPassword,
			Age:          input.Age,
			Gender:       input.Gender,
			Address:      input.Address,
			Role:         &entity.RoleRef{ID: defaultRole.ID, Name: defaultRole.Name},
		}
		if err := repoFactory.UserRepo().Create(ctx, newUser); err != nil {
			if errors.Is(err, repository.ErrEmailTaken) {
				return domainerrors.ErrUserAlreadyExists.WrapMessage(input.Email)
			}

			return errors.Wrap(err, "failed to create user")
		}
		registeredUser = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registeredUser.ID))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// Login verifies credentials and opens a session. The stored slot is
// overwritten, so a login on a second device silently ends the first
// device's refresh chain.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.SessionOutput, error) {
	srv.log(ctx).Info("Login attempt", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Burn a hash check anyway so the unknown-email path is not
			// observably faster than the wrong-password path.
			srv.hasher.Check(input.Password, dummyHash)
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

			return nil, domainerrors.ErrAuthFailed
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, domainerrors.ErrAuthFailed
	}

	output, err := srv.openSession(ctx, user)
	if err != nil {
		srv.log(ctx).Error("Failed to open session", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Login succeeded", slog.Any("userID", user.ID))

	return output, nil
}

// Refresh redeems a refresh token for a new pair. The ledger check and the
// overwrite happen in one transaction so the redeemed token is spent exactly
// once.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*usecase.SessionOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		srv.log(ctx).Warn("Refresh rejected: token invalid")

		return nil, domainerrors.ErrUnauthenticated
	}

	var output *usecase.SessionOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByID(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUnauthenticated
			}

			return errors.Wrap(err, "failed to find user")
		}

		// A valid signature is not enough: the token must also occupy the
		// slot. Rotated-away and logged-out tokens fail here.
		live, err := repoFactory.Ledger().Check(ctx, user.ID, refreshToken)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUnauthenticated
			}

			return errors.Wrap(err, "failed to check refresh ledger")
		}
		if !live {
			return domainerrors.ErrUnauthenticated
		}

		output, err = srv.issueTokens(ctx, repoFactory.Ledger(), user)

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("Refresh failed", slog.Any("userID", claims.UserID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Refresh succeeded", slog.Any("userID", claims.UserID))

	return output, nil
}

// Logout clears the ledger slot. Logging out twice is a no-op, not an error.
func (srv *authService) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := srv.ledger.Clear(ctx, userID); err != nil {
		srv.log(ctx).Error("Failed to clear refresh ledger", slog.Any("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to clear refresh ledger")
	}

	srv.log(ctx).Info("Logout completed", slog.Any("userID", userID))

	return nil
}

// Account re-reads the user record and expands the role's permission set.
// The directory is authoritative here, not the token snapshot.
func (srv *authService) Account(ctx context.Context, userID uuid.UUID) (*entity.Identity, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	identity := entity.IdentityFromUser(user)
	if user.Role != nil {
		role, err := srv.roleRepo.FindByID(ctx, user.Role.ID)
		if err != nil && !errors.Is(err, repository.ErrRoleNotFound) {
			return nil, errors.Wrap(err, "failed to resolve role")
		}
		if role != nil && role.Active {
			identity.Permissions = role.Permissions
		}
	}

	return identity, nil
}

// ChangePassword verifies the current password, stores the new hash and
// clears the ledger slot so outstanding refresh tokens die with the old
// password.
func (srv *authService) ChangePassword(ctx context.Context, userID uuid.UUID, input usecase.ChangePasswordInput) error {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("user not found")
		}

		return errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
		srv.log(ctx).Warn("Password change rejected", slog.Any("userID", userID))

		return domainerrors.ErrAuthFailed
	}

	newHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash new password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().UpdatePassword(ctx, userID, newHash); err != nil {
			return errors.Wrap(err, "failed to update password")
		}

		return repoFactory.Ledger().Clear(ctx, userID)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to change password", slog.Any("userID", userID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Password changed", slog.Any("userID", userID))

	return nil
}

// openSession issues a token pair outside any caller transaction.
func (srv *authService) openSession(ctx context.Context, user *entity.User) (*usecase.SessionOutput, error) {
	return srv.issueTokens(ctx, srv.ledger, user)
}

// issueTokens mints both token classes and overwrites the ledger slot with
// the new refresh token. Overwriting is what revokes the previous one.
func (srv *authService) issueTokens(ctx context.Context, ledger repository.RefreshLedger, user *entity.User) (*usecase.SessionOutput, error) {
	identity := entity.IdentityFromUser(user)

	accessToken, err := srv.tokenService.GenerateAccessToken(identity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	refreshToken, err := srv.tokenService.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate refresh token")
	}

	if err := ledger.Store(ctx, user.ID, refreshToken); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	return &usecase.SessionOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Identity:     identity,
	}, nil
}

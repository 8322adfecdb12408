package impl

import (
	"context"
	"testing"

	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService()
	ctx := context.Background()

	output, err := fx.service.Register(ctx, usecase.RegisterInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123!",
	})

	require.NoError(t, err)
	require.NotNil(t, output.User)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
	assert.Equal(t, entity.RoleNormalUser, output.User.Role.Name)
	assert.Equal(t, "hashed:Password123!", output.User.PasswordHash)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	fx := createTestAuthService()
	ctx := context.Background()
	fx.seedUser("taken@example.com", "secret1")

	_, err := fx.service.Register(ctx, usecase.RegisterInput{
		Name:     "Dup",
		Email:    "taken@example.com",
		Password: "other",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService()
	ctx := context.Background()
	user := fx.seedUser("a@x.com", "secret1")

	output, err := fx.service.Login(ctx, usecase.LoginInput{Email: "a@x.com", Password: "secret1"})

	require.NoError(t, err)
	assert.NotEmpty(t, output.AccessToken)
	assert.NotEmpty(t, output.RefreshToken)
	assert.Equal(t, user.ID, output.Identity.ID)

	// The ledger slot must hold exactly the issued refresh token.
	slot := fx.ledger.slot(user.ID)
	require.NotNil(t, slot)
	assert.Equal(t, output.RefreshToken, *slot)
}

func TestAuthService_Login_FailuresAreIndistinguishable(t *testing.T) {
	fx := createTestAuthService()
	ctx := context.Background()
	fx.seedUser("a@x.com", "secret1")

	_, unknownErr := fx.service.Login(ctx, usecase.LoginInput{Email: "nobody@x.com", Password: "secret1"})
	_, wrongErr := fx.service.Login(ctx, usecase.LoginInput{Email: "a@x.com", Password: "wrong"})

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.True(t, errors.Is(unknownErr, domainerrors.ErrAuthFailed))
	assert.True(t, errors.Is(wrongErr, domainerrors.ErrAuthFailed))
	// Same value, same message: nothing distinguishes the two failures.
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestAuthService_Login_SecondLoginEvictsFirstSession(t *testing.T) {
	fx := createTestAuthService()
	ctx := context.Background()
	fx.seedUser("a@x.com", "secret1")

	first, err := fx.service.Login(ctx, usecase.LoginInput{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	second, err := fx.service.Login(ctx, usecase.LoginInput{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	// The first device's refresh chain is dead.
	_, err = fx.service.Refresh(ctx, first.RefreshToken)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))

	// The second device's chain still works.
	_, err = fx.service.Refresh(ctx, second.RefreshToken)
	assert.NoError(t, err)
}

func TestAuthService_Refresh_RotatesExactlyOnce(t *testing.T) {
	fx := createTestAuthService()
	ctx := context.Background()
	user := fx.seedUser("a@x.com", "secret1")

	login, err := fx.service.Login(ctx, usecase.LoginInput{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	refreshed, err := fx.service.Refresh(ctx, login.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)
	assert.NotEmpty(t, refreshed.AccessToken)

	// The slot now holds the new token.
	slot := fx.ledger.slot(user.ID)
	require.NotNil(t, slot)
	assert.Equal(t, refreshed.RefreshToken, *slot)

	// Replaying the spent token fails even though its signature is valid.
	_, err = fx.service.Refresh(ctx, login.RefreshToken)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestAuthService_Refresh_InvalidToken(t *testing.T) {
	fx := createTestAuthService()
	ctx := context.Background()

	_, err := fx.service.Refresh(ctx, "not-a-token")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestAuthService_Refresh_AfterLogout(t *testing.T) {
	fx := createTestAuthService()
	ctx := context.Background()
	user := fx.seedUser("a@x.com", "secret1")

	login, err := fx.service.Login(ctx, usecase.LoginInput{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	require.NoError(t, fx.service.Logout(ctx, user.ID))

	_, err = fx.service.Refresh(ctx, login.RefreshToken)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestAuthService_Logout_Idempotent(t *testing.T) {
	fx := createTestAuthService()
	ctx := context.Background()
	user := fx.seedUser("a@x.com", "secret1")

	require.NoError(t, fx.service.Logout(ctx, user.ID))
	require.NoError(t, fx.service.Logout(ctx, user.ID))
	// Logging out a user who never logged in is also fine.
	require.NoError(t, fx.service.Logout(ctx, uuid.New()))
}

func TestAuthService_Account_ExpandsPermissions(t *testing.T) {
	fx := createTestAuthService()
	ctx := context.Background()
	user := fx.seedUser("a@x.com", "secret1")

	identity, err := fx.service.Account(ctx, user.ID)

	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.ID)
	require.Len(t, identity.Permissions, 1)
	assert.Equal(t, "/companies", identity.Permissions[0].APIPath)
}

func TestAuthService_Account_InactiveRoleYieldsNoPermissions(t *testing.T) {
	fx := createTestAuthService()
	ctx := context.Background()
	user := fx.seedUser("a@x.com", "secret1")
	fx.defaultRole.Active = false

	identity, err := fx.service.Account(ctx, user.ID)

	require.NoError(t, err)
	assert.Empty(t, identity.Permissions)
}

func TestAuthService_ChangePassword_ClearsLedger(t *testing.T) {
	fx := createTestAuthService()
	ctx := context.Background()
	user := fx.seedUser("a@x.com", "secret1")

	login, err := fx.service.Login(ctx, usecase.LoginInput{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	err = fx.service.ChangePassword(ctx, user.ID, usecase.ChangePasswordInput{
		CurrentPassword: "secret1",
		NewPassword:     "secret2",
	})
	require.NoError(t, err)

	// Outstanding refresh tokens die with the old password.
	_, err = fx.service.Refresh(ctx, login.RefreshToken)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))

	// The new password works, the old one does not.
	_, err = fx.service.Login(ctx, usecase.LoginInput{Email: "a@x.com", Password: "secret1"})
	assert.True(t, errors.Is(err, domainerrors.ErrAuthFailed))
	_, err = fx.service.Login(ctx, usecase.LoginInput{Email: "a@x.com", Password: "secret2"})
	assert.NoError(t, err)
}

func TestAuthService_ChangePassword_WrongCurrent(t *testing.T) {
	fx := createTestAuthService()
	ctx := context.Background()
	user := fx.seedUser("a@x.com", "secret1")

	err := fx.service.ChangePassword(ctx, user.ID, usecase.ChangePasswordInput{
		CurrentPassword: "wrong",
		NewPassword:     "secret2",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAuthFailed))
}

package auth

import (
	"strings"
	"testing"
	"time"

	"jobboard/config"
	"jobboard/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenConfig(accessTTL, refreshTTL time.Duration) *config.Config {
	cfg := &config.Config{
		Token: &config.TokenConfig{
			AccessTTL:  accessTTL,
			RefreshTTL: refreshTTL,
		},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func testIdentity() *entity.Identity {
	return &entity.Identity{
		ID:    uuid.New(),
		Name:  "Test User",
		Email: "a@x.com",
		Role:  entity.RoleRef{ID: uuid.New(), Name: entity.RoleNormalUser},
	}
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig(15*time.Minute, 7*24*time.Hour))
	require.NoError(t, err)

	identity := testIdentity()

	accessToken, err := svc.GenerateAccessToken(identity)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)

	refreshToken, err := svc.GenerateRefreshToken(identity.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshToken)

	accessClaims, err := svc.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, identity.ID, accessClaims.UserID)
	assert.Equal(t, identity.Email, accessClaims.Email)
	assert.Equal(t, identity.Role, accessClaims.Role)
	assert.Nil(t, accessClaims.Company)

	refreshClaims, err := svc.ValidateRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, identity.ID, refreshClaims.UserID)
}

func TestJWTService_CompanySnapshotRoundTrip(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig(15*time.Minute, 7*24*time.Hour))
	require.NoError(t, err)

	identity := testIdentity()
	identity.Company = &entity.CompanyRef{ID: uuid.New(), Name: "ACME Corp"}

	token, err := svc.GenerateAccessToken(identity)
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	require.NotNil(t, claims.Company)
	assert.Equal(t, identity.Company.ID, claims.Company.ID)
	assert.Equal(t, "ACME Corp", claims.Company.Name)
}

func TestJWTService_TokenClassesAreNotInterchangeable(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig(15*time.Minute, 7*24*time.Hour))
	require.NoError(t, err)

	identity := testIdentity()

	accessToken, err := svc.GenerateAccessToken(identity)
	require.NoError(t, err)
	refreshToken, err := svc.GenerateRefreshToken(identity.ID)
	require.NoError(t, err)

	// Each class is signed with its own secret.
	_, err = svc.ValidateRefreshToken(accessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = svc.ValidateAccessToken(refreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig(15*time.Minute, 7*24*time.Hour))
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken("clearly-not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestJWTService_TamperedSignature(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig(15*time.Minute, 7*24*time.Hour))
	require.NoError(t, err)

	token, err := svc.GenerateAccessToken(testIdentity())
	require.NoError(t, err)

	// Flip one byte of the signature segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = svc.ValidateAccessToken(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig(-time.Minute, -time.Minute))
	require.NoError(t, err)

	identity := testIdentity()

	accessToken, err := svc.GenerateAccessToken(identity)
	require.NoError(t, err)
	refreshToken, err := svc.GenerateRefreshToken(identity.ID)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(accessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = svc.ValidateRefreshToken(refreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_MissingSecrets(t *testing.T) {
	cfg := newTestTokenConfig(time.Minute, time.Hour)
	cfg.SecretKey.Refresh = ""

	svc, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
}

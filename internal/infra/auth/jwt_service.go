// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"jobboard/config"
	"jobboard/internal/domain/entity"
	"jobboard/internal/domain/service"
)

// ErrInvalidToken is the single failure value of the codec. Malformed
// structure, signature mismatch, wrong signing method and expiry all collapse
// into it so library internals never leak to callers.
var ErrInvalidToken = errors.New("invalid token")

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Access and refresh tokens are signed with distinct secrets so one class can
// never be presented as the other.
type jwtService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	return &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		accessTTL:     cfg.Token.AccessTTL,
		refreshTTL:    cfg.Token.RefreshTTL,
	}, nil
}

// GenerateAccessToken signs a short-lived token embedding the identity snapshot.
func (s *jwtService) GenerateAccessToken(identity *entity.Identity) (string, error) {
	now := time.Now()
	claims := &service.AccessClaims{
		UserID:  identity.ID,
		Email:   identity.Email,
		Name:    identity.Name,
		Role:    identity.Role,
		Company: identity.Company,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.accessSecret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return token, nil
}

// GenerateRefreshToken signs a long-lived token carrying only the subject id.
func (s *jwtService) GenerateRefreshToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := &service.RefreshClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.refreshTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.refreshSecret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign refresh token")
	}

	return token, nil
}

// ValidateAccessToken verifies signature and expiry of an access token.
func (s *jwtService) ValidateAccessToken(tokenString string) (*service.AccessClaims, error) {
	claims := &service.AccessClaims{}
	if err := s.parse(tokenString, claims, s.accessSecret); err != nil {
		return nil, err
	}

	return claims, nil
}

// ValidateRefreshToken verifies signature and expiry of a refresh token.
func (s *jwtService) ValidateRefreshToken(tokenString string) (*service.RefreshClaims, error) {
	claims := &service.RefreshClaims{}
	if err := s.parse(tokenString, claims, s.refreshSecret); err != nil {
		return nil, err
	}

	return claims, nil
}

// RefreshTokenTTL returns the configured refresh token lifetime.
func (s *jwtService) RefreshTokenTTL() time.Duration {
	return s.refreshTTL
}

// parse verifies the token against the given secret. jwt/v5 validates exp/iat
// with the verifying side's clock and no leeway.
func (s *jwtService) parse(tokenString string, claims jwt.Claims, secret []byte) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Reject any signing method other than the one we issue with.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return secret, nil
	})
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}

	return nil
}

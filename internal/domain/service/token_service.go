package service

import (
	"time"

	"jobboard/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessClaims is the payload of a short-lived access token. It carries a
// snapshot of the identity taken at login or refresh time; the snapshot goes
// stale if the user's role changes and is only re-read at the next login or
// refresh.
type AccessClaims struct {
	UserID  uuid.UUID          `json:"uid"`
	Email   string             `json:"email"`
	Name    string             `json:"name"`
	Role    entity.RoleRef     `json:"role"`
	Company *entity.CompanyRef `json:"company,omitempty"`
	jwt.RegisteredClaims
}

// RefreshClaims is the payload of a long-lived refresh token: subject only.
// Everything else is re-read from the User Directory at redemption time.
type RefreshClaims struct {
	UserID uuid.UUID `json:"uid"`
	jwt.RegisteredClaims
}

// Identity rebuilds the request identity from verified access claims.
func (c *AccessClaims) Identity() *entity.Identity {
	return &entity.Identity{
		ID:      c.UserID,
		Name:    c.Name,
		Email:   c.Email,
		Role:    c.Role,
		Company: c.Company,
	}
}

// TokenService is the token codec: it signs and verifies the two token
// classes with distinct process-wide secrets. Verification is stateless;
// refresh tokens additionally require a RefreshLedger match, which is the
// session issuer's job, not the codec's.
type TokenService interface {
	// GenerateAccessToken signs a short-lived token embedding the identity snapshot.
	GenerateAccessToken(identity *entity.Identity) (string, error)

	// GenerateRefreshToken signs a long-lived token carrying only the subject id.
	GenerateRefreshToken(userID uuid.UUID) (string, error)

	// ValidateAccessToken verifies signature and expiry of an access token.
	ValidateAccessToken(tokenString string) (*AccessClaims, error)

	// ValidateRefreshToken verifies signature and expiry of a refresh token.
	ValidateRefreshToken(tokenString string) (*RefreshClaims, error)

	// RefreshTokenTTL returns the configured refresh token lifetime,
	// used by the delivery layer for cookie max-age.
	RefreshTokenTTL() time.Duration
}

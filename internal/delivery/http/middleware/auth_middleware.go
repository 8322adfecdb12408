package middleware

import (
	"strings"

	deliverycontext "jobboard/internal/delivery/context"
	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/domain/service"
	"jobboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const identityKey = string(deliverycontext.KeyIdentity)

// AuthMiddleware is the access gate: it verifies the bearer token, attaches
// the typed identity to the request, and optionally checks route-level
// permissions against the role directory.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	resolver usecase.PermissionResolver
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, resolver usecase.PermissionResolver) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, resolver: resolver}
}

// Authenticate validates the JWT access token and stores the identity
// snapshot on the context. Every failure collapses into the same 401 so the
// response does not reveal whether a token was absent, expired or forged.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthenticated
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrUnauthenticated
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthenticated
		}

		c.Set(identityKey, claims.Identity())

		return next(c)
	}
}

// RequirePermission gates the route on the caller's role granting the
// registered route path and method. It must be used AFTER Authenticate.
// The directory is consulted per request, so revoking a permission takes
// effect immediately rather than at the next login.
func (m *AuthMiddleware) RequirePermission() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := IdentityFrom(c)
			if !ok {
				return domainerrors.ErrUnauthenticated
			}

			granted, err := m.resolver.Grants(c.Request().Context(), identity.Role.ID, c.Path(), c.Request().Method)
			if err != nil {
				return errors.Wrap(err, "failed to check permission")
			}
			if !granted {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

// IdentityFrom returns the authenticated identity attached by Authenticate.
func IdentityFrom(c echo.Context) (*entity.Identity, bool) {
	identity, ok := c.Get(identityKey).(*entity.Identity)

	return identity, ok
}

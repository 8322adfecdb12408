// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"jobboard/config"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/delivery/http/response"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/domain/service"
	"jobboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// refreshCookieName is where the refresh token lives between calls. The
// token never appears in a JSON body, only in this http-only cookie.
const refreshCookieName = "refresh_token"

// AuthHandler holds dependencies for the /auth route group.
type AuthHandler struct {
	uc       usecase.AuthUsecase
	tokenSvc service.TokenService
	cfg      *config.Config
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, tokenSvc service.TokenService, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:       uc,
		tokenSvc: tokenSvc,
		cfg:      cfg,
		logger:   logger,
	}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Age      int    `json:"age" validate:"omitempty,gte=0"`
	Gender   string `json:"gender"`
	Address  string `json:"address"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// sessionResponse is the body for login and refresh. The refresh token is
// deliberately absent: it travels in the cookie.
type sessionResponse struct {
	AccessToken string `json:"access_token"`
	Identity    any    `json:"identity"`
}

// Register handles the account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var input registerRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Age:      input.Age,
		Gender:   input.Gender,
		Address:  input.Address,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	// The password hash stays server-side.
	body := map[string]any{
		"id":    output.User.ID,
		"name":  output.User.Name,
		"email": output.User.Email,
		"role":  output.User.Role,
	}

	return response.Success(c, http.StatusCreated, body, "User registered successfully")
}

// Login opens a session: access token in the body, refresh token in the cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var input loginRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setRefreshCookie(c, output.RefreshToken)

	return response.Success(c, http.StatusOK, sessionResponse{
		AccessToken: output.AccessToken,
		Identity:    output.Identity,
	}, "Login successful")
}

// Refresh redeems the cookie's refresh token for a new pair. The spent
// token is rotated out, so replaying this request with an old cookie fails.
func (h *AuthHandler) Refresh(c echo.Context) error {
	cookie, err := c.Cookie(refreshCookieName)
	if err != nil || cookie.Value == "" {
		return domainerrors.ErrUnauthenticated
	}

	output, err := h.uc.Refresh(c.Request().Context(), cookie.Value)
	if err != nil {
		h.clearRefreshCookie(c)

		return errors.WithStack(err)
	}

	h.setRefreshCookie(c, output.RefreshToken)

	return response.Success(c, http.StatusOK, sessionResponse{
		AccessToken: output.AccessToken,
		Identity:    output.Identity,
	}, "Token refreshed successfully")
}

// Logout clears the ledger slot and the cookie. Calling it twice is fine.
func (h *AuthHandler) Logout(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	if err := h.uc.Logout(c.Request().Context(), identity.ID); err != nil {
		return errors.WithStack(err)
	}

	h.clearRefreshCookie(c)

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

// Account returns the caller's directory record with permissions expanded.
func (h *AuthHandler) Account(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	account, err := h.uc.Account(c.Request().Context(), identity.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, account, "")
}

// ChangePassword replaces the caller's password and ends their sessions.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	var input changePasswordRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	err := h.uc.ChangePassword(c.Request().Context(), identity.ID, usecase.ChangePasswordInput{
		CurrentPassword: input.CurrentPassword,
		NewPassword:     input.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.clearRefreshCookie(c)

	return response.Success(c, http.StatusOK, map[string]string{"message": "Password changed"}, "")
}

func (h *AuthHandler) setRefreshCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     refreshCookieName,
		Value:    token,
		Path:     "/auth",
		MaxAge:   int(h.tokenSvc.RefreshTokenTTL() / time.Second),
		HttpOnly: true,
		Secure:   h.cfg.Env.Env != "local",
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearRefreshCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     "/auth",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.Env.Env != "local",
		SameSite: http.SameSiteLaxMode,
	})
}

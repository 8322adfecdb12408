package handler

import (
	"log/slog"
	"net/http"

	"jobboard/internal/delivery/http/response"
	"jobboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CompanyHandler holds dependencies for the /companies route group.
type CompanyHandler struct {
	uc     usecase.CompanyUsecase
	logger *slog.Logger
}

// NewCompanyHandler is the constructor for CompanyHandler, injected by Fx.
func NewCompanyHandler(uc usecase.CompanyUsecase, logger *slog.Logger) *CompanyHandler {
	return &CompanyHandler{uc: uc, logger: logger}
}

type createCompanyRequest struct {
	Name        string `json:"name" validate:"required"`
	Address     string `json:"address"`
	Description string `json:"description"`
}

// Create handles company creation.
func (h *CompanyHandler) Create(c echo.Context) error {
	var input createCompanyRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid company input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	company, err := h.uc.CreateCompany(c.Request().Context(), usecase.CreateCompanyInput{
		Name:        input.Name,
		Address:     input.Address,
		Description: input.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, company, "Company created successfully")
}

// List returns all companies.
func (h *CompanyHandler) List(c echo.Context) error {
	companies, err := h.uc.ListCompanies(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, companies, "")
}

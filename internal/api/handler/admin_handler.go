package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fintrack/finance-tracker/internal/core/domain"
	"github.com/fintrack/finance-tracker/internal/core/ports"
)

// AdminHandler serves admin-only views. Route-level access control lives in
// the AdminOnly middleware; this handler assumes it already ran.
type AdminHandler struct {
	authService ports.AuthService
}

func NewAdminHandler(authService ports.AuthService) *AdminHandler {
	return &AdminHandler{authService: authService}
}

type listAccountsResponse struct {
	Data []*domain.Account `json:"data"`
}

// ListAccounts handles GET /v1/admin/accounts.
//
// @Summary      List all accounts (admin only)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listAccountsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/accounts [get]
func (h *AdminHandler) ListAccounts(c echo.Context) error {
	accounts, err := h.authService.ListAccounts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listAccountsResponse{Data: accounts})
}

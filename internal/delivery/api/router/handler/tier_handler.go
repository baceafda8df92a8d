package handler

import (
	"log/slog"
	"net/http"

	"membership/internal/delivery/api/response"
	"membership/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TierHandlerParams holds dependencies for TierHandler, injected by Fx.
type TierHandlerParams struct {
	fx.In

	Catalog usecase.TierCatalogUsecase
	Logger  *slog.Logger
}

// TierHandler serves the tier catalog
type TierHandler struct {
	catalog usecase.TierCatalogUsecase
	logger  *slog.Logger
}

// NewTierHandler is the constructor for TierHandler
func NewTierHandler(params TierHandlerParams) *TierHandler {
	return &TierHandler{
		catalog: params.Catalog,
		logger:  params.Logger,
	}
}

// ListTiers returns the catalog from the lowest to the highest tier
func (h *TierHandler) ListTiers(c echo.Context) error {
	tiers, err := h.catalog.ListTiersSortedAscending(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tiers)
}

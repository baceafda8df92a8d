package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"membership/internal/delivery/api/response"
	"membership/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MembershipHandlerParams holds dependencies for MembershipHandler, injected by Fx.
type MembershipHandlerParams struct {
	fx.In

	MembershipUC usecase.MembershipUsecase
	CardUC       usecase.MembershipCardUsecase
	Logger       *slog.Logger
}

// MembershipHandler serves a customer's membership state
type MembershipHandler struct {
	membershipUC usecase.MembershipUsecase
	cardUC       usecase.MembershipCardUsecase
	logger       *slog.Logger
}

// NewMembershipHandler is the constructor for MembershipHandler
func NewMembershipHandler(params MembershipHandlerParams) *MembershipHandler {
	return &MembershipHandler{
		membershipUC: params.MembershipUC,
		cardUC:       params.CardUC,
		logger:       params.Logger,
	}
}

func customerIDParam(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("customerId"))
}

// GetMembership returns the active card with its tier, issuing the default card if needed
func (h *MembershipHandler) GetMembership(c echo.Context) error {
	customerID, err := customerIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid customer ID")
	}

	membership, err := h.cardUC.GetActiveCardWithTier(c.Request().Context(), customerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if membership == nil {
		return response.NotFound(c, "CARD_NOT_FOUND", "No membership tier is configured")
	}

	return response.Success(c, http.StatusOK, membership)
}

// EvaluateMembership re-runs the upgrade evaluation and returns the active card
func (h *MembershipHandler) EvaluateMembership(c echo.Context) error {
	customerID, err := customerIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid customer ID")
	}

	card, err := h.membershipUC.EvaluateMembership(c.Request().Context(), customerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, card)
}

// ListCustomerCards returns the customer's card history, newest first
func (h *MembershipHandler) ListCustomerCards(c echo.Context) error {
	customerID, err := customerIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid customer ID")
	}

	cards, err := h.cardUC.ListCustomerCards(c.Request().Context(), customerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cards)
}

// GetLoyaltyRecord returns the ledger record for ?year=, defaulting to the current year
func (h *MembershipHandler) GetLoyaltyRecord(c echo.Context) error {
	customerID, err := customerIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid customer ID")
	}

	var year *int
	if raw := c.QueryParam("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return response.BadRequest(c, "INVALID_YEAR", "Year must be a positive integer")
		}
		year = &parsed
	}

	record, err := h.membershipUC.GetLoyaltyRecord(c.Request().Context(), customerID, year)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, record)
}

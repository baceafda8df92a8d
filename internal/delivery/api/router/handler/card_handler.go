package handler

import (
	"log/slog"
	"net/http"

	"membership/internal/delivery/api/response"
	deliverycontext "membership/internal/delivery/context"
	"membership/internal/domain/service"
	"membership/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CardHandlerParams holds dependencies for CardHandler, injected by Fx.
type CardHandlerParams struct {
	fx.In

	CardUC    usecase.MembershipCardUsecase
	QRCodeSvc service.QRCodeService
	Logger    *slog.Logger
}

// CardHandler serves individual membership cards
type CardHandler struct {
	cardUC    usecase.MembershipCardUsecase
	qrCodeSvc service.QRCodeService
	logger    *slog.Logger
}

// NewCardHandler is the constructor for CardHandler
func NewCardHandler(params CardHandlerParams) *CardHandler {
	return &CardHandler{
		cardUC:    params.CardUC,
		qrCodeSvc: params.QRCodeSvc,
		logger:    params.Logger,
	}
}

// GetCard returns a card by ID
func (h *CardHandler) GetCard(c echo.Context) error {
	cardID, err := uuid.Parse(c.Param("cardId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid card ID")
	}

	card, err := h.cardUC.GetCardByID(c.Request().Context(), cardID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, card)
}

// GetCardQR renders the card as a PNG QR code
func (h *CardHandler) GetCardQR(c echo.Context) error {
	ctx := c.Request().Context()

	cardID, err := uuid.Parse(c.Param("cardId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid card ID")
	}

	card, err := h.cardUC.GetCardByID(ctx, cardID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.qrCodeSvc.GenerateCardQR(card)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Error("Failed to generate card QR code",
			slog.String("card_id", cardID.String()),
			slog.Any("error", err),
		)

		return response.InternalServerError(c, "QR_GENERATION_FAILED", "Failed to generate QR code")
	}

	return response.PNG(c, png)
}

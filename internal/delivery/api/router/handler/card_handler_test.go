package handler

import (
	"net/http"
	"testing"

	"membership/internal/domain/entity"
	domainerrors "membership/internal/domain/errors"
	mockService "membership/internal/mocks/service"
	mockUsecase "membership/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCardHandler(t *testing.T) (*CardHandler, *mockUsecase.MockMembershipCardUsecase, *mockService.MockQRCodeService) {
	cardUC := mockUsecase.NewMockMembershipCardUsecase(t)
	qrSvc := mockService.NewMockQRCodeService(t)

	return NewCardHandler(CardHandlerParams{
		CardUC:    cardUC,
		QRCodeSvc: qrSvc,
		Logger:    newDiscardLogger(),
	}), cardUC, qrSvc
}

func cardRequest(cardID string) handlerRequest {
	return handlerRequest{
		method: http.MethodGet,
		target: "/",
		params: map[string]string{"cardId": cardID},
	}
}

func TestCardHandler_GetCard(t *testing.T) {
	cardID := uuid.New()

	tests := []struct {
		name       string
		cardID     string
		setupMock  func(cardUC *mockUsecase.MockMembershipCardUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name:   "found",
			cardID: cardID.String(),
			setupMock: func(cardUC *mockUsecase.MockMembershipCardUsecase) {
				cardUC.EXPECT().GetCardByID(mock.Anything, cardID).Return(&entity.MembershipCard{ID: cardID}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "not found",
			cardID: cardID.String(),
			setupMock: func(cardUC *mockUsecase.MockMembershipCardUsecase) {
				cardUC.EXPECT().GetCardByID(mock.Anything, cardID).
					Return(nil, errors.Wrapf(domainerrors.ErrCardNotFound, "card %s", cardID))
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "CARD_NOT_FOUND",
		},
		{
			name:       "invalid id",
			cardID:     "123",
			setupMock:  func(_ *mockUsecase.MockMembershipCardUsecase) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, cardUC, _ := newCardHandler(t)
			tt.setupMock(cardUC)

			c, rec := newTestContext(cardRequest(tt.cardID))
			require.NoError(t, h.GetCard(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			}
		})
	}
}

func TestCardHandler_GetCardQR(t *testing.T) {
	cardID := uuid.New()
	card := &entity.MembershipCard{ID: cardID, CustomerID: uuid.New()}

	t.Run("renders png", func(t *testing.T) {
		h, cardUC, qrSvc := newCardHandler(t)
		png := []byte{0x89, 'P', 'N', 'G'}
		cardUC.EXPECT().GetCardByID(mock.Anything, cardID).Return(card, nil)
		qrSvc.EXPECT().GenerateCardQR(card).Return(png, nil)

		c, rec := newTestContext(cardRequest(cardID.String()))
		require.NoError(t, h.GetCardQR(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Equal(t, png, rec.Body.Bytes())
	})

	t.Run("generation failure", func(t *testing.T) {
		h, cardUC, qrSvc := newCardHandler(t)
		cardUC.EXPECT().GetCardByID(mock.Anything, cardID).Return(card, nil)
		qrSvc.EXPECT().GenerateCardQR(card).Return(nil, errors.New("content too long"))

		c, rec := newTestContext(cardRequest(cardID.String()))
		require.NoError(t, h.GetCardQR(c))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "QR_GENERATION_FAILED", decodeError(t, rec).Code)
	})
}

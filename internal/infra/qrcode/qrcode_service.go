package qrcode

import (
	"encoding/json"
	"fmt"

	"membership/config"
	"membership/internal/domain/entity"
	"membership/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

// CardQRType marks QR payloads that encode a membership card
const CardQRType = "membership_card"

const defaultQRSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultQRSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// NewQRCodeServiceFromConfig builds the service from the qrcode config section
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultQRSize, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// GenerateCardQR renders the card as a PNG QR code
func (s *qrcodeService) GenerateCardQR(card *entity.MembershipCard) ([]byte, error) {
	if card == nil {
		return nil, fmt.Errorf("card is required")
	}

	data := service.CardQRPayload{
		Type:       CardQRType,
		CardID:     card.ID.String(),
		CustomerID: card.CustomerID.String(),
	}
	if card.TierSnapshot != nil {
		data.Tier = card.TierSnapshot.Name
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseCardQR parses QR code data back into the card payload
func (s *qrcodeService) ParseCardQR(qrData string) (*service.CardQRPayload, error) {
	var data service.CardQRPayload
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != CardQRType {
		return nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	if _, err := uuid.Parse(data.CardID); err != nil {
		return nil, fmt.Errorf("failed to parse card ID: %w", err)
	}
	if _, err := uuid.Parse(data.CustomerID); err != nil {
		return nil, fmt.Errorf("failed to parse customer ID: %w", err)
	}

	return &data, nil
}

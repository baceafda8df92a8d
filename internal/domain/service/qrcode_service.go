package service

import (
	"membership/internal/domain/entity"
)

// QRCodeService defines the interface for membership card QR codes
type QRCodeService interface {
	// GenerateCardQR renders the card as a PNG QR code
	GenerateCardQR(card *entity.MembershipCard) ([]byte, error)

	// ParseCardQR parses QR code data back into the card payload
	ParseCardQR(qrData string) (*CardQRPayload, error)
}

// CardQRPayload is the content encoded in a membership card QR code
type CardQRPayload struct {
	Type       string `json:"type"`
	CardID     string `json:"card_id"`
	CustomerID string `json:"customer_id"`
	Tier       string `json:"tier"`
}

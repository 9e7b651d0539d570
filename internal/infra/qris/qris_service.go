package qris

import (
	"fmt"

	"pklradar/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrisService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRISService creates a new QRIS payment QR rendering service instance
func NewQRISService(size int, errorCorrectionLevel string) service.QRISService {
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

	return &qrisService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GeneratePaymentQR renders the vendor's QRIS payment link as a PNG QR code.
// The link is encoded verbatim so any scanner app lands on the payment page.
func (s *qrisService) GeneratePaymentQR(qrisLink string) ([]byte, error) {
	qrCode, err := qrcode.New(qrisLink, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

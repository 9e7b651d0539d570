package service

// QRISService defines the interface for QRIS payment QR rendering
type QRISService interface {
	// GeneratePaymentQR renders the vendor's QRIS payment link as a PNG QR code
	GeneratePaymentQR(qrisLink string) ([]byte, error)
}

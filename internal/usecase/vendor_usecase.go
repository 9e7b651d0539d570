package usecase

import (
	"context"

	"pklradar/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateVendorInput represents the input for registering a vendor profile
type CreateVendorInput struct {
	BusinessName    string `json:"business_name" validate:"required,max=100"`
	Category        string `json:"category" validate:"required,max=50"`
	OperatingHours  string `json:"operating_hours" validate:"max=100"`
	About           string `json:"about" validate:"max=500"`
	HomeAddress     string `json:"home_address" validate:"max=255"`
	BankAccountName string `json:"bank_account_name" validate:"max=100"`
	QRISLink        string `json:"qris_link" validate:"omitempty,url"`
}

// UpdateVendorInput represents the input for updating an existing vendor profile
type UpdateVendorInput struct {
	BusinessName    *string `json:"business_name,omitempty" validate:"omitempty,max=100"`
	Category        *string `json:"category,omitempty" validate:"omitempty,max=50"`
	OperatingHours  *string `json:"operating_hours,omitempty" validate:"omitempty,max=100"`
	About           *string `json:"about,omitempty" validate:"omitempty,max=500"`
	HomeAddress     *string `json:"home_address,omitempty" validate:"omitempty,max=255"`
	BankAccountName *string `json:"bank_account_name,omitempty" validate:"omitempty,max=100"`
	QRISLink        *string `json:"qris_link,omitempty" validate:"omitempty,url"`
}

// VendorLiveOutput bundles a visible vendor with its most recent location
type VendorLiveOutput struct {
	Vendor   *entity.Vendor         `json:"vendor"`
	Location *entity.VendorLocation `json:"location"`
}

// VendorUsecase defines the interface for vendor profile management use cases
type VendorUsecase interface {
	// CreateVendorProfile registers the vendor profile of a user account
	CreateVendorProfile(ctx context.Context, userID uuid.UUID, input *CreateVendorInput) (*entity.Vendor, error)

	// GetVendorByUser retrieves the vendor profile owned by a user account
	GetVendorByUser(ctx context.Context, userID uuid.UUID) (*entity.Vendor, error)

	// UpdateVendorProfile updates the vendor profile owned by a user account
	UpdateVendorProfile(ctx context.Context, userID uuid.UUID, input *UpdateVendorInput) (*entity.Vendor, error)

	// SetVendorVerification records an admin verification decision
	SetVendorVerification(ctx context.Context, vendorID uuid.UUID, status entity.VerificationStatus, note string) error

	// GetVendorLive retrieves a visible vendor with its latest location and
	// counts the view toward the vendor's daily stats
	GetVendorLive(ctx context.Context, vendorID uuid.UUID) (*VendorLiveOutput, error)

	// GetDailyStats retrieves the daily activity counters of the caller's vendor profile
	GetDailyStats(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.VendorDailyStats, error)

	// GetPaymentQR renders the vendor's QRIS payment link as a PNG QR code
	GetPaymentQR(ctx context.Context, vendorID uuid.UUID) ([]byte, error)
}

// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"pklradar/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for vendor persistence.
var (
	// ErrVendorNotFound is returned when a vendor is not found.
	ErrVendorNotFound = errors.New("vendor not found")
	// ErrDuplicateVendorProfile is returned when a user already has a vendor profile.
	ErrDuplicateVendorProfile = errors.New("vendor profile already exists")
)

// VendorRepository defines the interface for vendor-related database operations.
type VendorRepository interface {
	// CreateVendor persists a new vendor profile.
	CreateVendor(ctx context.Context, vendor *entity.Vendor) error

	// FindVendorByID retrieves a vendor by its unique ID.
	FindVendorByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error)

	// FindVendorByUser retrieves the vendor profile owned by a user account.
	FindVendorByUser(ctx context.Context, userID uuid.UUID) (*entity.Vendor, error)

	// FindActiveVerifiedVendors retrieves all vendors that are currently
	// broadcasting location and have been accepted by an admin. These are
	// the only vendors eligible for buyer-side proximity checks and search.
	FindActiveVerifiedVendors(ctx context.Context) ([]*entity.Vendor, error)

	// UpdateVendor persists profile field changes for an existing vendor.
	UpdateVendor(ctx context.Context, vendor *entity.Vendor) error

	// SetVendorActive updates only the active flag of a vendor.
	SetVendorActive(ctx context.Context, id uuid.UUID, isActive bool) error

	// UpdateVerification records an admin verification decision.
	UpdateVerification(ctx context.Context, id uuid.UUID, status entity.VerificationStatus, note string) error
}

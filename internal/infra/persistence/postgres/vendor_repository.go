// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"pklradar/internal/domain/entity"
	domainerrors "pklradar/internal/domain/errors"
	"pklradar/internal/domain/repository"
	"pklradar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// vendorRepository implements the repository.VendorRepository interface.
type vendorRepository struct {
	db *gorm.DB
}

// NewVendorRepository is the constructor for vendorRepository.
func NewVendorRepository(db *gorm.DB) repository.VendorRepository {
	return &vendorRepository{
		db: db,
	}
}

// CreateVendor persists a new vendor profile.
func (repo *vendorRepository) CreateVendor(ctx context.Context, vendor *entity.Vendor) error {
	vendorM := fromVendorDomain(vendor)

	if err := repo.db.WithContext(ctx).Create(vendorM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateVendorProfile
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required vendor information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create vendor")
	}

	// Update the entity with generated values
	vendor.ID = vendorM.ID
	vendor.CreatedAt = vendorM.CreatedAt
	vendor.UpdatedAt = vendorM.UpdatedAt

	return nil
}

// FindVendorByID retrieves a vendor by its unique ID.
func (repo *vendorRepository) FindVendorByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	var vendorM model.VendorModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&vendorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor by ID")
	}

	return toVendorDomain(&vendorM), nil
}

// FindVendorByUser retrieves the vendor profile owned by a user account.
func (repo *vendorRepository) FindVendorByUser(ctx context.Context, userID uuid.UUID) (*entity.Vendor, error) {
	var vendorM model.VendorModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&vendorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor by user")
	}

	return toVendorDomain(&vendorM), nil
}

// FindActiveVerifiedVendors retrieves all vendors currently broadcasting location
// that have been accepted by an admin.
func (repo *vendorRepository) FindActiveVerifiedVendors(ctx context.Context) ([]*entity.Vendor, error) {
	var vendorModels []*model.VendorModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ? AND verification_status = ?", true, string(entity.VerificationAccepted)).
		Order("business_name ASC").
		Find(&vendorModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active verified vendors")
	}

	vendors := make([]*entity.Vendor, 0, len(vendorModels))
	for _, vendorM := range vendorModels {
		vendors = append(vendors, toVendorDomain(vendorM))
	}

	return vendors, nil
}

// UpdateVendor persists profile field changes for an existing vendor.
func (repo *vendorRepository) UpdateVendor(ctx context.Context, vendor *entity.Vendor) error {
	vendorM := fromVendorDomain(vendor)

	result := repo.db.WithContext(ctx).
		Model(&model.VendorModel{}).
		Where("id = ?", vendor.ID).
		Updates(map[string]any{
			"business_name":     vendorM.BusinessName,
			"category":          vendorM.Category,
			"operating_hours":   vendorM.OperatingHours,
			"about":             vendorM.About,
			"home_address":      vendorM.HomeAddress,
			"bank_account_name": vendorM.BankAccountName,
			"qris_link":         vendorM.QRISLink,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update vendor")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVendorNotFound
	}

	return nil
}

// SetVendorActive updates only the active flag of a vendor.
func (repo *vendorRepository) SetVendorActive(ctx context.Context, id uuid.UUID, isActive bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VendorModel{}).
		Where("id = ?", id).
		Update("is_active", isActive)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set vendor active")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVendorNotFound
	}

	return nil
}

// UpdateVerification records an admin verification decision.
func (repo *vendorRepository) UpdateVerification(ctx context.Context, id uuid.UUID, status entity.VerificationStatus, note string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VendorModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"verification_status": string(status),
			"verification_note":   note,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update verification")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVendorNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toVendorDomain converts a GORM VendorModel to a domain Vendor entity.
func toVendorDomain(data *model.VendorModel) *entity.Vendor {
	if data == nil {
		return nil
	}

	return &entity.Vendor{
		ID:                 data.ID,
		UserID:             data.UserID,
		BusinessName:       data.BusinessName,
		Category:           data.Category,
		OperatingHours:     data.OperatingHours,
		About:              data.About,
		HomeAddress:        data.HomeAddress,
		BankAccountName:    data.BankAccountName,
		QRISLink:           data.QRISLink,
		IsActive:           data.IsActive,
		VerificationStatus: entity.VerificationStatus(data.VerificationStatus),
		VerificationNote:   data.VerificationNote,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromVendorDomain converts a domain Vendor entity to a GORM VendorModel.
func fromVendorDomain(data *entity.Vendor) *model.VendorModel {
	if data == nil {
		return nil
	}

	return &model.VendorModel{
		ID:                 data.ID,
		UserID:             data.UserID,
		BusinessName:       data.BusinessName,
		Category:           data.Category,
		OperatingHours:     data.OperatingHours,
		About:              data.About,
		HomeAddress:        data.HomeAddress,
		BankAccountName:    data.BankAccountName,
		QRISLink:           data.QRISLink,
		IsActive:           data.IsActive,
		VerificationStatus: string(data.VerificationStatus),
		VerificationNote:   data.VerificationNote,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

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
	"gorm.io/gorm/clause"
)

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// CreateVendorLocation appends a new entry to a vendor's location history.
func (repo *locationRepository) CreateVendorLocation(ctx context.Context, location *entity.VendorLocation) error {
	locationM := fromVendorLocationDomain(location)

	if err := repo.db.WithContext(ctx).Create(locationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrVendorNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create vendor location")
	}

	// Update the entity with generated values
	location.ID = locationM.ID

	return nil
}

// FindLatestVendorLocation retrieves the most recent location of a vendor.
func (repo *locationRepository) FindLatestVendorLocation(ctx context.Context, vendorID uuid.UUID) (*entity.VendorLocation, error) {
	var locationM model.VendorLocationModel

	if err := repo.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("recorded_at DESC").
		First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest vendor location")
	}

	return toVendorLocationDomain(&locationM), nil
}

// ListVendorLocations retrieves a vendor's location history, newest first.
func (repo *locationRepository) ListVendorLocations(ctx context.Context, vendorID uuid.UUID, limit int) ([]*entity.VendorLocation, error) {
	var locationModels []*model.VendorLocationModel

	if err := repo.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("recorded_at DESC").
		Limit(limit).
		Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list vendor locations")
	}

	locations := make([]*entity.VendorLocation, 0, len(locationModels))
	for _, locationM := range locationModels {
		locations = append(locations, toVendorLocationDomain(locationM))
	}

	return locations, nil
}

// UpsertBuyerLocation creates or replaces a buyer's single stored location.
func (repo *locationRepository) UpsertBuyerLocation(ctx context.Context, location *entity.BuyerLocation) error {
	locationM := fromBuyerLocationDomain(location)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "buyer_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"latitude", "longitude", "radius_m", "updated_at"}),
		}).
		Create(locationM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert buyer location")
	}

	return nil
}

// FindBuyerLocation retrieves a buyer's stored location.
func (repo *locationRepository) FindBuyerLocation(ctx context.Context, buyerID uuid.UUID) (*entity.BuyerLocation, error) {
	var locationM model.BuyerLocationModel

	if err := repo.db.WithContext(ctx).
		Where("buyer_id = ?", buyerID).
		First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find buyer location")
	}

	return toBuyerLocationDomain(&locationM), nil
}

// --- Mapper Functions ---

// toVendorLocationDomain converts a GORM VendorLocationModel to a domain VendorLocation entity.
func toVendorLocationDomain(data *model.VendorLocationModel) *entity.VendorLocation {
	if data == nil {
		return nil
	}

	return &entity.VendorLocation{
		ID:         data.ID,
		VendorID:   data.VendorID,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		RecordedAt: data.RecordedAt,
	}
}

// fromVendorLocationDomain converts a domain VendorLocation entity to a GORM VendorLocationModel.
func fromVendorLocationDomain(data *entity.VendorLocation) *model.VendorLocationModel {
	if data == nil {
		return nil
	}

	return &model.VendorLocationModel{
		ID:         data.ID,
		VendorID:   data.VendorID,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		RecordedAt: data.RecordedAt,
	}
}

// toBuyerLocationDomain converts a GORM BuyerLocationModel to a domain BuyerLocation entity.
func toBuyerLocationDomain(data *model.BuyerLocationModel) *entity.BuyerLocation {
	if data == nil {
		return nil
	}

	return &entity.BuyerLocation{
		BuyerID:   data.BuyerID,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		RadiusM:   data.RadiusM,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromBuyerLocationDomain converts a domain BuyerLocation entity to a GORM BuyerLocationModel.
func fromBuyerLocationDomain(data *entity.BuyerLocation) *model.BuyerLocationModel {
	if data == nil {
		return nil
	}

	return &model.BuyerLocationModel{
		BuyerID:   data.BuyerID,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		RadiusM:   data.RadiusM,
		UpdatedAt: data.UpdatedAt,
	}
}

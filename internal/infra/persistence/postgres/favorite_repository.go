package postgres

import (
	"context"
	"database/sql"

	"pklradar/internal/domain/entity"
	domainerrors "pklradar/internal/domain/errors"
	"pklradar/internal/domain/repository"
	"pklradar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// favoriteRepository implements the repository.FavoriteRepository interface.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{
		db: db,
	}
}

// CreateFavorite persists a new (buyer, vendor) favorite pair.
func (repo *favoriteRepository) CreateFavorite(ctx context.Context, favorite *entity.Favorite) error {
	favoriteM := fromFavoriteDomain(favorite)

	if err := repo.db.WithContext(ctx).Create(favoriteM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateFavorite
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrVendorNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create favorite")
	}

	// Update the entity with generated values
	favorite.ID = favoriteM.ID
	favorite.CreatedAt = favoriteM.CreatedAt

	return nil
}

// DeleteFavorite removes the favorite for the given pair.
func (repo *favoriteRepository) DeleteFavorite(ctx context.Context, buyerID, vendorID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("buyer_id = ? AND vendor_id = ?", buyerID, vendorID).
		Delete(&model.FavoriteModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete favorite")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

// FindFavoritesByBuyer retrieves all favorites of a buyer, newest first.
func (repo *favoriteRepository) FindFavoritesByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.Favorite, error) {
	var favoriteModels []*model.FavoriteModel

	if err := repo.db.WithContext(ctx).
		Where("buyer_id = ?", buyerID).
		Order("created_at DESC").
		Find(&favoriteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find favorites by buyer")
	}

	favorites := make([]*entity.Favorite, 0, len(favoriteModels))
	for _, favoriteM := range favoriteModels {
		favorites = append(favorites, toFavoriteDomain(favoriteM))
	}

	return favorites, nil
}

// favoriterRow is the scan target for the favoriter fan-out query. The
// location columns are nullable because the buyer may never have stored one.
type favoriterRow struct {
	BuyerID   uuid.UUID
	Latitude  sql.NullFloat64
	Longitude sql.NullFloat64
	RadiusM   sql.NullInt64
	UpdatedAt sql.NullTime
}

// FindFavoritersWithLocation retrieves every buyer who favorited the vendor,
// each bundled with their stored location when present. A single LEFT JOIN
// avoids an N+1 lookup during the activation fan-out.
func (repo *favoriteRepository) FindFavoritersWithLocation(ctx context.Context, vendorID uuid.UUID) ([]*entity.FavoriterLocation, error) {
	var rows []*favoriterRow

	query := `
		SELECT f.buyer_id,
		       bl.latitude,
		       bl.longitude,
		       bl.radius_m,
		       bl.updated_at
		FROM favorites f
		LEFT JOIN buyer_locations bl ON bl.buyer_id = f.buyer_id
		WHERE f.vendor_id = ?
		ORDER BY f.created_at DESC
	`

	if err := repo.db.WithContext(ctx).
		Raw(query, vendorID).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find favoriters with location")
	}

	favoriters := make([]*entity.FavoriterLocation, 0, len(rows))
	for _, row := range rows {
		favoriter := &entity.FavoriterLocation{
			BuyerID: row.BuyerID,
		}

		if row.Latitude.Valid && row.Longitude.Valid {
			favoriter.Location = &entity.BuyerLocation{
				BuyerID:   row.BuyerID,
				Latitude:  row.Latitude.Float64,
				Longitude: row.Longitude.Float64,
				RadiusM:   int(row.RadiusM.Int64),
				UpdatedAt: row.UpdatedAt.Time,
			}
		}

		favoriters = append(favoriters, favoriter)
	}

	return favoriters, nil
}

// --- Mapper Functions ---

// toFavoriteDomain converts a GORM FavoriteModel to a domain Favorite entity.
func toFavoriteDomain(data *model.FavoriteModel) *entity.Favorite {
	if data == nil {
		return nil
	}

	return &entity.Favorite{
		ID:        data.ID,
		BuyerID:   data.BuyerID,
		VendorID:  data.VendorID,
		CreatedAt: data.CreatedAt,
	}
}

// fromFavoriteDomain converts a domain Favorite entity to a GORM FavoriteModel.
func fromFavoriteDomain(data *entity.Favorite) *model.FavoriteModel {
	if data == nil {
		return nil
	}

	return &model.FavoriteModel{
		ID:        data.ID,
		BuyerID:   data.BuyerID,
		VendorID:  data.VendorID,
		CreatedAt: data.CreatedAt,
	}
}

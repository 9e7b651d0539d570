package impl

import (
	"context"
	"time"

	"pklradar/internal/domain/entity"
	domainerrors "pklradar/internal/domain/errors"
	"pklradar/internal/domain/repository"
	"pklradar/internal/errors"
	"pklradar/internal/usecase"

	"github.com/google/uuid"
)

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	vendorRepo   repository.VendorRepository
}

// NewFavoriteService creates a new favorite management service instance
func NewFavoriteService(
	favoriteRepo repository.FavoriteRepository,
	vendorRepo repository.VendorRepository,
) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		vendorRepo:   vendorRepo,
	}
}

// AddFavorite marks a vendor as a favorite of the buyer
func (s *favoriteService) AddFavorite(ctx context.Context, buyerID, vendorID uuid.UUID) (*entity.Favorite, error) {
	if _, err := s.vendorRepo.FindVendorByID(ctx, vendorID); err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, domainerrors.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "find vendor by ID")
	}

	favorite := &entity.Favorite{
		ID:        uuid.New(),
		BuyerID:   buyerID,
		VendorID:  vendorID,
		CreatedAt: time.Now(),
	}

	if err := s.favoriteRepo.CreateFavorite(ctx, favorite); err != nil {
		if errors.Is(err, repository.ErrDuplicateFavorite) {
			return nil, domainerrors.ErrFavoriteExists
		}

		return nil, errors.Wrap(err, "create favorite")
	}

	return favorite, nil
}

// RemoveFavorite removes a vendor from the buyer's favorites
func (s *favoriteService) RemoveFavorite(ctx context.Context, buyerID, vendorID uuid.UUID) error {
	if err := s.favoriteRepo.DeleteFavorite(ctx, buyerID, vendorID); err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return domainerrors.ErrFavoriteNotFound
		}

		return errors.Wrap(err, "delete favorite")
	}

	return nil
}

// ListFavorites retrieves the buyer's favorites with vendor profiles
func (s *favoriteService) ListFavorites(ctx context.Context, buyerID uuid.UUID) ([]*usecase.FavoriteItem, error) {
	favorites, err := s.favoriteRepo.FindFavoritesByBuyer(ctx, buyerID)
	if err != nil {
		return nil, errors.Wrap(err, "find favorites by buyer")
	}

	items := make([]*usecase.FavoriteItem, 0, len(favorites))
	for _, favorite := range favorites {
		vendor, err := s.vendorRepo.FindVendorByID(ctx, favorite.VendorID)
		if err != nil {
			if errors.Is(err, repository.ErrVendorNotFound) {
				// Vendor profile removed since the favorite was created.
				continue
			}

			return nil, errors.Wrap(err, "find vendor by ID")
		}

		items = append(items, &usecase.FavoriteItem{
			Favorite: favorite,
			Vendor:   vendor,
		})
	}

	return items, nil
}

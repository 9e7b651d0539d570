package usecase

import (
	"context"

	"pklradar/internal/domain/entity"

	"github.com/google/uuid"
)

// FavoriteItem pairs a favorite with the favorited vendor's profile
type FavoriteItem struct {
	Favorite *entity.Favorite `json:"favorite"`
	Vendor   *entity.Vendor   `json:"vendor"`
}

// FavoriteUsecase defines the interface for favorite management use cases
type FavoriteUsecase interface {
	// AddFavorite marks a vendor as a favorite of the buyer
	AddFavorite(ctx context.Context, buyerID, vendorID uuid.UUID) (*entity.Favorite, error)

	// RemoveFavorite removes a vendor from the buyer's favorites
	RemoveFavorite(ctx context.Context, buyerID, vendorID uuid.UUID) error

	// ListFavorites retrieves the buyer's favorites with vendor profiles
	ListFavorites(ctx context.Context, buyerID uuid.UUID) ([]*FavoriteItem, error)
}

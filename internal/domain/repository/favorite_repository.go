// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"pklradar/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for favorite persistence.
var (
	// ErrFavoriteNotFound is returned when a favorite is not found.
	ErrFavoriteNotFound = errors.New("favorite not found")
	// ErrDuplicateFavorite is returned when the (buyer, vendor) pair already exists.
	ErrDuplicateFavorite = errors.New("favorite already exists")
)

// FavoriteRepository defines the interface for favorite-related database operations.
type FavoriteRepository interface {
	// CreateFavorite persists a new (buyer, vendor) favorite pair.
	CreateFavorite(ctx context.Context, favorite *entity.Favorite) error

	// DeleteFavorite removes the favorite for the given pair.
	DeleteFavorite(ctx context.Context, buyerID, vendorID uuid.UUID) error

	// FindFavoritesByBuyer retrieves all favorites of a buyer, newest first.
	FindFavoritesByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.Favorite, error)

	// FindFavoritersWithLocation retrieves every buyer who favorited the
	// vendor, each bundled with their stored location or nil when absent.
	// This is the fan-out source for activation notifications.
	FindFavoritersWithLocation(ctx context.Context, vendorID uuid.UUID) ([]*entity.FavoriterLocation, error)
}

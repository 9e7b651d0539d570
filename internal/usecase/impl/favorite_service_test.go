package impl

import (
	"context"
	"testing"

	"pklradar/internal/domain/entity"
	domainerrors "pklradar/internal/domain/errors"
	"pklradar/internal/domain/repository"
	mockRepo "pklradar/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFavoriteService_AddFavorite(t *testing.T) {
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	vendorRepo := mockRepo.NewMockVendorRepository(t)
	service := NewFavoriteService(favoriteRepo, vendorRepo)

	ctx := context.Background()
	buyerID := uuid.New()
	vendor := activeVendor("Bakso Pak Budi")

	vendorRepo.EXPECT().
		FindVendorByID(ctx, vendor.ID).
		Return(vendor, nil)

	favoriteRepo.EXPECT().
		CreateFavorite(ctx, mock.AnythingOfType("*entity.Favorite")).
		Return(nil)

	favorite, err := service.AddFavorite(ctx, buyerID, vendor.ID)
	require.NoError(t, err)
	assert.Equal(t, buyerID, favorite.BuyerID)
	assert.Equal(t, vendor.ID, favorite.VendorID)
}

func TestFavoriteService_AddFavorite_UnknownVendor(t *testing.T) {
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	vendorRepo := mockRepo.NewMockVendorRepository(t)
	service := NewFavoriteService(favoriteRepo, vendorRepo)

	ctx := context.Background()
	vendorID := uuid.New()

	vendorRepo.EXPECT().
		FindVendorByID(ctx, vendorID).
		Return(nil, repository.ErrVendorNotFound)

	_, err := service.AddFavorite(ctx, uuid.New(), vendorID)
	assert.ErrorIs(t, err, domainerrors.ErrVendorNotFound)
}

func TestFavoriteService_AddFavorite_Duplicate(t *testing.T) {
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	vendorRepo := mockRepo.NewMockVendorRepository(t)
	service := NewFavoriteService(favoriteRepo, vendorRepo)

	ctx := context.Background()
	vendor := activeVendor("Bakso Pak Budi")

	vendorRepo.EXPECT().
		FindVendorByID(ctx, vendor.ID).
		Return(vendor, nil)

	favoriteRepo.EXPECT().
		CreateFavorite(ctx, mock.AnythingOfType("*entity.Favorite")).
		Return(repository.ErrDuplicateFavorite)

	_, err := service.AddFavorite(ctx, uuid.New(), vendor.ID)
	assert.ErrorIs(t, err, domainerrors.ErrFavoriteExists)
}

func TestFavoriteService_RemoveFavorite(t *testing.T) {
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	vendorRepo := mockRepo.NewMockVendorRepository(t)
	service := NewFavoriteService(favoriteRepo, vendorRepo)

	ctx := context.Background()
	buyerID := uuid.New()
	vendorID := uuid.New()

	t.Run("success", func(t *testing.T) {
		favoriteRepo.EXPECT().
			DeleteFavorite(ctx, buyerID, vendorID).
			Return(nil).
			Once()

		require.NoError(t, service.RemoveFavorite(ctx, buyerID, vendorID))
	})

	t.Run("not found", func(t *testing.T) {
		favoriteRepo.EXPECT().
			DeleteFavorite(ctx, buyerID, vendorID).
			Return(repository.ErrFavoriteNotFound).
			Once()

		err := service.RemoveFavorite(ctx, buyerID, vendorID)
		assert.ErrorIs(t, err, domainerrors.ErrFavoriteNotFound)
	})
}

func TestFavoriteService_ListFavorites_SkipsRemovedVendors(t *testing.T) {
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	vendorRepo := mockRepo.NewMockVendorRepository(t)
	service := NewFavoriteService(favoriteRepo, vendorRepo)

	ctx := context.Background()
	buyerID := uuid.New()
	kept := activeVendor("Bakso Pak Budi")
	removedID := uuid.New()
	favorites := []*entity.Favorite{
		{ID: uuid.New(), BuyerID: buyerID, VendorID: kept.ID},
		{ID: uuid.New(), BuyerID: buyerID, VendorID: removedID},
	}

	favoriteRepo.EXPECT().
		FindFavoritesByBuyer(ctx, buyerID).
		Return(favorites, nil)

	vendorRepo.EXPECT().
		FindVendorByID(ctx, kept.ID).
		Return(kept, nil)

	vendorRepo.EXPECT().
		FindVendorByID(ctx, removedID).
		Return(nil, repository.ErrVendorNotFound)

	items, err := service.ListFavorites(ctx, buyerID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, kept.ID, items[0].Vendor.ID)
	assert.Equal(t, favorites[0].ID, items[0].Favorite.ID)
}

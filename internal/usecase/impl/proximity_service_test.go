package impl

import (
	"context"
	"testing"
	"time"

	"pklradar/internal/domain/entity"
	domainerrors "pklradar/internal/domain/errors"
	"pklradar/internal/domain/repository"
	mockRepo "pklradar/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Meridian offsets on the 6371 km sphere: one degree of latitude is
// ~111194.9 m, so 250 m ~ 0.00224829 deg and 400 m ~ 0.00359727 deg.
const (
	degreesFor250m = 0.00224829
	degreesFor400m = 0.00359727
)

func newProximityMocks(t *testing.T) (*mockRepo.MockVendorRepository, *mockRepo.MockLocationRepository, *mockRepo.MockFavoriteRepository, *mockRepo.MockNotificationRepository) {
	t.Helper()

	return mockRepo.NewMockVendorRepository(t),
		mockRepo.NewMockLocationRepository(t),
		mockRepo.NewMockFavoriteRepository(t),
		mockRepo.NewMockNotificationRepository(t)
}

func activeVendor(name string) *entity.Vendor {
	return &entity.Vendor{
		ID:                 uuid.New(),
		UserID:             uuid.New(),
		BusinessName:       name,
		Category:           "makanan",
		IsActive:           true,
		VerificationStatus: entity.VerificationAccepted,
	}
}

func TestProximityService_EvaluateBuyerProximity_VendorWithinRadius(t *testing.T) {
	vendorRepo, locationRepo, favoriteRepo, notificationRepo := newProximityMocks(t)
	service := NewProximityService(vendorRepo, locationRepo, favoriteRepo, notificationRepo, newTestConfig())

	ctx := context.Background()
	vendor := activeVendor("Bakso Pak Budi")
	buyer := &entity.BuyerLocation{
		BuyerID:  uuid.New(),
		Latitude: 0, Longitude: 0,
		RadiusM: 300,
	}

	vendorRepo.EXPECT().
		FindActiveVerifiedVendors(ctx).
		Return([]*entity.Vendor{vendor}, nil)

	locationRepo.EXPECT().
		FindLatestVendorLocation(ctx, vendor.ID).
		Return(&entity.VendorLocation{VendorID: vendor.ID, Latitude: degreesFor250m, Longitude: 0}, nil)

	notificationRepo.EXPECT().
		NotificationExistsWithin(ctx, buyer.BuyerID, entity.NotificationTypeNearby, &vendor.ID, 30*time.Minute).
		Return(false, nil)

	notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)

	created, err := service.EvaluateBuyerProximity(ctx, buyer)
	require.NoError(t, err)
	require.Len(t, created, 1)

	notification := created[0]
	assert.Equal(t, buyer.BuyerID, notification.BuyerID)
	assert.Equal(t, entity.NotificationTypeNearby, notification.Type)
	require.NotNil(t, notification.VendorID)
	assert.Equal(t, vendor.ID, *notification.VendorID)
	assert.Equal(t, 300, notification.RadiusM)
	assert.InDelta(t, 250, notification.DistanceM, 1)
	assert.Contains(t, notification.Message, "Bakso Pak Budi")
	assert.Equal(t, vendor.ID.String(), notification.Metadata["vendor_id"])
}

func TestProximityService_EvaluateBuyerProximity_VendorOutsideRadius(t *testing.T) {
	vendorRepo, locationRepo, favoriteRepo, notificationRepo := newProximityMocks(t)
	service := NewProximityService(vendorRepo, locationRepo, favoriteRepo, notificationRepo, newTestConfig())

	ctx := context.Background()
	vendor := activeVendor("Bakso Pak Budi")
	buyer := &entity.BuyerLocation{
		BuyerID:  uuid.New(),
		Latitude: 0, Longitude: 0,
		RadiusM: 300,
	}

	vendorRepo.EXPECT().
		FindActiveVerifiedVendors(ctx).
		Return([]*entity.Vendor{vendor}, nil)

	locationRepo.EXPECT().
		FindLatestVendorLocation(ctx, vendor.ID).
		Return(&entity.VendorLocation{VendorID: vendor.ID, Latitude: degreesFor400m, Longitude: 0}, nil)

	created, err := service.EvaluateBuyerProximity(ctx, buyer)
	require.NoError(t, err)
	assert.Empty(t, created)
}

func TestProximityService_EvaluateBuyerProximity_CooldownSuppressesDuplicate(t *testing.T) {
	vendorRepo, locationRepo, favoriteRepo, notificationRepo := newProximityMocks(t)
	service := NewProximityService(vendorRepo, locationRepo, favoriteRepo, notificationRepo, newTestConfig())

	ctx := context.Background()
	vendor := activeVendor("Bakso Pak Budi")
	buyer := &entity.BuyerLocation{
		BuyerID:  uuid.New(),
		Latitude: 0, Longitude: 0,
		RadiusM: 300,
	}

	vendorRepo.EXPECT().
		FindActiveVerifiedVendors(ctx).
		Return([]*entity.Vendor{vendor}, nil)

	locationRepo.EXPECT().
		FindLatestVendorLocation(ctx, vendor.ID).
		Return(&entity.VendorLocation{VendorID: vendor.ID, Latitude: degreesFor250m, Longitude: 0}, nil)

	notificationRepo.EXPECT().
		NotificationExistsWithin(ctx, buyer.BuyerID, entity.NotificationTypeNearby, &vendor.ID, 30*time.Minute).
		Return(true, nil)

	created, err := service.EvaluateBuyerProximity(ctx, buyer)
	require.NoError(t, err)
	assert.Empty(t, created)
}

func TestProximityService_EvaluateBuyerProximity_SkipsVendorWithoutLocation(t *testing.T) {
	vendorRepo, locationRepo, favoriteRepo, notificationRepo := newProximityMocks(t)
	service := NewProximityService(vendorRepo, locationRepo, favoriteRepo, notificationRepo, newTestConfig())

	ctx := context.Background()
	silent := activeVendor("Sate Ayam Bu Sri")
	nearby := activeVendor("Bakso Pak Budi")
	buyer := &entity.BuyerLocation{
		BuyerID:  uuid.New(),
		Latitude: 0, Longitude: 0,
		RadiusM: 300,
	}

	vendorRepo.EXPECT().
		FindActiveVerifiedVendors(ctx).
		Return([]*entity.Vendor{silent, nearby}, nil)

	locationRepo.EXPECT().
		FindLatestVendorLocation(ctx, silent.ID).
		Return(nil, repository.ErrLocationNotFound)

	locationRepo.EXPECT().
		FindLatestVendorLocation(ctx, nearby.ID).
		Return(&entity.VendorLocation{VendorID: nearby.ID, Latitude: degreesFor250m, Longitude: 0}, nil)

	notificationRepo.EXPECT().
		NotificationExistsWithin(ctx, buyer.BuyerID, entity.NotificationTypeNearby, &nearby.ID, 30*time.Minute).
		Return(false, nil)

	notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)

	created, err := service.EvaluateBuyerProximity(ctx, buyer)
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, nearby.ID, *created[0].VendorID)
}

func TestProximityService_EvaluateBuyerProximity_DefaultsRadius(t *testing.T) {
	vendorRepo, locationRepo, favoriteRepo, notificationRepo := newProximityMocks(t)
	service := NewProximityService(vendorRepo, locationRepo, favoriteRepo, notificationRepo, newTestConfig())

	ctx := context.Background()
	vendor := activeVendor("Bakso Pak Budi")
	buyer := &entity.BuyerLocation{
		BuyerID:  uuid.New(),
		Latitude: 0, Longitude: 0,
	}

	vendorRepo.EXPECT().
		FindActiveVerifiedVendors(ctx).
		Return([]*entity.Vendor{vendor}, nil)

	locationRepo.EXPECT().
		FindLatestVendorLocation(ctx, vendor.ID).
		Return(&entity.VendorLocation{VendorID: vendor.ID, Latitude: degreesFor250m, Longitude: 0}, nil)

	notificationRepo.EXPECT().
		NotificationExistsWithin(ctx, buyer.BuyerID, entity.NotificationTypeNearby, &vendor.ID, 30*time.Minute).
		Return(false, nil)

	notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)

	created, err := service.EvaluateBuyerProximity(ctx, buyer)
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, 300, created[0].RadiusM)
}

func TestProximityService_EvaluateBuyerProximity_InvalidInput(t *testing.T) {
	vendorRepo, locationRepo, favoriteRepo, notificationRepo := newProximityMocks(t)
	service := NewProximityService(vendorRepo, locationRepo, favoriteRepo, notificationRepo, newTestConfig())

	ctx := context.Background()

	t.Run("invalid coordinate", func(t *testing.T) {
		_, err := service.EvaluateBuyerProximity(ctx, &entity.BuyerLocation{
			BuyerID:  uuid.New(),
			Latitude: 91, Longitude: 0,
			RadiusM: 300,
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
	})

	t.Run("disallowed radius", func(t *testing.T) {
		_, err := service.EvaluateBuyerProximity(ctx, &entity.BuyerLocation{
			BuyerID:  uuid.New(),
			Latitude: 0, Longitude: 0,
			RadiusM: 750,
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidRadius)
	})
}

func TestProximityService_EvaluateVendorActivation_OnlyFavoritersInRange(t *testing.T) {
	vendorRepo, locationRepo, favoriteRepo, notificationRepo := newProximityMocks(t)
	service := NewProximityService(vendorRepo, locationRepo, favoriteRepo, notificationRepo, newTestConfig())

	ctx := context.Background()
	vendor := activeVendor("Bakso Pak Budi")
	location := &entity.VendorLocation{VendorID: vendor.ID, Latitude: 0, Longitude: 0}

	inRange := &entity.FavoriterLocation{
		BuyerID:  uuid.New(),
		Location: &entity.BuyerLocation{Latitude: degreesFor250m, Longitude: 0, RadiusM: 300},
	}
	outOfRange := &entity.FavoriterLocation{
		BuyerID:  uuid.New(),
		Location: &entity.BuyerLocation{Latitude: degreesFor400m, Longitude: 0, RadiusM: 300},
	}
	noLocation := &entity.FavoriterLocation{
		BuyerID: uuid.New(),
	}

	favoriteRepo.EXPECT().
		FindFavoritersWithLocation(ctx, vendor.ID).
		Return([]*entity.FavoriterLocation{inRange, outOfRange, noLocation}, nil)

	notificationRepo.EXPECT().
		NotificationExistsWithin(ctx, inRange.BuyerID, entity.NotificationTypeFavoriteActive, &vendor.ID, 30*time.Minute).
		Return(false, nil)

	notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)

	created, err := service.EvaluateVendorActivation(ctx, vendor, location)
	require.NoError(t, err)
	require.Len(t, created, 1)

	notification := created[0]
	assert.Equal(t, inRange.BuyerID, notification.BuyerID)
	assert.Equal(t, entity.NotificationTypeFavoriteActive, notification.Type)
	assert.Contains(t, notification.Message, "Bakso Pak Budi")
}

func TestProximityService_EvaluateVendorActivation_NoLocationYet(t *testing.T) {
	vendorRepo, locationRepo, favoriteRepo, notificationRepo := newProximityMocks(t)
	service := NewProximityService(vendorRepo, locationRepo, favoriteRepo, notificationRepo, newTestConfig())

	ctx := context.Background()
	vendor := activeVendor("Bakso Pak Budi")

	locationRepo.EXPECT().
		FindLatestVendorLocation(ctx, vendor.ID).
		Return(nil, repository.ErrLocationNotFound)

	created, err := service.EvaluateVendorActivation(ctx, vendor, nil)
	require.NoError(t, err)
	assert.Empty(t, created)
}

func TestProximityService_EvaluateVendorActivation_FetchesLatestWhenNil(t *testing.T) {
	vendorRepo, locationRepo, favoriteRepo, notificationRepo := newProximityMocks(t)
	service := NewProximityService(vendorRepo, locationRepo, favoriteRepo, notificationRepo, newTestConfig())

	ctx := context.Background()
	vendor := activeVendor("Bakso Pak Budi")
	favoriter := &entity.FavoriterLocation{
		BuyerID:  uuid.New(),
		Location: &entity.BuyerLocation{Latitude: degreesFor250m, Longitude: 0, RadiusM: 300},
	}

	locationRepo.EXPECT().
		FindLatestVendorLocation(ctx, vendor.ID).
		Return(&entity.VendorLocation{VendorID: vendor.ID, Latitude: 0, Longitude: 0}, nil)

	favoriteRepo.EXPECT().
		FindFavoritersWithLocation(ctx, vendor.ID).
		Return([]*entity.FavoriterLocation{favoriter}, nil)

	notificationRepo.EXPECT().
		NotificationExistsWithin(ctx, favoriter.BuyerID, entity.NotificationTypeFavoriteActive, &vendor.ID, 30*time.Minute).
		Return(false, nil)

	notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)

	created, err := service.EvaluateVendorActivation(ctx, vendor, nil)
	require.NoError(t, err)
	assert.Len(t, created, 1)
}

func TestProximityService_EvaluateBuyerProximity_RepositoryError(t *testing.T) {
	vendorRepo, locationRepo, favoriteRepo, notificationRepo := newProximityMocks(t)
	service := NewProximityService(vendorRepo, locationRepo, favoriteRepo, notificationRepo, newTestConfig())

	ctx := context.Background()

	vendorRepo.EXPECT().
		FindActiveVerifiedVendors(ctx).
		Return(nil, errors.New("connection refused"))

	_, err := service.EvaluateBuyerProximity(ctx, &entity.BuyerLocation{
		BuyerID:  uuid.New(),
		Latitude: 0, Longitude: 0,
		RadiusM: 300,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "find active verified vendors")
}

package impl

import (
	"context"
	"testing"

	"pklradar/internal/domain/entity"
	domainerrors "pklradar/internal/domain/errors"
	"pklradar/internal/domain/repository"
	mockRepo "pklradar/internal/mocks/repository"
	mockSvc "pklradar/internal/mocks/service"
	"pklradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newVendorService(t *testing.T) (usecase.VendorUsecase, *mockRepo.MockVendorRepository, *mockRepo.MockLocationRepository, *mockRepo.MockStatsRepository, *mockSvc.MockQRISService) {
	t.Helper()

	vendorRepo := mockRepo.NewMockVendorRepository(t)
	locationRepo := mockRepo.NewMockLocationRepository(t)
	statsRepo := mockRepo.NewMockStatsRepository(t)
	qrisService := mockSvc.NewMockQRISService(t)
	service := NewVendorService(vendorRepo, locationRepo, statsRepo, qrisService, newDiscardLogger())

	return service, vendorRepo, locationRepo, statsRepo, qrisService
}

func TestVendorService_CreateVendorProfile(t *testing.T) {
	service, vendorRepo, _, _, _ := newVendorService(t)

	ctx := context.Background()
	userID := uuid.New()

	vendorRepo.EXPECT().
		CreateVendor(ctx, mock.AnythingOfType("*entity.Vendor")).
		Return(nil)

	vendor, err := service.CreateVendorProfile(ctx, userID, &usecase.CreateVendorInput{
		BusinessName: "Bakso Pak Budi",
		Category:     "makanan",
		QRISLink:     "https://qris.example/bakso",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, vendor.UserID)
	assert.Equal(t, "Bakso Pak Budi", vendor.BusinessName)
	assert.False(t, vendor.IsActive)
	assert.Equal(t, entity.VerificationPending, vendor.VerificationStatus)
}

func TestVendorService_CreateVendorProfile_Duplicate(t *testing.T) {
	service, vendorRepo, _, _, _ := newVendorService(t)

	ctx := context.Background()

	vendorRepo.EXPECT().
		CreateVendor(ctx, mock.AnythingOfType("*entity.Vendor")).
		Return(repository.ErrDuplicateVendorProfile)

	_, err := service.CreateVendorProfile(ctx, uuid.New(), &usecase.CreateVendorInput{
		BusinessName: "Bakso Pak Budi",
		Category:     "makanan",
	})
	assert.ErrorIs(t, err, domainerrors.ErrVendorProfileExists)
}

func TestVendorService_UpdateVendorProfile(t *testing.T) {
	service, vendorRepo, _, _, _ := newVendorService(t)

	ctx := context.Background()
	userID := uuid.New()
	vendor := &entity.Vendor{
		ID:           uuid.New(),
		UserID:       userID,
		BusinessName: "Bakso Pak Budi",
		Category:     "makanan",
	}

	vendorRepo.EXPECT().
		FindVendorByUser(ctx, userID).
		Return(vendor, nil)

	vendorRepo.EXPECT().
		UpdateVendor(ctx, vendor).
		Return(nil)

	newName := "Bakso Urat Pak Budi"
	updated, err := service.UpdateVendorProfile(ctx, userID, &usecase.UpdateVendorInput{
		BusinessName: &newName,
	})
	require.NoError(t, err)
	assert.Equal(t, "Bakso Urat Pak Budi", updated.BusinessName)
	assert.Equal(t, "makanan", updated.Category)
}

func TestVendorService_SetVendorVerification(t *testing.T) {
	service, vendorRepo, _, _, _ := newVendorService(t)

	ctx := context.Background()
	vendorID := uuid.New()

	vendorRepo.EXPECT().
		UpdateVerification(ctx, vendorID, entity.VerificationAccepted, "ok").
		Return(nil)

	require.NoError(t, service.SetVendorVerification(ctx, vendorID, entity.VerificationAccepted, "ok"))
}

func TestVendorService_GetVendorLive(t *testing.T) {
	service, vendorRepo, locationRepo, statsRepo, _ := newVendorService(t)

	ctx := context.Background()
	vendor := activeVendor("Bakso Pak Budi")
	location := &entity.VendorLocation{VendorID: vendor.ID, Latitude: -6.2, Longitude: 106.8}

	vendorRepo.EXPECT().
		FindVendorByID(ctx, vendor.ID).
		Return(vendor, nil)

	locationRepo.EXPECT().
		FindLatestVendorLocation(ctx, vendor.ID).
		Return(location, nil)

	statsRepo.EXPECT().
		IncrementDailyStat(ctx, vendor.ID, mock.AnythingOfType("time.Time"), entity.StatLiveViews).
		Return(nil)

	output, err := service.GetVendorLive(ctx, vendor.ID)
	require.NoError(t, err)
	assert.Equal(t, vendor, output.Vendor)
	assert.Equal(t, location, output.Location)
}

func TestVendorService_GetVendorLive_HiddenVendor(t *testing.T) {
	service, vendorRepo, _, _, _ := newVendorService(t)

	ctx := context.Background()

	t.Run("inactive vendor", func(t *testing.T) {
		vendor := activeVendor("Bakso Pak Budi")
		vendor.IsActive = false

		vendorRepo.EXPECT().
			FindVendorByID(ctx, vendor.ID).
			Return(vendor, nil)

		_, err := service.GetVendorLive(ctx, vendor.ID)
		assert.ErrorIs(t, err, domainerrors.ErrVendorInactive)
	})

	t.Run("unverified vendor", func(t *testing.T) {
		vendor := activeVendor("Bakso Pak Budi")
		vendor.VerificationStatus = entity.VerificationPending

		vendorRepo.EXPECT().
			FindVendorByID(ctx, vendor.ID).
			Return(vendor, nil)

		_, err := service.GetVendorLive(ctx, vendor.ID)
		assert.ErrorIs(t, err, domainerrors.ErrVendorInactive)
	})

	t.Run("unknown vendor", func(t *testing.T) {
		vendorID := uuid.New()

		vendorRepo.EXPECT().
			FindVendorByID(ctx, vendorID).
			Return(nil, repository.ErrVendorNotFound)

		_, err := service.GetVendorLive(ctx, vendorID)
		assert.ErrorIs(t, err, domainerrors.ErrVendorNotFound)
	})
}

func TestVendorService_GetVendorLive_StatFailureDoesNotFailView(t *testing.T) {
	service, vendorRepo, locationRepo, statsRepo, _ := newVendorService(t)

	ctx := context.Background()
	vendor := activeVendor("Bakso Pak Budi")

	vendorRepo.EXPECT().
		FindVendorByID(ctx, vendor.ID).
		Return(vendor, nil)

	locationRepo.EXPECT().
		FindLatestVendorLocation(ctx, vendor.ID).
		Return(nil, repository.ErrLocationNotFound)

	statsRepo.EXPECT().
		IncrementDailyStat(ctx, vendor.ID, mock.AnythingOfType("time.Time"), entity.StatLiveViews).
		Return(errors.New("connection refused"))

	output, err := service.GetVendorLive(ctx, vendor.ID)
	require.NoError(t, err)
	assert.Nil(t, output.Location)
}

func TestVendorService_GetDailyStats(t *testing.T) {
	service, vendorRepo, _, statsRepo, _ := newVendorService(t)

	ctx := context.Background()
	userID := uuid.New()
	vendor := &entity.Vendor{ID: uuid.New(), UserID: userID}
	stats := []*entity.VendorDailyStats{
		{ID: uuid.New(), VendorID: vendor.ID, LiveViews: 7, SearchHits: 3},
	}

	vendorRepo.EXPECT().
		FindVendorByUser(ctx, userID).
		Return(vendor, nil)

	statsRepo.EXPECT().
		FindDailyStats(ctx, vendor.ID, defaultStatsLimit).
		Return(stats, nil)

	got, err := service.GetDailyStats(ctx, userID, 0)
	require.NoError(t, err)
	assert.Equal(t, stats, got)
}

func TestVendorService_GetPaymentQR(t *testing.T) {
	service, vendorRepo, _, _, qrisService := newVendorService(t)

	ctx := context.Background()
	vendor := activeVendor("Bakso Pak Budi")
	vendor.QRISLink = "https://qris.example/bakso"

	vendorRepo.EXPECT().
		FindVendorByID(ctx, vendor.ID).
		Return(vendor, nil)

	qrisService.EXPECT().
		GeneratePaymentQR("https://qris.example/bakso").
		Return([]byte{0x89, 0x50, 0x4e, 0x47}, nil)

	png, err := service.GetPaymentQR(ctx, vendor.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestVendorService_GetPaymentQR_MissingLink(t *testing.T) {
	service, vendorRepo, _, _, _ := newVendorService(t)

	ctx := context.Background()
	vendor := activeVendor("Bakso Pak Budi")

	vendorRepo.EXPECT().
		FindVendorByID(ctx, vendor.ID).
		Return(vendor, nil)

	_, err := service.GetPaymentQR(ctx, vendor.ID)
	assert.ErrorIs(t, err, domainerrors.ErrQRISLinkMissing)
}

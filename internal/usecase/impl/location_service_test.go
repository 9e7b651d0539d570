package impl

import (
	"context"
	"testing"
	"time"

	"pklradar/internal/domain/entity"
	domainerrors "pklradar/internal/domain/errors"
	"pklradar/internal/domain/repository"
	mockRepo "pklradar/internal/mocks/repository"
	mockSvc "pklradar/internal/mocks/service"
	mockUsecase "pklradar/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type locationServiceMocks struct {
	vendorRepo     *mockRepo.MockVendorRepository
	locationRepo   *mockRepo.MockLocationRepository
	statsRepo      *mockRepo.MockStatsRepository
	txManager      *mockRepo.MockTransactionManager
	proximity      *mockUsecase.MockProximityUsecase
	eventPublisher *mockSvc.MockEventPublisher
}

func newLocationServiceMocks(t *testing.T) *locationServiceMocks {
	t.Helper()

	return &locationServiceMocks{
		vendorRepo:     mockRepo.NewMockVendorRepository(t),
		locationRepo:   mockRepo.NewMockLocationRepository(t),
		statsRepo:      mockRepo.NewMockStatsRepository(t),
		txManager:      mockRepo.NewMockTransactionManager(t),
		proximity:      mockUsecase.NewMockProximityUsecase(t),
		eventPublisher: mockSvc.NewMockEventPublisher(t),
	}
}

func (m *locationServiceMocks) newService() *locationService {
	svc := NewLocationService(
		m.vendorRepo, m.locationRepo, m.statsRepo, m.txManager,
		m.proximity, m.eventPublisher, newTestConfig(), newDiscardLogger(),
	)

	return svc.(*locationService)
}

// expectTransaction wires the transaction manager to run the closure against
// a factory backed by the same repo mocks.
func (m *locationServiceMocks) expectTransaction(t *testing.T, ctx context.Context) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewLocationRepository().Return(m.locationRepo)
	factory.EXPECT().NewVendorRepository().Return(m.vendorRepo)

	m.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestLocationService_UpdateVendorLocation_ActivationTransition(t *testing.T) {
	mocks := newLocationServiceMocks(t)
	service := mocks.newService()

	ctx := context.Background()
	userID := uuid.New()
	vendor := &entity.Vendor{
		ID:                 uuid.New(),
		UserID:             userID,
		BusinessName:       "Bakso Pak Budi",
		IsActive:           false,
		VerificationStatus: entity.VerificationAccepted,
	}

	mocks.vendorRepo.EXPECT().
		FindVendorByUser(ctx, userID).
		Return(vendor, nil)

	mocks.expectTransaction(t, ctx)

	mocks.locationRepo.EXPECT().
		CreateVendorLocation(ctx, mock.AnythingOfType("*entity.VendorLocation")).
		Return(nil)

	mocks.vendorRepo.EXPECT().
		SetVendorActive(ctx, vendor.ID, true).
		Return(nil)

	notified := []*entity.Notification{
		{ID: uuid.New(), BuyerID: uuid.New(), Type: entity.NotificationTypeFavoriteActive},
	}
	mocks.proximity.EXPECT().
		EvaluateVendorActivation(ctx, vendor, mock.AnythingOfType("*entity.VendorLocation")).
		Return(notified, nil)

	mocks.eventPublisher.EXPECT().
		PublishVendorActivation(ctx, mock.AnythingOfType("*service.VendorActivationEvent")).
		Return(nil)

	mocks.statsRepo.EXPECT().
		IncrementDailyStat(ctx, vendor.ID, mock.AnythingOfType("time.Time"), entity.StatAutoUpdates).
		Return(nil)

	output, err := service.UpdateVendorLocation(ctx, userID, -6.2, 106.8)
	require.NoError(t, err)
	assert.True(t, output.Activated)
	assert.Equal(t, 1, output.Notified)
	assert.Equal(t, vendor.ID, output.Location.VendorID)
	assert.InDelta(t, -6.2, output.Location.Latitude, 1e-9)
}

func TestLocationService_UpdateVendorLocation_AlreadyActive(t *testing.T) {
	mocks := newLocationServiceMocks(t)
	service := mocks.newService()

	ctx := context.Background()
	userID := uuid.New()
	vendor := &entity.Vendor{
		ID:                 uuid.New(),
		UserID:             userID,
		IsActive:           true,
		VerificationStatus: entity.VerificationAccepted,
	}

	mocks.vendorRepo.EXPECT().
		FindVendorByUser(ctx, userID).
		Return(vendor, nil)

	mocks.expectTransaction(t, ctx)

	mocks.locationRepo.EXPECT().
		CreateVendorLocation(ctx, mock.AnythingOfType("*entity.VendorLocation")).
		Return(nil)

	mocks.vendorRepo.EXPECT().
		SetVendorActive(ctx, vendor.ID, true).
		Return(nil)

	mocks.statsRepo.EXPECT().
		IncrementDailyStat(ctx, vendor.ID, mock.AnythingOfType("time.Time"), entity.StatAutoUpdates).
		Return(nil)

	output, err := service.UpdateVendorLocation(ctx, userID, -6.2, 106.8)
	require.NoError(t, err)
	assert.False(t, output.Activated)
	assert.Zero(t, output.Notified)
}

func TestLocationService_UpdateVendorLocation_UnverifiedSkipsFanOut(t *testing.T) {
	mocks := newLocationServiceMocks(t)
	service := mocks.newService()

	ctx := context.Background()
	userID := uuid.New()
	vendor := &entity.Vendor{
		ID:                 uuid.New(),
		UserID:             userID,
		IsActive:           false,
		VerificationStatus: entity.VerificationPending,
	}

	mocks.vendorRepo.EXPECT().
		FindVendorByUser(ctx, userID).
		Return(vendor, nil)

	mocks.expectTransaction(t, ctx)

	mocks.locationRepo.EXPECT().
		CreateVendorLocation(ctx, mock.AnythingOfType("*entity.VendorLocation")).
		Return(nil)

	mocks.vendorRepo.EXPECT().
		SetVendorActive(ctx, vendor.ID, true).
		Return(nil)

	mocks.statsRepo.EXPECT().
		IncrementDailyStat(ctx, vendor.ID, mock.AnythingOfType("time.Time"), entity.StatAutoUpdates).
		Return(nil)

	output, err := service.UpdateVendorLocation(ctx, userID, -6.2, 106.8)
	require.NoError(t, err)
	assert.True(t, output.Activated)
	assert.Zero(t, output.Notified)
}

func TestLocationService_UpdateVendorLocation_InvalidCoordinate(t *testing.T) {
	mocks := newLocationServiceMocks(t)
	service := mocks.newService()

	_, err := service.UpdateVendorLocation(context.Background(), uuid.New(), -91, 106.8)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
}

func TestLocationService_UpdateVendorLocation_NoVendorProfile(t *testing.T) {
	mocks := newLocationServiceMocks(t)
	service := mocks.newService()

	ctx := context.Background()
	userID := uuid.New()

	mocks.vendorRepo.EXPECT().
		FindVendorByUser(ctx, userID).
		Return(nil, repository.ErrVendorNotFound)

	_, err := service.UpdateVendorLocation(ctx, userID, -6.2, 106.8)
	assert.ErrorIs(t, err, domainerrors.ErrVendorNotFound)
}

func TestLocationService_UpdateBuyerLocation_ExplicitRadius(t *testing.T) {
	mocks := newLocationServiceMocks(t)
	service := mocks.newService()

	ctx := context.Background()
	buyerID := uuid.New()
	radius := 1000

	mocks.locationRepo.EXPECT().
		UpsertBuyerLocation(ctx, mock.AnythingOfType("*entity.BuyerLocation")).
		Return(nil)

	mocks.proximity.EXPECT().
		EvaluateBuyerProximity(ctx, mock.AnythingOfType("*entity.BuyerLocation")).
		Return([]*entity.Notification{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

	output, err := service.UpdateBuyerLocation(ctx, buyerID, -6.2, 106.8, &radius)
	require.NoError(t, err)
	assert.Equal(t, 1000, output.Location.RadiusM)
	assert.Equal(t, 2, output.Notified)
}

func TestLocationService_UpdateBuyerLocation_KeepsPreviousRadius(t *testing.T) {
	mocks := newLocationServiceMocks(t)
	service := mocks.newService()

	ctx := context.Background()
	buyerID := uuid.New()

	mocks.locationRepo.EXPECT().
		FindBuyerLocation(ctx, buyerID).
		Return(&entity.BuyerLocation{BuyerID: buyerID, RadiusM: 1500}, nil)

	mocks.locationRepo.EXPECT().
		UpsertBuyerLocation(ctx, mock.AnythingOfType("*entity.BuyerLocation")).
		Return(nil)

	mocks.proximity.EXPECT().
		EvaluateBuyerProximity(ctx, mock.AnythingOfType("*entity.BuyerLocation")).
		Return(nil, nil)

	output, err := service.UpdateBuyerLocation(ctx, buyerID, -6.2, 106.8, nil)
	require.NoError(t, err)
	assert.Equal(t, 1500, output.Location.RadiusM)
}

func TestLocationService_UpdateBuyerLocation_DefaultsRadiusForNewBuyer(t *testing.T) {
	mocks := newLocationServiceMocks(t)
	service := mocks.newService()

	ctx := context.Background()
	buyerID := uuid.New()

	mocks.locationRepo.EXPECT().
		FindBuyerLocation(ctx, buyerID).
		Return(nil, repository.ErrLocationNotFound)

	mocks.locationRepo.EXPECT().
		UpsertBuyerLocation(ctx, mock.AnythingOfType("*entity.BuyerLocation")).
		Return(nil)

	mocks.proximity.EXPECT().
		EvaluateBuyerProximity(ctx, mock.AnythingOfType("*entity.BuyerLocation")).
		Return(nil, nil)

	output, err := service.UpdateBuyerLocation(ctx, buyerID, -6.2, 106.8, nil)
	require.NoError(t, err)
	assert.Equal(t, 300, output.Location.RadiusM)
}

func TestLocationService_UpdateBuyerLocation_DisallowedRadius(t *testing.T) {
	mocks := newLocationServiceMocks(t)
	service := mocks.newService()

	radius := 750
	_, err := service.UpdateBuyerLocation(context.Background(), uuid.New(), -6.2, 106.8, &radius)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRadius)
}

func TestLocationService_DeactivateVendor(t *testing.T) {
	mocks := newLocationServiceMocks(t)
	service := mocks.newService()

	ctx := context.Background()
	userID := uuid.New()
	vendor := &entity.Vendor{ID: uuid.New(), UserID: userID, IsActive: true}

	mocks.vendorRepo.EXPECT().
		FindVendorByUser(ctx, userID).
		Return(vendor, nil)

	mocks.vendorRepo.EXPECT().
		SetVendorActive(ctx, vendor.ID, false).
		Return(nil)

	require.NoError(t, service.DeactivateVendor(ctx, userID))
}

func TestLocationService_GetVendorLocationHistory(t *testing.T) {
	mocks := newLocationServiceMocks(t)
	service := mocks.newService()

	ctx := context.Background()
	userID := uuid.New()
	vendor := &entity.Vendor{ID: uuid.New(), UserID: userID}
	history := []*entity.VendorLocation{
		{ID: uuid.New(), VendorID: vendor.ID, RecordedAt: time.Now()},
	}

	mocks.vendorRepo.EXPECT().
		FindVendorByUser(ctx, userID).
		Return(vendor, nil)

	mocks.locationRepo.EXPECT().
		ListVendorLocations(ctx, vendor.ID, defaultHistoryLimit).
		Return(history, nil)

	got, err := service.GetVendorLocationHistory(ctx, userID, 0)
	require.NoError(t, err)
	assert.Equal(t, history, got)
}

func TestLocationService_UpdateVendorLocation_TransactionFailure(t *testing.T) {
	mocks := newLocationServiceMocks(t)
	service := mocks.newService()

	ctx := context.Background()
	userID := uuid.New()
	vendor := &entity.Vendor{
		ID:                 uuid.New(),
		UserID:             userID,
		IsActive:           true,
		VerificationStatus: entity.VerificationAccepted,
	}

	mocks.vendorRepo.EXPECT().
		FindVendorByUser(ctx, userID).
		Return(vendor, nil)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		Return(errors.New("deadlock detected"))

	_, err := service.UpdateVendorLocation(ctx, userID, -6.2, 106.8)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deadlock detected")
}

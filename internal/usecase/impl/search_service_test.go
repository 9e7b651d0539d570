package impl

import (
	"context"
	"testing"

	"pklradar/internal/domain/entity"
	"pklradar/internal/domain/repository"
	mockRepo "pklradar/internal/mocks/repository"
	"pklradar/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSearchService(t *testing.T) (usecase.SearchUsecase, *mockRepo.MockVendorRepository, *mockRepo.MockLocationRepository, *mockRepo.MockStatsRepository) {
	t.Helper()

	vendorRepo := mockRepo.NewMockVendorRepository(t)
	locationRepo := mockRepo.NewMockLocationRepository(t)
	statsRepo := mockRepo.NewMockStatsRepository(t)
	service := NewSearchService(vendorRepo, locationRepo, statsRepo, newTestConfig(), newDiscardLogger())

	return service, vendorRepo, locationRepo, statsRepo
}

func TestSearchService_ListActiveVendors_FuzzyQuery(t *testing.T) {
	service, vendorRepo, locationRepo, statsRepo := newSearchService(t)

	ctx := context.Background()
	bakso := activeVendor("Bakso Pak Budi")
	esTeh := activeVendor("Es Teh Segar")

	vendorRepo.EXPECT().
		FindActiveVerifiedVendors(ctx).
		Return([]*entity.Vendor{esTeh, bakso}, nil)

	locationRepo.EXPECT().
		FindLatestVendorLocation(ctx, bakso.ID).
		Return(&entity.VendorLocation{VendorID: bakso.ID, Latitude: -6.2, Longitude: 106.8}, nil)

	statsRepo.EXPECT().
		IncrementDailyStat(ctx, bakso.ID, mock.AnythingOfType("time.Time"), entity.StatSearchHits).
		Return(nil)

	results, err := service.ListActiveVendors(ctx, &usecase.SearchInput{Query: "bakso"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, bakso.ID, results[0].Vendor.ID)
	assert.InDelta(t, 1.0, results[0].Score, 1e-12)
	require.NotNil(t, results[0].Location)
	assert.InDelta(t, -6.2, results[0].Location.Latitude, 1e-9)
}

func TestSearchService_ListActiveVendors_EmptyQueryListsAll(t *testing.T) {
	service, vendorRepo, locationRepo, statsRepo := newSearchService(t)
	_ = statsRepo

	ctx := context.Background()
	first := activeVendor("Bakso Pak Budi")
	second := activeVendor("Es Teh Segar")

	vendorRepo.EXPECT().
		FindActiveVerifiedVendors(ctx).
		Return([]*entity.Vendor{first, second}, nil)

	locationRepo.EXPECT().
		FindLatestVendorLocation(ctx, first.ID).
		Return(nil, repository.ErrLocationNotFound)

	locationRepo.EXPECT().
		FindLatestVendorLocation(ctx, second.ID).
		Return(nil, repository.ErrLocationNotFound)

	results, err := service.ListActiveVendors(ctx, &usecase.SearchInput{})
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Caller order preserved, no scoring, no search-hit counting.
	assert.Equal(t, first.ID, results[0].Vendor.ID)
	assert.Equal(t, second.ID, results[1].Vendor.ID)
	assert.Zero(t, results[0].Score)
	assert.Nil(t, results[0].Location)
}

func TestSearchService_ListActiveVendors_CategoryFilter(t *testing.T) {
	service, vendorRepo, locationRepo, statsRepo := newSearchService(t)

	ctx := context.Background()
	makanan := activeVendor("Bakso Pak Budi")
	minuman := activeVendor("Es Teh Segar")
	minuman.Category = "minuman"

	vendorRepo.EXPECT().
		FindActiveVerifiedVendors(ctx).
		Return([]*entity.Vendor{makanan, minuman}, nil)

	locationRepo.EXPECT().
		FindLatestVendorLocation(ctx, minuman.ID).
		Return(nil, repository.ErrLocationNotFound)

	statsRepo.EXPECT().
		IncrementDailyStat(ctx, minuman.ID, mock.AnythingOfType("time.Time"), entity.StatSearchHits).
		Return(nil)

	results, err := service.ListActiveVendors(ctx, &usecase.SearchInput{Category: "Minuman"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, minuman.ID, results[0].Vendor.ID)
}

func TestSearchService_ListActiveVendors_StatFailureDoesNotFailSearch(t *testing.T) {
	service, vendorRepo, locationRepo, statsRepo := newSearchService(t)

	ctx := context.Background()
	bakso := activeVendor("Bakso Pak Budi")

	vendorRepo.EXPECT().
		FindActiveVerifiedVendors(ctx).
		Return([]*entity.Vendor{bakso}, nil)

	locationRepo.EXPECT().
		FindLatestVendorLocation(ctx, bakso.ID).
		Return(nil, repository.ErrLocationNotFound)

	statsRepo.EXPECT().
		IncrementDailyStat(ctx, bakso.ID, mock.AnythingOfType("time.Time"), entity.StatSearchHits).
		Return(errors.New("connection refused"))

	results, err := service.ListActiveVendors(ctx, &usecase.SearchInput{Query: "bakso"})
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestSearchService_ListActiveVendors_RepositoryError(t *testing.T) {
	service, vendorRepo, locationRepo, statsRepo := newSearchService(t)
	_, _ = locationRepo, statsRepo

	ctx := context.Background()

	vendorRepo.EXPECT().
		FindActiveVerifiedVendors(ctx).
		Return(nil, errors.New("connection refused"))

	_, err := service.ListActiveVendors(ctx, &usecase.SearchInput{Query: "bakso"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "find active verified vendors")
}

func TestSearchService_ListActiveVendors_WeakMatchesFallBack(t *testing.T) {
	service, vendorRepo, locationRepo, statsRepo := newSearchService(t)

	ctx := context.Background()
	vendor := activeVendor("Zzz Qqq")
	vendor.Category = "zzz"

	vendorRepo.EXPECT().
		FindActiveVerifiedVendors(ctx).
		Return([]*entity.Vendor{vendor}, nil)

	locationRepo.EXPECT().
		FindLatestVendorLocation(ctx, vendor.ID).
		Return(nil, repository.ErrLocationNotFound)

	statsRepo.EXPECT().
		IncrementDailyStat(ctx, vendor.ID, mock.AnythingOfType("time.Time"), entity.StatSearchHits).
		Return(nil)

	results, err := service.ListActiveVendors(ctx, &usecase.SearchInput{Query: "bakso"})
	require.NoError(t, err)

	// Nothing clears the threshold but the result is still non-empty.
	require.Len(t, results, 1)
	assert.Less(t, results[0].Score, 0.45)
}

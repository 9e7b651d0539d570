package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"pklradar/config"
	"pklradar/internal/domain/entity"
	"pklradar/internal/domain/repository"
	"pklradar/internal/errors"
	"pklradar/internal/search"
	"pklradar/internal/usecase"
)

type searchService struct {
	vendorRepo   repository.VendorRepository
	locationRepo repository.LocationRepository
	statsRepo    repository.StatsRepository
	logger       *slog.Logger
	threshold    float64
}

// NewSearchService creates a new vendor discovery service instance
func NewSearchService(
	vendorRepo repository.VendorRepository,
	locationRepo repository.LocationRepository,
	statsRepo repository.StatsRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SearchUsecase {
	return &searchService{
		vendorRepo:   vendorRepo,
		locationRepo: locationRepo,
		statsRepo:    statsRepo,
		logger:       logger,
		threshold:    cfg.FuzzyThreshold(),
	}
}

// ListActiveVendors lists active verified vendors matching the filters,
// fuzzy-ranked when a query is present
func (s *searchService) ListActiveVendors(ctx context.Context, input *usecase.SearchInput) ([]*usecase.VendorSearchResult, error) {
	vendors, err := s.vendorRepo.FindActiveVerifiedVendors(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "find active verified vendors")
	}

	if input.Category != "" {
		needle := strings.ToLower(input.Category)
		filtered := make([]*entity.Vendor, 0, len(vendors))
		for _, vendor := range vendors {
			if strings.Contains(strings.ToLower(vendor.Category), needle) {
				filtered = append(filtered, vendor)
			}
		}
		vendors = filtered
	}

	scored := search.RankBySearch(vendors, input.Query, s.threshold)

	results := make([]*usecase.VendorSearchResult, 0, len(scored))
	for _, sv := range scored {
		location, err := s.locationRepo.FindLatestVendorLocation(ctx, sv.Vendor.ID)
		if err != nil && !errors.Is(err, repository.ErrLocationNotFound) {
			return nil, errors.Wrap(err, "find latest vendor location")
		}

		results = append(results, &usecase.VendorSearchResult{
			Vendor:   sv.Vendor,
			Score:    sv.Score,
			Location: location,
		})
	}

	if input.Category != "" || search.Normalize(input.Query) != "" {
		s.countSearchHits(ctx, results)
	}

	return results, nil
}

// countSearchHits bumps the search_hits counter for the top results.
// Best-effort, a failed counter never fails the search.
func (s *searchService) countSearchHits(ctx context.Context, results []*usecase.VendorSearchResult) {
	limit := min(len(results), search.FallbackLimit)
	day := time.Now()
	for _, result := range results[:limit] {
		if err := s.statsRepo.IncrementDailyStat(ctx, result.Vendor.ID, day, entity.StatSearchHits); err != nil {
			s.logger.Warn("increment search_hits stat failed",
				slog.String("vendor_id", result.Vendor.ID.String()),
				slog.Any("error", err),
			)
		}
	}
}

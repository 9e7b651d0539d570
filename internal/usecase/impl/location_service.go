package impl

import (
	"context"
	"log/slog"
	"time"

	"pklradar/config"
	"pklradar/internal/domain/entity"
	domainerrors "pklradar/internal/domain/errors"
	"pklradar/internal/domain/repository"
	"pklradar/internal/domain/service"
	"pklradar/internal/errors"
	"pklradar/internal/geo"
	"pklradar/internal/usecase"

	"github.com/google/uuid"
)

const defaultHistoryLimit = 20

type locationService struct {
	vendorRepo     repository.VendorRepository
	locationRepo   repository.LocationRepository
	statsRepo      repository.StatsRepository
	txManager      repository.TransactionManager
	proximity      usecase.ProximityUsecase
	eventPublisher service.EventPublisher
	logger         *slog.Logger
	defaultRadiusM int
}

// NewLocationService creates a new location sharing service instance
func NewLocationService(
	vendorRepo repository.VendorRepository,
	locationRepo repository.LocationRepository,
	statsRepo repository.StatsRepository,
	txManager repository.TransactionManager,
	proximity usecase.ProximityUsecase,
	eventPublisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.LocationUsecase {
	return &locationService{
		vendorRepo:     vendorRepo,
		locationRepo:   locationRepo,
		statsRepo:      statsRepo,
		txManager:      txManager,
		proximity:      proximity,
		eventPublisher: eventPublisher,
		logger:         logger,
		defaultRadiusM: cfg.DefaultRadiusM(),
	}
}

// UpdateVendorLocation appends a location to the caller's vendor profile and
// marks the vendor active. The inactive-to-active transition is detected here,
// right before the fan-out, never inferred from storage downstream.
func (s *locationService) UpdateVendorLocation(ctx context.Context, userID uuid.UUID, latitude, longitude float64) (*usecase.VendorLocationOutput, error) {
	if err := geo.ValidateCoordinate(latitude, longitude); err != nil {
		return nil, err
	}

	vendor, err := s.vendorRepo.FindVendorByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, domainerrors.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "find vendor by user")
	}

	wasActive := vendor.IsActive
	location := &entity.VendorLocation{
		ID:         uuid.New(),
		VendorID:   vendor.ID,
		Latitude:   latitude,
		Longitude:  longitude,
		RecordedAt: time.Now(),
	}

	// The location append and the active flip commit together.
	err = s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		if err := txRepoFactory.NewLocationRepository().CreateVendorLocation(ctx, location); err != nil {
			return errors.Wrap(err, "create vendor location")
		}
		if err := txRepoFactory.NewVendorRepository().SetVendorActive(ctx, vendor.ID, true); err != nil {
			return errors.Wrap(err, "set vendor active")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	output := &usecase.VendorLocationOutput{
		Location:  location,
		Activated: !wasActive,
	}

	if output.Activated && vendor.VerificationStatus == entity.VerificationAccepted {
		vendor.IsActive = true
		notifications, err := s.proximity.EvaluateVendorActivation(ctx, vendor, location)
		if err != nil {
			return nil, errors.Wrap(err, "evaluate vendor activation")
		}
		output.Notified = len(notifications)

		s.publishActivation(ctx, vendor, location, notifications)
	}

	// Stats are best-effort, a failed counter never fails the update.
	if err := s.statsRepo.IncrementDailyStat(ctx, vendor.ID, time.Now(), entity.StatAutoUpdates); err != nil {
		s.logger.Warn("increment auto_updates stat failed",
			slog.String("vendor_id", vendor.ID.String()),
			slog.Any("error", err),
		)
	}

	return output, nil
}

// DeactivateVendor marks the caller's vendor profile inactive
func (s *locationService) DeactivateVendor(ctx context.Context, userID uuid.UUID) error {
	vendor, err := s.vendorRepo.FindVendorByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return domainerrors.ErrVendorNotFound
		}

		return errors.Wrap(err, "find vendor by user")
	}

	if err := s.vendorRepo.SetVendorActive(ctx, vendor.ID, false); err != nil {
		return errors.Wrap(err, "set vendor inactive")
	}

	return nil
}

// GetVendorLocationHistory retrieves the caller's recent location history
func (s *locationService) GetVendorLocationHistory(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.VendorLocation, error) {
	vendor, err := s.vendorRepo.FindVendorByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, domainerrors.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "find vendor by user")
	}

	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	locations, err := s.locationRepo.ListVendorLocations(ctx, vendor.ID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "list vendor locations")
	}

	return locations, nil
}

// UpdateBuyerLocation stores the buyer's position and evaluates nearby vendors
func (s *locationService) UpdateBuyerLocation(ctx context.Context, buyerID uuid.UUID, latitude, longitude float64, radiusM *int) (*usecase.BuyerLocationOutput, error) {
	if err := geo.ValidateCoordinate(latitude, longitude); err != nil {
		return nil, err
	}

	resolved, err := s.resolveRadius(ctx, buyerID, radiusM)
	if err != nil {
		return nil, err
	}

	location := &entity.BuyerLocation{
		BuyerID:   buyerID,
		Latitude:  latitude,
		Longitude: longitude,
		RadiusM:   resolved,
		UpdatedAt: time.Now(),
	}

	if err := s.locationRepo.UpsertBuyerLocation(ctx, location); err != nil {
		return nil, errors.Wrap(err, "upsert buyer location")
	}

	notifications, err := s.proximity.EvaluateBuyerProximity(ctx, location)
	if err != nil {
		return nil, errors.Wrap(err, "evaluate buyer proximity")
	}

	return &usecase.BuyerLocationOutput{
		Location: location,
		Notified: len(notifications),
	}, nil
}

// resolveRadius applies the keep-previous-or-default rule: an explicit radius
// must be one of the allowed values, an omitted one falls back to the buyer's
// stored radius, then to the default.
func (s *locationService) resolveRadius(ctx context.Context, buyerID uuid.UUID, radiusM *int) (int, error) {
	if radiusM != nil {
		if !entity.IsAllowedRadius(*radiusM) {
			return 0, domainerrors.ErrInvalidRadius
		}

		return *radiusM, nil
	}

	existing, err := s.locationRepo.FindBuyerLocation(ctx, buyerID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return s.defaultRadiusM, nil
		}

		return 0, errors.Wrap(err, "find buyer location")
	}

	return existing.RadiusM, nil
}

// publishActivation pushes the activation event to the message queue.
// Best-effort, downstream consumers tolerate gaps.
func (s *locationService) publishActivation(ctx context.Context, vendor *entity.Vendor, location *entity.VendorLocation, notifications []*entity.Notification) {
	buyerIDs := make([]string, 0, len(notifications))
	for _, notification := range notifications {
		buyerIDs = append(buyerIDs, notification.BuyerID.String())
	}

	event := &service.VendorActivationEvent{
		VendorID:         vendor.ID.String(),
		BusinessName:     vendor.BusinessName,
		Latitude:         location.Latitude,
		Longitude:        location.Longitude,
		NotifiedBuyerIDs: buyerIDs,
	}

	if err := s.eventPublisher.PublishVendorActivation(ctx, event); err != nil {
		s.logger.Warn("publish vendor activation event failed",
			slog.String("vendor_id", vendor.ID.String()),
			slog.Any("error", err),
		)
	}
}

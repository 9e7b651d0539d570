package impl

import (
	"context"
	"fmt"
	"time"

	"pklradar/config"
	"pklradar/internal/domain/entity"
	domainerrors "pklradar/internal/domain/errors"
	"pklradar/internal/domain/repository"
	"pklradar/internal/errors"
	"pklradar/internal/geo"
	"pklradar/internal/usecase"

	"github.com/google/uuid"
)

type proximityService struct {
	vendorRepo       repository.VendorRepository
	locationRepo     repository.LocationRepository
	favoriteRepo     repository.FavoriteRepository
	notificationRepo repository.NotificationRepository
	cooldown         time.Duration
	defaultRadiusM   int
}

// NewProximityService creates a new proximity evaluation service instance
func NewProximityService(
	vendorRepo repository.VendorRepository,
	locationRepo repository.LocationRepository,
	favoriteRepo repository.FavoriteRepository,
	notificationRepo repository.NotificationRepository,
	cfg *config.Config,
) usecase.ProximityUsecase {
	return &proximityService{
		vendorRepo:       vendorRepo,
		locationRepo:     locationRepo,
		favoriteRepo:     favoriteRepo,
		notificationRepo: notificationRepo,
		cooldown:         cfg.CooldownWindow(),
		defaultRadiusM:   cfg.DefaultRadiusM(),
	}
}

// EvaluateBuyerProximity scans all active verified vendors against the buyer's
// stored location and emits cooldown-gated NEARBY notifications
func (s *proximityService) EvaluateBuyerProximity(ctx context.Context, buyer *entity.BuyerLocation) ([]*entity.Notification, error) {
	if err := geo.ValidateCoordinate(buyer.Latitude, buyer.Longitude); err != nil {
		return nil, err
	}

	radiusM := buyer.RadiusM
	if radiusM == 0 {
		radiusM = s.defaultRadiusM
	}
	if !entity.IsAllowedRadius(radiusM) {
		return nil, domainerrors.ErrInvalidRadius
	}

	vendors, err := s.vendorRepo.FindActiveVerifiedVendors(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "find active verified vendors")
	}

	// Cheap bounding-box cut before the exact distance check.
	bound := geo.BoundAround(buyer.Latitude, buyer.Longitude, float64(radiusM))

	var created []*entity.Notification
	for _, vendor := range vendors {
		location, err := s.locationRepo.FindLatestVendorLocation(ctx, vendor.ID)
		if err != nil {
			if errors.Is(err, repository.ErrLocationNotFound) {
				// Active but never shared a position, nothing to measure.
				continue
			}

			return created, errors.Wrap(err, "find latest vendor location")
		}

		if !geo.InBound(bound, location.Latitude, location.Longitude) {
			continue
		}

		distanceM := geo.DistanceM(buyer.Latitude, buyer.Longitude, location.Latitude, location.Longitude)
		if distanceM > float64(radiusM) {
			continue
		}

		notification, err := s.createGatedNotification(ctx, buyer.BuyerID, vendor, &gatedNotification{
			notifType: entity.NotificationTypeNearby,
			message:   fmt.Sprintf("PKL %s berada sekitar %.0f m dari lokasimu.", vendor.BusinessName, distanceM),
			radiusM:   radiusM,
			distanceM: distanceM,
		})
		if err != nil {
			return created, err
		}
		if notification != nil {
			created = append(created, notification)
		}
	}

	return created, nil
}

// EvaluateVendorActivation fans FAVORITE_ACTIVE notifications out to every
// favoriting buyer within their own radius of the vendor's new position. The
// caller detects the inactive-to-active transition.
func (s *proximityService) EvaluateVendorActivation(ctx context.Context, vendor *entity.Vendor, location *entity.VendorLocation) ([]*entity.Notification, error) {
	if location == nil {
		latest, err := s.locationRepo.FindLatestVendorLocation(ctx, vendor.ID)
		if err != nil {
			if errors.Is(err, repository.ErrLocationNotFound) {
				// Activated without a position, nobody can be near it yet.
				return nil, nil
			}

			return nil, errors.Wrap(err, "find latest vendor location")
		}
		location = latest
	}

	favoriters, err := s.favoriteRepo.FindFavoritersWithLocation(ctx, vendor.ID)
	if err != nil {
		return nil, errors.Wrap(err, "find favoriters with location")
	}

	var created []*entity.Notification
	for _, favoriter := range favoriters {
		if favoriter.Location == nil {
			// Favorited but never shared a position.
			continue
		}

		radiusM := favoriter.Location.RadiusM
		if radiusM == 0 {
			radiusM = s.defaultRadiusM
		}

		distanceM := geo.DistanceM(
			favoriter.Location.Latitude, favoriter.Location.Longitude,
			location.Latitude, location.Longitude,
		)
		if distanceM > float64(radiusM) {
			continue
		}

		notification, err := s.createGatedNotification(ctx, favoriter.BuyerID, vendor, &gatedNotification{
			notifType: entity.NotificationTypeFavoriteActive,
			message:   fmt.Sprintf("PKL favoritmu %s baru saja aktif di dekatmu.", vendor.BusinessName),
			radiusM:   radiusM,
			distanceM: distanceM,
		})
		if err != nil {
			return created, err
		}
		if notification != nil {
			created = append(created, notification)
		}
	}

	return created, nil
}

// gatedNotification carries the per-pair fields of a pending notification
type gatedNotification struct {
	notifType entity.NotificationType
	message   string
	radiusM   int
	distanceM float64
}

// createGatedNotification persists the notification unless one for the same
// (buyer, type, vendor) already exists inside the cooldown window. The
// check-then-create pattern is best-effort; a race can produce an occasional
// duplicate and that is acceptable.
func (s *proximityService) createGatedNotification(ctx context.Context, buyerID uuid.UUID, vendor *entity.Vendor, pending *gatedNotification) (*entity.Notification, error) {
	exists, err := s.notificationRepo.NotificationExistsWithin(ctx, buyerID, pending.notifType, &vendor.ID, s.cooldown)
	if err != nil {
		return nil, errors.Wrap(err, "check notification cooldown")
	}
	if exists {
		return nil, nil
	}

	notification := &entity.Notification{
		ID:        uuid.New(),
		BuyerID:   buyerID,
		VendorID:  &vendor.ID,
		Type:      pending.notifType,
		Message:   pending.message,
		RadiusM:   pending.radiusM,
		DistanceM: pending.distanceM,
		Metadata: map[string]any{
			"distance_m": pending.distanceM,
			"vendor_id":  vendor.ID.String(),
		},
		CreatedAt: time.Now(),
	}

	if err := s.notificationRepo.CreateNotification(ctx, notification); err != nil {
		return nil, errors.Wrap(err, "create notification")
	}

	return notification, nil
}

package impl

import (
	"context"
	"log/slog"
	"time"

	"pklradar/internal/domain/entity"
	domainerrors "pklradar/internal/domain/errors"
	"pklradar/internal/domain/repository"
	"pklradar/internal/domain/service"
	"pklradar/internal/errors"
	"pklradar/internal/usecase"

	"github.com/google/uuid"
)

const defaultStatsLimit = 30

type vendorService struct {
	vendorRepo   repository.VendorRepository
	locationRepo repository.LocationRepository
	statsRepo    repository.StatsRepository
	qrisService  service.QRISService
	logger       *slog.Logger
}

// NewVendorService creates a new vendor profile service instance
func NewVendorService(
	vendorRepo repository.VendorRepository,
	locationRepo repository.LocationRepository,
	statsRepo repository.StatsRepository,
	qrisService service.QRISService,
	logger *slog.Logger,
) usecase.VendorUsecase {
	return &vendorService{
		vendorRepo:   vendorRepo,
		locationRepo: locationRepo,
		statsRepo:    statsRepo,
		qrisService:  qrisService,
		logger:       logger,
	}
}

// CreateVendorProfile registers the vendor profile of a user account.
// New profiles start inactive and pending admin verification.
func (s *vendorService) CreateVendorProfile(ctx context.Context, userID uuid.UUID, input *usecase.CreateVendorInput) (*entity.Vendor, error) {
	vendor := &entity.Vendor{
		ID:                 uuid.New(),
		UserID:             userID,
		BusinessName:       input.BusinessName,
		Category:           input.Category,
		OperatingHours:     input.OperatingHours,
		About:              input.About,
		HomeAddress:        input.HomeAddress,
		BankAccountName:    input.BankAccountName,
		QRISLink:           input.QRISLink,
		IsActive:           false,
		VerificationStatus: entity.VerificationPending,
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}

	if err := s.vendorRepo.CreateVendor(ctx, vendor); err != nil {
		if errors.Is(err, repository.ErrDuplicateVendorProfile) {
			return nil, domainerrors.ErrVendorProfileExists
		}

		return nil, errors.Wrap(err, "create vendor")
	}

	return vendor, nil
}

// GetVendorByUser retrieves the vendor profile owned by a user account
func (s *vendorService) GetVendorByUser(ctx context.Context, userID uuid.UUID) (*entity.Vendor, error) {
	vendor, err := s.vendorRepo.FindVendorByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, domainerrors.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "find vendor by user")
	}

	return vendor, nil
}

// UpdateVendorProfile updates the vendor profile owned by a user account
func (s *vendorService) UpdateVendorProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateVendorInput) (*entity.Vendor, error) {
	vendor, err := s.vendorRepo.FindVendorByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, domainerrors.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "find vendor by user")
	}

	s.applyVendorUpdates(vendor, input)
	vendor.UpdatedAt = time.Now()

	if err := s.vendorRepo.UpdateVendor(ctx, vendor); err != nil {
		return nil, errors.Wrap(err, "update vendor")
	}

	return vendor, nil
}

// applyVendorUpdates applies the update input to a vendor profile
func (s *vendorService) applyVendorUpdates(vendor *entity.Vendor, input *usecase.UpdateVendorInput) {
	if input.BusinessName != nil {
		vendor.BusinessName = *input.BusinessName
	}
	if input.Category != nil {
		vendor.Category = *input.Category
	}
	if input.OperatingHours != nil {
		vendor.OperatingHours = *input.OperatingHours
	}
	if input.About != nil {
		vendor.About = *input.About
	}
	if input.HomeAddress != nil {
		vendor.HomeAddress = *input.HomeAddress
	}
	if input.BankAccountName != nil {
		vendor.BankAccountName = *input.BankAccountName
	}
	if input.QRISLink != nil {
		vendor.QRISLink = *input.QRISLink
	}
}

// SetVendorVerification records an admin verification decision
func (s *vendorService) SetVendorVerification(ctx context.Context, vendorID uuid.UUID, status entity.VerificationStatus, note string) error {
	if err := s.vendorRepo.UpdateVerification(ctx, vendorID, status, note); err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return domainerrors.ErrVendorNotFound
		}

		return errors.Wrap(err, "update verification")
	}

	return nil
}

// GetVendorLive retrieves a visible vendor with its latest location and
// counts the view toward the vendor's daily stats
func (s *vendorService) GetVendorLive(ctx context.Context, vendorID uuid.UUID) (*usecase.VendorLiveOutput, error) {
	vendor, err := s.vendorRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, domainerrors.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "find vendor by ID")
	}

	if !vendor.IsVisibleToBuyers() {
		return nil, domainerrors.ErrVendorInactive
	}

	location, err := s.locationRepo.FindLatestVendorLocation(ctx, vendorID)
	if err != nil && !errors.Is(err, repository.ErrLocationNotFound) {
		return nil, errors.Wrap(err, "find latest vendor location")
	}

	// Stats are best-effort, a failed counter never fails the view.
	if err := s.statsRepo.IncrementDailyStat(ctx, vendorID, time.Now(), entity.StatLiveViews); err != nil {
		s.logger.Warn("increment live_views stat failed",
			slog.String("vendor_id", vendorID.String()),
			slog.Any("error", err),
		)
	}

	return &usecase.VendorLiveOutput{
		Vendor:   vendor,
		Location: location,
	}, nil
}

// GetDailyStats retrieves the daily activity counters of the caller's vendor profile
func (s *vendorService) GetDailyStats(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.VendorDailyStats, error) {
	vendor, err := s.vendorRepo.FindVendorByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, domainerrors.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "find vendor by user")
	}

	if limit <= 0 {
		limit = defaultStatsLimit
	}

	stats, err := s.statsRepo.FindDailyStats(ctx, vendor.ID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "find daily stats")
	}

	return stats, nil
}

// GetPaymentQR renders the vendor's QRIS payment link as a PNG QR code
func (s *vendorService) GetPaymentQR(ctx context.Context, vendorID uuid.UUID) ([]byte, error) {
	vendor, err := s.vendorRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, domainerrors.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "find vendor by ID")
	}

	if vendor.QRISLink == "" {
		return nil, domainerrors.ErrQRISLinkMissing
	}

	png, err := s.qrisService.GeneratePaymentQR(vendor.QRISLink)
	if err != nil {
		return nil, errors.Wrap(err, "generate payment QR")
	}

	return png, nil
}

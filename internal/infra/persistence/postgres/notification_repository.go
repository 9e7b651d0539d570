package postgres

import (
	"context"
	"time"

	"pklradar/internal/domain/entity"
	domainerrors "pklradar/internal/domain/errors"
	"pklradar/internal/domain/repository"
	"pklradar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateNotification persists a new proximity notification.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	// Update the entity with generated values
	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// NotificationExistsWithin reports whether a notification of the same
// (buyer, type, vendor) was created within the lookback window.
func (repo *notificationRepository) NotificationExistsWithin(ctx context.Context, buyerID uuid.UUID, notifType entity.NotificationType, vendorID *uuid.UUID, window time.Duration) (bool, error) {
	cutoff := time.Now().Add(-window)

	query := repo.db.WithContext(ctx).
		Model(&model.BuyerNotificationModel{}).
		Where("buyer_id = ? AND type = ? AND created_at >= ?", buyerID, string(notifType), cutoff)

	if vendorID != nil {
		query = query.Where("vendor_id = ?", *vendorID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check notification cooldown")
	}

	return count > 0, nil
}

// FindNotificationsByBuyer retrieves a buyer's notifications, newest first.
func (repo *notificationRepository) FindNotificationsByBuyer(ctx context.Context, buyerID uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	var notificationModels []*model.BuyerNotificationModel

	if err := repo.db.WithContext(ctx).
		Where("buyer_id = ?", buyerID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by buyer")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// CountUnreadByBuyer counts the buyer's unread notifications.
func (repo *notificationRepository) CountUnreadByBuyer(ctx context.Context, buyerID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.BuyerNotificationModel{}).
		Where("buyer_id = ? AND is_read = ?", buyerID, false).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// MarkNotificationRead flips the read flag of a notification owned by the buyer.
func (repo *notificationRepository) MarkNotificationRead(ctx context.Context, buyerID, notificationID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BuyerNotificationModel{}).
		Where("id = ? AND buyer_id = ?", notificationID, buyerID).
		Update("is_read", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification read")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM BuyerNotificationModel to a domain Notification entity.
func toNotificationDomain(data *model.BuyerNotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	return &entity.Notification{
		ID:        data.ID,
		BuyerID:   data.BuyerID,
		VendorID:  data.VendorID,
		Type:      entity.NotificationType(data.Type),
		Message:   data.Message,
		RadiusM:   data.RadiusM,
		DistanceM: data.DistanceM,
		IsRead:    data.IsRead,
		Metadata:  map[string]any(data.Metadata),
		CreatedAt: data.CreatedAt,
	}
}

// fromNotificationDomain converts a domain Notification entity to a GORM BuyerNotificationModel.
func fromNotificationDomain(data *entity.Notification) *model.BuyerNotificationModel {
	if data == nil {
		return nil
	}

	return &model.BuyerNotificationModel{
		ID:        data.ID,
		BuyerID:   data.BuyerID,
		VendorID:  data.VendorID,
		Type:      string(data.Type),
		Message:   data.Message,
		RadiusM:   data.RadiusM,
		DistanceM: data.DistanceM,
		IsRead:    data.IsRead,
		Metadata:  datatypes.JSONMap(data.Metadata),
		CreatedAt: data.CreatedAt,
	}
}

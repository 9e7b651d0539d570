package impl

import (
	"context"

	"pklradar/internal/domain/entity"
	domainerrors "pklradar/internal/domain/errors"
	"pklradar/internal/domain/repository"
	"pklradar/internal/errors"
	"pklradar/internal/usecase"

	"github.com/google/uuid"
)

const (
	defaultNotificationLimit = 20
	maxNotificationLimit     = 100
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationService creates a new buyer notification service instance
func NewNotificationService(notificationRepo repository.NotificationRepository) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: notificationRepo,
	}
}

// ListNotifications retrieves the buyer's notifications, newest first
func (s *notificationService) ListNotifications(ctx context.Context, buyerID uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	if limit <= 0 {
		limit = defaultNotificationLimit
	}
	if limit > maxNotificationLimit {
		limit = maxNotificationLimit
	}
	if offset < 0 {
		offset = 0
	}

	notifications, err := s.notificationRepo.FindNotificationsByBuyer(ctx, buyerID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "find notifications by buyer")
	}

	return notifications, nil
}

// CountUnread counts the buyer's unread notifications
func (s *notificationService) CountUnread(ctx context.Context, buyerID uuid.UUID) (int64, error) {
	count, err := s.notificationRepo.CountUnreadByBuyer(ctx, buyerID)
	if err != nil {
		return 0, errors.Wrap(err, "count unread by buyer")
	}

	return count, nil
}

// MarkRead marks one of the buyer's notifications as read
func (s *notificationService) MarkRead(ctx context.Context, buyerID, notificationID uuid.UUID) error {
	if err := s.notificationRepo.MarkNotificationRead(ctx, buyerID, notificationID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return errors.Wrap(err, "mark notification read")
	}

	return nil
}

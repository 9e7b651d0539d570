package usecase

import (
	"context"

	"pklradar/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase defines the interface for buyer notification use cases
type NotificationUsecase interface {
	// ListNotifications retrieves the buyer's notifications, newest first
	ListNotifications(ctx context.Context, buyerID uuid.UUID, limit, offset int) ([]*entity.Notification, error)

	// CountUnread counts the buyer's unread notifications
	CountUnread(ctx context.Context, buyerID uuid.UUID) (int64, error)

	// MarkRead marks one of the buyer's notifications as read
	MarkRead(ctx context.Context, buyerID, notificationID uuid.UUID) error
}

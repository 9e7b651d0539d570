package impl

import (
	"context"
	"testing"

	"pklradar/internal/domain/entity"
	domainerrors "pklradar/internal/domain/errors"
	"pklradar/internal/domain/repository"
	mockRepo "pklradar/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_ListNotifications_ClampsLimits(t *testing.T) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	service := NewNotificationService(notificationRepo)

	ctx := context.Background()
	buyerID := uuid.New()
	notifications := []*entity.Notification{
		{ID: uuid.New(), BuyerID: buyerID, Type: entity.NotificationTypeNearby},
	}

	t.Run("zero limit uses default", func(t *testing.T) {
		notificationRepo.EXPECT().
			FindNotificationsByBuyer(ctx, buyerID, defaultNotificationLimit, 0).
			Return(notifications, nil).
			Once()

		got, err := service.ListNotifications(ctx, buyerID, 0, -5)
		require.NoError(t, err)
		assert.Equal(t, notifications, got)
	})

	t.Run("oversized limit capped", func(t *testing.T) {
		notificationRepo.EXPECT().
			FindNotificationsByBuyer(ctx, buyerID, maxNotificationLimit, 40).
			Return(notifications, nil).
			Once()

		_, err := service.ListNotifications(ctx, buyerID, 500, 40)
		require.NoError(t, err)
	})
}

func TestNotificationService_CountUnread(t *testing.T) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	service := NewNotificationService(notificationRepo)

	ctx := context.Background()
	buyerID := uuid.New()

	notificationRepo.EXPECT().
		CountUnreadByBuyer(ctx, buyerID).
		Return(int64(4), nil)

	count, err := service.CountUnread(ctx, buyerID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestNotificationService_MarkRead(t *testing.T) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	service := NewNotificationService(notificationRepo)

	ctx := context.Background()
	buyerID := uuid.New()
	notificationID := uuid.New()

	t.Run("success", func(t *testing.T) {
		notificationRepo.EXPECT().
			MarkNotificationRead(ctx, buyerID, notificationID).
			Return(nil).
			Once()

		require.NoError(t, service.MarkRead(ctx, buyerID, notificationID))
	})

	t.Run("not found", func(t *testing.T) {
		notificationRepo.EXPECT().
			MarkNotificationRead(ctx, buyerID, notificationID).
			Return(repository.ErrNotificationNotFound).
			Once()

		err := service.MarkRead(ctx, buyerID, notificationID)
		assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
	})
}

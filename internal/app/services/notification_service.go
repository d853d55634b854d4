package services

import (
	"context"

	"github.com/ecamli/registra/internal/app/models"
	"github.com/ecamli/registra/internal/pkg/apperrors"
	"github.com/ecamli/registra/internal/pkg/logger"
)

// NotificationService manages dashboard notifications
type NotificationService struct {
	notifications NotificationStore
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(notifications NotificationStore) *NotificationService {
	return &NotificationService{notifications: notifications}
}

// NotifyUser writes a dashboard message for a user. Delivery is best effort:
// failures are logged, never propagated to the record operation that
// triggered the message.
func (s *NotificationService) NotifyUser(ctx context.Context, userID int64, message string) {
	if userID <= 0 || message == "" {
		return
	}
	notification := &models.Notification{UserID: userID, Message: message}
	if err := s.notifications.Create(ctx, notification); err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Failed to create notification")
	}
}

// ListNotifications retrieves a user's notifications, newest first
func (s *NotificationService) ListNotifications(ctx context.Context, userID int64, unreadOnly bool) ([]*models.Notification, error) {
	if userID <= 0 {
		return nil, apperrors.NewValidationError("user ID must be positive")
	}
	return s.notifications.ListByUser(ctx, userID, unreadOnly)
}

// UnreadCount returns the number of unread notifications for a user
func (s *NotificationService) UnreadCount(ctx context.Context, userID int64) (int, error) {
	if userID <= 0 {
		return 0, apperrors.NewValidationError("user ID must be positive")
	}
	return s.notifications.UnreadCount(ctx, userID)
}

// MarkAllRead marks all of a user's unread notifications as read
func (s *NotificationService) MarkAllRead(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return apperrors.NewValidationError("user ID must be positive")
	}
	return s.notifications.MarkAllRead(ctx, userID)
}

// ClearAll deletes all of a user's notifications
func (s *NotificationService) ClearAll(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return apperrors.NewValidationError("user ID must be positive")
	}
	return s.notifications.ClearAll(ctx, userID)
}

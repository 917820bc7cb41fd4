package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/emrekoc/campushub/internal/app/models"
	"github.com/emrekoc/campushub/internal/app/models/dto"
	"github.com/emrekoc/campushub/internal/pkg/apperrors"
)

// NotificationStore is the persistence surface for notifications
type NotificationStore interface {
	Create(ctx context.Context, notification *models.Notification) error
	ListByUser(ctx context.Context, userID int64, unreadOnly bool) ([]*models.Notification, error)
	CountUnread(ctx context.Context, userID int64) (int, error)
	MarkRead(ctx context.Context, id, userID int64) error
	MarkAllRead(ctx context.Context, userID int64) error
	Delete(ctx context.Context, id, userID int64) error
}

// NotificationService handles user notifications and unread tracking
type NotificationService struct {
	notificationStore NotificationStore
	logger            zerolog.Logger
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(notificationStore NotificationStore, logger zerolog.Logger) *NotificationService {
	return &NotificationService{
		notificationStore: notificationStore,
		logger:            logger,
	}
}

// Notify pushes a notification to a user. Implements NotificationSender
// for the other services.
func (s *NotificationService) Notify(ctx context.Context, userID int64, title, message string, notificationType models.NotificationType, link *string) error {
	return s.notificationStore.Create(ctx, &models.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    notificationType,
		Link:    link,
	})
}

// Create creates a notification from an admin request
func (s *NotificationService) Create(ctx context.Context, req *dto.CreateNotificationRequest) (*models.Notification, error) {
	notificationType, ok := models.ParseNotificationType(req.Type)
	if !ok {
		return nil, apperrors.NewValidationError("unknown notification type: " + req.Type)
	}

	notification := &models.Notification{
		UserID:  req.UserID,
		Title:   req.Title,
		Message: req.Message,
		Type:    notificationType,
		Link:    req.Link,
	}
	if err := s.notificationStore.Create(ctx, notification); err != nil {
		return nil, err
	}
	return notification, nil
}

// List retrieves a user's notifications with the unread count
func (s *NotificationService) List(ctx context.Context, userID int64, unreadOnly bool) ([]*models.Notification, int, error) {
	notifications, err := s.notificationStore.ListByUser(ctx, userID, unreadOnly)
	if err != nil {
		return nil, 0, err
	}
	unread, err := s.notificationStore.CountUnread(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return notifications, unread, nil
}

// UnreadCount returns the user's unread notification count
func (s *NotificationService) UnreadCount(ctx context.Context, userID int64) (int, error) {
	return s.notificationStore.CountUnread(ctx, userID)
}

// MarkRead marks one of the user's notifications as read
func (s *NotificationService) MarkRead(ctx context.Context, id, userID int64) error {
	return s.notificationStore.MarkRead(ctx, id, userID)
}

// MarkAllRead marks all of the user's notifications as read
func (s *NotificationService) MarkAllRead(ctx context.Context, userID int64) error {
	return s.notificationStore.MarkAllRead(ctx, userID)
}

// Delete removes one of the user's notifications
func (s *NotificationService) Delete(ctx context.Context, id, userID int64) error {
	return s.notificationStore.Delete(ctx, id, userID)
}

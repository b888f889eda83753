package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/edupath/admissions/internal/app/models"
	"github.com/edupath/admissions/internal/app/repositories"
	"github.com/edupath/admissions/internal/pkg/apperrors"
	"github.com/edupath/admissions/internal/pkg/helpers"
	"github.com/edupath/admissions/internal/pkg/metrics"
	"github.com/edupath/admissions/internal/pkg/websocket"
	"github.com/rs/zerolog"
)

// Delivery is what happened to the live push of a persisted notification
type Delivery string

const (
	DeliveryDelivered     Delivery = metrics.OutcomeDelivered
	DeliveryNoChannel     Delivery = metrics.OutcomeNoChannel
	DeliveryChannelClosed Delivery = metrics.OutcomeChannelClosed
	DeliveryFailed        Delivery = metrics.OutcomeFailed
	DeliveryRelayed       Delivery = metrics.OutcomeRelayed
)

// DispatchResult describes one Notify call
type DispatchResult struct {
	Notification *models.Notification
	Persisted    bool
	Delivery     Delivery
}

// ChannelRegistry finds a user's live channel
type ChannelRegistry interface {
	Lookup(userID int64) (websocket.Channel, bool)
}

// Relay hands a notification to other instances
type Relay interface {
	Publish(ctx context.Context, userID int64, message string) error
}

// Notifier persists and pushes a notification to a user
type Notifier interface {
	Notify(ctx context.Context, userID int64, message string) (*DispatchResult, error)
}

// NotificationService persists notifications and pushes them to connected users
type NotificationService struct {
	repo     repositories.INotificationRepository
	registry ChannelRegistry
	relay    Relay
	pageSize int
	logger   zerolog.Logger
}

// NewNotificationService creates a new NotificationService. relay may be nil.
func NewNotificationService(
	repo repositories.INotificationRepository,
	registry ChannelRegistry,
	relay Relay,
	pageSize int,
	logger zerolog.Logger,
) *NotificationService {
	return &NotificationService{
		repo:     repo,
		registry: registry,
		relay:    relay,
		pageSize: helpers.ClampLimit(pageSize, helpers.DefaultPageSize, helpers.MaxPageSize),
		logger:   logger,
	}
}

// Notify stores the message for the user and then attempts a live push.
// Only a storage failure is returned; push failures are logged and reported
// in the result.
func (s *NotificationService) Notify(ctx context.Context, userID int64, message string) (*DispatchResult, error) {
	if userID <= 0 {
		return nil, apperrors.NewValidationError("invalid user ID")
	}
	if strings.TrimSpace(message) == "" {
		return nil, apperrors.NewValidationError("notification message cannot be empty")
	}

	notification := &models.Notification{UserID: userID, Message: message}
	if err := s.repo.Create(ctx, notification); err != nil {
		return nil, fmt.Errorf("failed to persist notification: %w", err)
	}
	metrics.NotificationsPersisted.Inc()

	result := &DispatchResult{
		Notification: notification,
		Persisted:    true,
		Delivery:     s.deliver(ctx, userID, message),
	}
	metrics.RecordDelivery(string(result.Delivery))

	s.logger.Debug().
		Int64("userID", userID).
		Int64("notificationID", notification.ID).
		Str("delivery", string(result.Delivery)).
		Msg("Notification dispatched")

	return result, nil
}

func (s *NotificationService) deliver(ctx context.Context, userID int64, message string) Delivery {
	ch, ok := s.registry.Lookup(userID)
	if !ok || !ch.IsOpen() {
		// a stale local entry may hide a live connection on another instance
		if s.relay != nil {
			return s.publish(ctx, userID, message)
		}
		if !ok {
			return DeliveryNoChannel
		}
		return DeliveryChannelClosed
	}

	if err := ch.Send(websocket.NewNotification(message)); err != nil {
		if errors.Is(err, websocket.ErrChannelClosed) {
			return DeliveryChannelClosed
		}
		s.logger.Warn().Err(err).Int64("userID", userID).Msg("Failed to push notification")
		return DeliveryFailed
	}

	return DeliveryDelivered
}

func (s *NotificationService) publish(ctx context.Context, userID int64, message string) Delivery {
	if err := s.relay.Publish(ctx, userID, message); err != nil {
		s.logger.Warn().Err(err).Int64("userID", userID).Msg("Failed to relay notification")
		return DeliveryFailed
	}
	return DeliveryRelayed
}

// ListForUser returns the user's most recent notifications, newest first
func (s *NotificationService) ListForUser(ctx context.Context, userID int64, limit int) ([]*models.Notification, error) {
	if userID <= 0 {
		return nil, apperrors.NewValidationError("invalid user ID")
	}

	notifications, err := s.repo.ListByUser(ctx, userID, helpers.ClampLimit(limit, s.pageSize, helpers.MaxPageSize))
	if err != nil {
		return nil, fmt.Errorf("error retrieving notifications: %w", err)
	}
	return notifications, nil
}

// MarkAllRead marks every unread notification of the user as read
func (s *NotificationService) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	if userID <= 0 {
		return 0, apperrors.NewValidationError("invalid user ID")
	}

	updated, err := s.repo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("error marking notifications read: %w", err)
	}
	return updated, nil
}

// UnreadCount returns the number of unread notifications of the user
func (s *NotificationService) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	if userID <= 0 {
		return 0, apperrors.NewValidationError("invalid user ID")
	}

	count, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("error counting unread notifications: %w", err)
	}
	return count, nil
}

var _ Notifier = (*NotificationService)(nil)

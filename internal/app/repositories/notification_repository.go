package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/edupath/admissions/internal/app/models"
	"github.com/edupath/admissions/internal/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NotificationRepository handles notification database operations
type NotificationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create persists an unread notification and fills in its ID and timestamp
func (r *NotificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	sql, args, err := r.sb.Insert("notifications").
		Columns("user_id", "message").
		Values(notification.UserID, notification.Message).
		Suffix("RETURNING id, is_read, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create notification SQL")
		return fmt.Errorf("failed to build create notification query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&notification.ID, &notification.IsRead, &notification.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Int64("userID", notification.UserID).Msg("Error executing create notification query")
		return fmt.Errorf("error creating notification: %w", err)
	}

	return nil
}

// ListByUser returns up to limit notifications for the user, newest first
func (r *NotificationRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]*models.Notification, error) {
	sql, args, err := r.sb.Select("id", "user_id", "message", "is_read", "created_at").
		From("notifications").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list notifications SQL")
		return nil, fmt.Errorf("failed to build list notifications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error executing list notifications query")
		return nil, fmt.Errorf("error querying notifications: %w", err)
	}
	defer rows.Close()

	notifications := []*models.Notification{}
	for rows.Next() {
		n := &models.Notification{}
		if err := rows.Scan(&n.ID, &n.UserID, &n.Message, &n.IsRead, &n.CreatedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning notification row")
			return nil, fmt.Errorf("error scanning notification row: %w", err)
		}
		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating notification rows")
		return nil, fmt.Errorf("error iterating notification rows: %w", err)
	}

	return notifications, nil
}

// MarkAllRead flags every unread notification of the user as read
func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	sql, args, err := r.sb.Update("notifications").
		Set("is_read", true).
		Where(squirrel.Eq{"user_id": userID, "is_read": false}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building mark notifications read SQL")
		return 0, fmt.Errorf("failed to build mark read query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error executing mark notifications read query")
		return 0, fmt.Errorf("error marking notifications read: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}

// CountUnread returns the number of unread notifications for the user
func (r *NotificationRepository) CountUnread(ctx context.Context, userID int64) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("notifications").
		Where(squirrel.Eq{"user_id": userID, "is_read": false}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count unread query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error counting unread notifications")
		return 0, fmt.Errorf("error counting unread notifications: %w", err)
	}

	return count, nil
}

var _ INotificationRepository = (*NotificationRepository)(nil)

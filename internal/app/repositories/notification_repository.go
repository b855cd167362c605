package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alqalam/college-backend/internal/app/models"
	"github.com/alqalam/college-backend/internal/pkg/logger"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

var notificationColumns = []string{
	"id", "student_id", "title_ar", "body_ar", "type", "is_read", "created_at",
}

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

// ListByStudent retrieves a student's notifications, newest first,
// limited to the given count (0 means no limit).
func (r *NotificationRepository) ListByStudent(ctx context.Context, studentID int64, limit int) ([]models.Notification, error) {
	builder := r.sb.Select(notificationColumns...).
		From("notifications").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("created_at DESC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list notifications SQL")
		return nil, fmt.Errorf("failed to build list notifications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing list notifications query")
		return nil, fmt.Errorf("error querying notifications: %w", err)
	}
	defer rows.Close()

	notifications := []models.Notification{}
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(
			&n.ID, &n.StudentID, &n.TitleAr, &n.BodyAr, &n.Type, &n.IsRead, &n.CreatedAt,
		); err != nil {
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

// ListPage retrieves one page of a student's notifications, newest first,
// along with the total number of notifications for the student.
func (r *NotificationRepository) ListPage(ctx context.Context, studentID int64, offset uint64, limit int) ([]models.Notification, int64, error) {
	countSQL, countArgs, err := r.sb.Select("COUNT(*)").
		From("notifications").
		Where(squirrel.Eq{"student_id": studentID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building notification count SQL")
		return nil, 0, fmt.Errorf("failed to build notification count query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error querying notification count")
		return nil, 0, fmt.Errorf("error querying notification count: %w", err)
	}

	sql, args, err := r.sb.Select(notificationColumns...).
		From("notifications").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("created_at DESC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building notification page SQL")
		return nil, 0, fmt.Errorf("failed to build notification page query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing notification page query")
		return nil, 0, fmt.Errorf("error querying notification page: %w", err)
	}
	defer rows.Close()

	notifications := []models.Notification{}
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(
			&n.ID, &n.StudentID, &n.TitleAr, &n.BodyAr, &n.Type, &n.IsRead, &n.CreatedAt,
		); err != nil {
			logger.Error().Err(err).Msg("Error scanning notification row")
			return nil, 0, fmt.Errorf("error scanning notification row: %w", err)
		}
		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating notification rows")
		return nil, 0, fmt.Errorf("error iterating notification rows: %w", err)
	}

	return notifications, total, nil
}

// UnreadCount counts a student's unread notifications
func (r *NotificationRepository) UnreadCount(ctx context.Context, studentID int64) (int, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("notifications").
		Where(squirrel.Eq{"student_id": studentID, "is_read": false}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building unread count SQL")
		return 0, fmt.Errorf("failed to build unread count query: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error querying unread count")
		return 0, fmt.Errorf("error querying unread count: %w", err)
	}

	return count, nil
}

// MarkRead flags one notification of a student as read
func (r *NotificationRepository) MarkRead(ctx context.Context, studentID, notificationID int64) error {
	sql, args, err := r.sb.Update("notifications").
		Set("is_read", true).
		Where(squirrel.Eq{"id": notificationID, "student_id": studentID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building mark read SQL")
		return fmt.Errorf("failed to build mark read query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("notificationID", notificationID).Msg("Error executing mark read query")
		return fmt.Errorf("error marking notification read: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// Create inserts a new notification
func (r *NotificationRepository) Create(ctx context.Context, notification *models.Notification) (int64, error) {
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now()
	}

	sql, args, err := r.sb.Insert("notifications").
		Columns(notificationColumns[1:]...).
		Values(
			notification.StudentID, notification.TitleAr, notification.BodyAr,
			notification.Type, notification.IsRead, notification.CreatedAt,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create notification SQL")
		return 0, fmt.Errorf("failed to build create notification query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create notification query")
		return 0, fmt.Errorf("error creating notification: %w", err)
	}

	notification.ID = id
	return id, nil
}

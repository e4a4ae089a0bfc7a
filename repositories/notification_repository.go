package repositories

import (
	"context"

	"diskusi-bisnis/models"

	"gorm.io/gorm"
)

const NotificationListLimit = 50

type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	ListByUser(ctx context.Context, userID uint, limit int) ([]models.Notification, error)
	MarkRead(ctx context.Context, id, userID uint) error
	MarkAllRead(ctx context.Context, userID uint) (int64, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	return conn(ctx, r.db).Create(notification).Error
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID uint, limit int) ([]models.Notification, error) {
	if limit <= 0 || limit > NotificationListLimit {
		limit = NotificationListLimit
	}
	var notifications []models.Notification
	err := conn(ctx, r.db).Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&notifications).Error
	return notifications, err
}

// MarkRead only touches the notification when it belongs to userID.
func (r *notificationRepository) MarkRead(ctx context.Context, id, userID uint) error {
	res := conn(ctx, r.db).Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	return requireAffected(res, "notification")
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, userID uint) (int64, error) {
	res := conn(ctx, r.db).Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

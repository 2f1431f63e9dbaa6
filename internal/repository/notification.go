package repository

import (
	"compliance-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationRepository handles database operations for notifications
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create creates a new notification
func (r *NotificationRepository) Create(n *models.Notification) error {
	return r.db.Create(n).Error
}

// CreateBatch inserts multiple notifications in one transaction
func (r *NotificationRepository) CreateBatch(ns []models.Notification) error {
	if len(ns) == 0 {
		return nil
	}
	return r.db.Create(&ns).Error
}

// GetByID retrieves a notification by ID
func (r *NotificationRepository) GetByID(id uuid.UUID) (*models.Notification, error) {
	var n models.Notification
	err := r.db.First(&n, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// GetByUserID retrieves notifications for a user with pagination, newest first
func (r *NotificationRepository) GetByUserID(userID uuid.UUID, limit, offset int) ([]models.Notification, int64, error) {
	var ns []models.Notification
	var total int64

	query := r.db.Model(&models.Notification{}).Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Limit(limit).Offset(offset).Order("created_at DESC").Find(&ns).Error
	if err != nil {
		return nil, 0, err
	}

	return ns, total, nil
}

// CountUnread counts unread notifications for a user
func (r *NotificationRepository) CountUnread(userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).Where("user_id = ? AND read = ?", userID, false).Count(&count).Error
	return count, err
}

// MarkRead marks a single notification as read
func (r *NotificationRepository) MarkRead(id uuid.UUID) error {
	return r.db.Model(&models.Notification{}).Where("id = ?", id).Update("read", true).Error
}

// MarkAllRead marks all of a user's notifications as read
func (r *NotificationRepository) MarkAllRead(userID uuid.UUID) error {
	return r.db.Model(&models.Notification{}).Where("user_id = ? AND read = ?", userID, false).Update("read", true).Error
}

// Delete deletes a notification
func (r *NotificationRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Notification{}, "id = ?", id).Error
}

package service

import (
	"errors"
	"fmt"

	"compliance-portal-backend/internal/database/models"
	apperrors "compliance-portal-backend/internal/errors"
	"compliance-portal-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationService handles in-app notifications
type NotificationService struct {
	repo     repository.NotificationRepositoryInterface
	userRepo repository.UserRepositoryInterface
}

// NewNotificationService creates a new notification service
func NewNotificationService(repo repository.NotificationRepositoryInterface, userRepo repository.UserRepositoryInterface) *NotificationService {
	return &NotificationService{
		repo:     repo,
		userRepo: userRepo,
	}
}

// NotificationListResponse represents a paginated list of notifications
type NotificationListResponse struct {
	Notifications []models.Notification `json:"notifications"`
	Unread        int64                 `json:"unread"`
	Total         int64                 `json:"total"`
	Page          int                   `json:"page"`
	PageSize      int                   `json:"page_size"`
}

// Notify creates a notification for a single user
func (s *NotificationService) Notify(userID uuid.UUID, notifType models.NotificationType, title, body, entityType string, entityID *uuid.UUID) error {
	n := &models.Notification{
		UserID:     userID,
		Type:       notifType,
		Title:      title,
		Body:       body,
		EntityType: entityType,
		EntityID:   entityID,
	}
	if err := s.repo.Create(n); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// NotifyCompany fans a notification out to every active user of a company
func (s *NotificationService) NotifyCompany(companyID uuid.UUID, notifType models.NotificationType, title, body, entityType string, entityID *uuid.UUID) error {
	users, err := s.userRepo.GetActiveByCompanyID(companyID)
	if err != nil {
		return fmt.Errorf("failed to list company users: %w", err)
	}
	if len(users) == 0 {
		return nil
	}

	notifications := make([]models.Notification, 0, len(users))
	for _, user := range users {
		notifications = append(notifications, models.Notification{
			UserID:     user.ID,
			Type:       notifType,
			Title:      title,
			Body:       body,
			EntityType: entityType,
			EntityID:   entityID,
		})
	}
	if err := s.repo.CreateBatch(notifications); err != nil {
		return fmt.Errorf("failed to create notifications: %w", err)
	}
	return nil
}

// GetByUserID lists a user's notifications with the unread count
func (s *NotificationService) GetByUserID(userID uuid.UUID, page, pageSize int) (*NotificationListResponse, error) {
	page, pageSize = normalizePaging(page, pageSize)

	notifications, total, err := s.repo.GetByUserID(userID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	unread, err := s.repo.CountUnread(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return &NotificationListResponse{
		Notifications: notifications,
		Unread:        unread,
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
	}, nil
}

// CountUnread returns the number of unread notifications for a user
func (s *NotificationService) CountUnread(userID uuid.UUID) (int64, error) {
	unread, err := s.repo.CountUnread(userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return unread, nil
}

// MarkRead marks one notification as read, enforcing ownership
func (s *NotificationService) MarkRead(userID, notificationID uuid.UUID) error {
	n, err := s.repo.GetByID(notificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotificationNotFound
		}
		return fmt.Errorf("failed to get notification: %w", err)
	}
	if n.UserID != userID {
		return apperrors.ErrCompanyMismatch
	}
	if err := s.repo.MarkRead(notificationID); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

// MarkAllRead marks every notification of a user as read
func (s *NotificationService) MarkAllRead(userID uuid.UUID) error {
	if err := s.repo.MarkAllRead(userID); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}

package handlers

import (
	"net/http"

	"compliance-portal-backend/internal/auth"
	"compliance-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// NotificationHandler handles HTTP requests for in-app notifications
type NotificationHandler struct {
	notificationService *service.NotificationService
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// ListNotifications handles GET /notifications
// @Summary List notifications
// @Description Get the authenticated user's notifications, newest first
// @Tags notifications
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.NotificationListResponse "Successfully retrieved notifications"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userID, _ := auth.UserID(c)
	page, pageSize := parsePaging(c)

	notifications, err := h.notificationService.GetByUserID(userID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// UnreadCount handles GET /notifications/unread-count
// @Summary Count unread notifications
// @Description Get the number of unread notifications for the authenticated user
// @Tags notifications
// @Accept json
// @Produce json
// @Success 200 {object} map[string]int64 "Unread count"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	userID, _ := auth.UserID(c)

	count, err := h.notificationService.CountUnread(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"unread": count})
}

// MarkRead handles POST /notifications/:id/read
// @Summary Mark a notification read
// @Description Mark one of the authenticated user's notifications as read
// @Tags notifications
// @Accept json
// @Produce json
// @Param id path string true "Notification ID (UUID)"
// @Success 204 "Marked read"
// @Failure 400 {object} ErrorResponse "Invalid notification ID"
// @Failure 403 {object} ErrorResponse "Notification belongs to another user"
// @Failure 404 {object} ErrorResponse "Notification not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	userID, _ := auth.UserID(c)
	if err := h.notificationService.MarkRead(userID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// MarkAllRead handles POST /notifications/read-all
// @Summary Mark all notifications read
// @Description Mark every unread notification for the authenticated user as read
// @Tags notifications
// @Accept json
// @Produce json
// @Success 204 "All marked read"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, _ := auth.UserID(c)

	if err := h.notificationService.MarkAllRead(userID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

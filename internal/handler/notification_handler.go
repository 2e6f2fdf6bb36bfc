package handler

import (
	"github.com/NAPONYAHASINE/journal/internal/middleware"
	"github.com/NAPONYAHASINE/journal/internal/service"
	"github.com/NAPONYAHASINE/journal/pkg/response"
	"github.com/gin-gonic/gin"
)

// NotificationHandler handles notification API requests, including the
// websocket stream
type NotificationHandler struct {
	notificationService *service.NotificationService
	hub                 *WSHub
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationService *service.NotificationService, hub *WSHub) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		hub:                 hub,
	}
}

// GetNotifications lists the caller's notifications, newest first
// GET /api/v1/notifications
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	notifications, err := h.notificationService.List(middleware.GetUserID(c))
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, notifications)
}

// MarkRead flags a notification as read
// POST /api/v1/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid notification id")
		return
	}

	if err := h.notificationService.MarkRead(id, middleware.GetUserID(c)); err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, gin.H{"read": true})
}

// MarkAllRead flags every notification of the caller as read
// POST /api/v1/notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := h.notificationService.MarkAllRead(middleware.GetUserID(c)); err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, gin.H{"read": true})
}

// DeleteNotification removes a notification
// DELETE /api/v1/notifications/:id
func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid notification id")
		return
	}

	if err := h.notificationService.Delete(id, middleware.GetUserID(c)); err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// Stream upgrades the connection and keeps it registered for pushes until
// the client goes away
// GET /api/v1/notifications/stream
func (h *NotificationHandler) Stream(c *gin.Context) {
	userID := middleware.GetUserID(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		middleware.LogError("websocket upgrade failed for user %d: %v", userID, err)
		return
	}

	client := h.hub.add(userID, conn)
	defer func() {
		h.hub.remove(userID, client)
		conn.Close()
	}()

	// Drain client messages until the connection closes
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// RegisterRoutes registers notification routes
func (h *NotificationHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	notifications := rg.Group("/notifications", authMiddleware)
	{
		notifications.GET("", h.GetNotifications)
		notifications.GET("/stream", h.Stream)
		notifications.POST("/read-all", h.MarkAllRead)
		notifications.POST("/:id/read", h.MarkRead)
		notifications.DELETE("/:id", h.DeleteNotification)
	}
}

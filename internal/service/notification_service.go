package service

import (
	"github.com/NAPONYAHASINE/journal/internal/models"
	"github.com/NAPONYAHASINE/journal/internal/repository"
)

// Pusher delivers a notification to a user's live connections, if any.
// Implemented by the websocket hub; delivery is best effort.
type Pusher interface {
	Push(userID uint, notification *models.Notification)
}

// NotificationService handles notification operations
type NotificationService struct {
	notificationRepo *repository.NotificationRepository
	pusher           Pusher
}

// NewNotificationService creates a new NotificationService. pusher may be nil.
func NewNotificationService(notificationRepo *repository.NotificationRepository, pusher Pusher) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		pusher:           pusher,
	}
}

// Notify stores a notification for a user and pushes it to any live
// connection they hold
func (s *NotificationService) Notify(userID uint, message string) error {
	n := &models.Notification{UserID: userID, Message: message}
	if err := s.notificationRepo.Create(n); err != nil {
		return err
	}
	if s.pusher != nil {
		s.pusher.Push(userID, n)
	}
	return nil
}

// NotifyOnce stores a notification unless the user already received the same
// message
func (s *NotificationService) NotifyOnce(userID uint, message string) error {
	exists, err := s.notificationRepo.ExistsMessage(userID, message)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s.Notify(userID, message)
}

// List retrieves a user's notifications, newest first
func (s *NotificationService) List(userID uint) ([]models.Notification, error) {
	return s.notificationRepo.ListByUser(userID)
}

// MarkRead flags a notification as read
func (s *NotificationService) MarkRead(id, userID uint) error {
	return s.notificationRepo.MarkRead(id, userID)
}

// MarkAllRead flags every notification of a user as read
func (s *NotificationService) MarkAllRead(userID uint) error {
	return s.notificationRepo.MarkAllRead(userID)
}

// Delete removes a notification
func (s *NotificationService) Delete(id, userID uint) error {
	return s.notificationRepo.Delete(id, userID)
}

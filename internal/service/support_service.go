package service

import (
	"errors"

	"github.com/NAPONYAHASINE/journal/internal/models"
	"github.com/NAPONYAHASINE/journal/internal/repository"
)

var ErrAssistanceAccess = errors.New("assistance thread not found or not owned by user")

// SupportService handles assistance threads and admin announcements
type SupportService struct {
	assistanceRepo *repository.AssistanceRepository
	infoPostRepo   *repository.InfoPostRepository
	notifications  *NotificationService
}

// NewSupportService creates a new SupportService
func NewSupportService(assistanceRepo *repository.AssistanceRepository, infoPostRepo *repository.InfoPostRepository, notifications *NotificationService) *SupportService {
	return &SupportService{
		assistanceRepo: assistanceRepo,
		infoPostRepo:   infoPostRepo,
		notifications:  notifications,
	}
}

// OpenThreadRequest opens an assistance thread
type OpenThreadRequest struct {
	Subject string `json:"subject" binding:"required,min=1,max=100"`
	Message string `json:"message" binding:"required,min=1,max=50000"`
}

// ReplyRequest appends a reply to an assistance thread
type ReplyRequest struct {
	Message string `json:"message" binding:"required,min=1,max=50000"`
}

// PublishPostRequest represents an admin announcement
type PublishPostRequest struct {
	Title   string `json:"title" binding:"required,min=1,max=100"`
	Content string `json:"content" binding:"required,max=50000"`
	Media   string `json:"media" binding:"omitempty,max=200"`
}

// OpenThread opens an assistance thread for the user
func (s *SupportService) OpenThread(userID uint, req *OpenThreadRequest) (*models.AssistanceMessage, error) {
	message := &models.AssistanceMessage{
		Subject: req.Subject,
		Message: req.Message,
		UserID:  userID,
	}
	if err := s.assistanceRepo.Create(message); err != nil {
		return nil, err
	}
	return message, nil
}

// ListThreads retrieves the caller's threads, or every thread for admins
func (s *SupportService) ListThreads(userID uint, isAdmin bool) ([]models.AssistanceMessage, error) {
	if isAdmin {
		return s.assistanceRepo.ListAll()
	}
	return s.assistanceRepo.ListByUser(userID)
}

// GetThread retrieves a thread visible to the caller
func (s *SupportService) GetThread(id, userID uint, isAdmin bool) (*models.AssistanceMessage, error) {
	thread, err := s.assistanceRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrAssistanceNotFound) {
			return nil, ErrAssistanceAccess
		}
		return nil, err
	}
	if !isAdmin && thread.UserID != userID {
		return nil, ErrAssistanceAccess
	}
	return thread, nil
}

// Reply appends a reply to a thread. An admin reply notifies the thread's
// owner.
func (s *SupportService) Reply(threadID, userID uint, isAdmin bool, req *ReplyRequest) (*models.AssistanceReply, error) {
	thread, err := s.GetThread(threadID, userID, isAdmin)
	if err != nil {
		return nil, err
	}

	sender := models.SenderUser
	if isAdmin {
		sender = models.SenderAdmin
	}

	reply := &models.AssistanceReply{
		ReplyMessage: req.Message,
		AssistanceID: thread.ID,
		Sender:       sender,
	}
	if err := s.assistanceRepo.CreateReply(reply); err != nil {
		return nil, err
	}

	if isAdmin {
		_ = s.notifications.Notify(thread.UserID,
			"Support replied to your request: "+thread.Subject)
	}

	return reply, nil
}

// PublishPost publishes an admin announcement
func (s *SupportService) PublishPost(req *PublishPostRequest) (*models.InfoPost, error) {
	post := &models.InfoPost{
		Title:   req.Title,
		Content: req.Content,
		Media:   req.Media,
	}
	if err := s.infoPostRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// ListPosts retrieves all announcements, newest first
func (s *SupportService) ListPosts() ([]models.InfoPost, error) {
	return s.infoPostRepo.List()
}

// DeletePost removes an announcement
func (s *SupportService) DeletePost(id uint) error {
	return s.infoPostRepo.Delete(id)
}

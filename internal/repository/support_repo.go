package repository

import (
	"errors"

	"github.com/NAPONYAHASINE/journal/internal/models"
	"gorm.io/gorm"
)

// ErrAssistanceNotFound is returned when an assistance thread lookup matches nothing
var ErrAssistanceNotFound = errors.New("assistance message not found")

// AssistanceRepository handles support thread data access
type AssistanceRepository struct {
	db *gorm.DB
}

// NewAssistanceRepository creates a new AssistanceRepository
func NewAssistanceRepository(db *gorm.DB) *AssistanceRepository {
	return &AssistanceRepository{db: db}
}

// Create opens a new assistance thread
func (r *AssistanceRepository) Create(message *models.AssistanceMessage) error {
	return r.db.Create(message).Error
}

// GetByID retrieves an assistance thread with its replies
func (r *AssistanceRepository) GetByID(id uint) (*models.AssistanceMessage, error) {
	var message models.AssistanceMessage
	err := r.db.Preload("Replies", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	}).First(&message, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssistanceNotFound
		}
		return nil, err
	}
	return &message, nil
}

// ListByUser retrieves a user's assistance threads, newest first
func (r *AssistanceRepository) ListByUser(userID uint) ([]models.AssistanceMessage, error) {
	var messages []models.AssistanceMessage
	result := r.db.Preload("Replies").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&messages)
	return messages, result.Error
}

// ListAll retrieves every assistance thread, newest first. Admin view.
func (r *AssistanceRepository) ListAll() ([]models.AssistanceMessage, error) {
	var messages []models.AssistanceMessage
	result := r.db.Preload("User").Preload("Replies").
		Order("created_at DESC").
		Find(&messages)
	return messages, result.Error
}

// CreateReply appends a reply to an assistance thread
func (r *AssistanceRepository) CreateReply(reply *models.AssistanceReply) error {
	return r.db.Create(reply).Error
}

// InfoPostRepository handles announcement data access
type InfoPostRepository struct {
	db *gorm.DB
}

// NewInfoPostRepository creates a new InfoPostRepository
func NewInfoPostRepository(db *gorm.DB) *InfoPostRepository {
	return &InfoPostRepository{db: db}
}

// Create publishes a new announcement
func (r *InfoPostRepository) Create(post *models.InfoPost) error {
	return r.db.Create(post).Error
}

// List retrieves all announcements, newest first
func (r *InfoPostRepository) List() ([]models.InfoPost, error) {
	var posts []models.InfoPost
	result := r.db.Order("created_at DESC").Find(&posts)
	return posts, result.Error
}

// Delete removes an announcement by ID
func (r *InfoPostRepository) Delete(id uint) error {
	return r.db.Delete(&models.InfoPost{}, id).Error
}

package repository

import (
	"errors"

	"github.com/NAPONYAHASINE/journal/internal/models"
	"gorm.io/gorm"
)

// Sentinel errors for progress data access
var (
	ErrGoalNotFound     = errors.New("goal not found")
	ErrStrategyNotFound = errors.New("strategy not found")
)

// GoalRepository handles goal data access
type GoalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new GoalRepository
func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

// Create creates a new goal
func (r *GoalRepository) Create(goal *models.Goal) error {
	return r.db.Create(goal).Error
}

// GetForUser retrieves a goal by ID, scoped to its owner
func (r *GoalRepository) GetForUser(id, userID uint) (*models.Goal, error) {
	var goal models.Goal
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}
	return &goal, nil
}

// ListByUser retrieves all goals of a user
func (r *GoalRepository) ListByUser(userID uint) ([]models.Goal, error) {
	var goals []models.Goal
	result := r.db.Where("user_id = ?", userID).Find(&goals)
	return goals, result.Error
}

// Update saves goal changes
func (r *GoalRepository) Update(goal *models.Goal) error {
	return r.db.Save(goal).Error
}

// Delete removes a goal
func (r *GoalRepository) Delete(goal *models.Goal) error {
	return r.db.Delete(goal).Error
}

// NotificationRepository handles notification data access
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create creates a new notification
func (r *NotificationRepository) Create(n *models.Notification) error {
	return r.db.Create(n).Error
}

// ListByUser retrieves a user's notifications, newest first
func (r *NotificationRepository) ListByUser(userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	result := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications)
	return notifications, result.Error
}

// ExistsMessage checks whether the user was ever sent the given message.
// Used to avoid duplicate goal alerts.
func (r *NotificationRepository) ExistsMessage(userID uint, message string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND message = ?", userID, message).
		Count(&count).Error
	return count > 0, err
}

// MarkRead flags a user's notification as read
func (r *NotificationRepository) MarkRead(id, userID uint) error {
	return r.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true).Error
}

// Delete removes a user's notification
func (r *NotificationRepository) Delete(id, userID uint) error {
	return r.db.Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Notification{}).Error
}

// MarkAllRead flags every notification of a user as read
func (r *NotificationRepository) MarkAllRead(userID uint) error {
	return r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}

// ReflectionRepository handles reflection entry data access
type ReflectionRepository struct {
	db *gorm.DB
}

// NewReflectionRepository creates a new ReflectionRepository
func NewReflectionRepository(db *gorm.DB) *ReflectionRepository {
	return &ReflectionRepository{db: db}
}

// Create creates a new reflection entry
func (r *ReflectionRepository) Create(entry *models.ReflectionEntry) error {
	return r.db.Create(entry).Error
}

// ListByUser retrieves a user's reflection entries, newest first
func (r *ReflectionRepository) ListByUser(userID uint) ([]models.ReflectionEntry, error) {
	var entries []models.ReflectionEntry
	result := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries)
	return entries, result.Error
}

// StrategyRepository handles strategy data access
type StrategyRepository struct {
	db *gorm.DB
}

// NewStrategyRepository creates a new StrategyRepository
func NewStrategyRepository(db *gorm.DB) *StrategyRepository {
	return &StrategyRepository{db: db}
}

// Create creates a new strategy
func (r *StrategyRepository) Create(strategy *models.Strategy) error {
	return r.db.Create(strategy).Error
}

// GetForUser retrieves a strategy by ID, scoped to its owner
func (r *StrategyRepository) GetForUser(id, userID uint) (*models.Strategy, error) {
	var strategy models.Strategy
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&strategy).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStrategyNotFound
		}
		return nil, err
	}
	return &strategy, nil
}

// ListByUser retrieves all strategies of a user, newest first
func (r *StrategyRepository) ListByUser(userID uint) ([]models.Strategy, error) {
	var strategies []models.Strategy
	result := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&strategies)
	return strategies, result.Error
}

// Update saves strategy changes
func (r *StrategyRepository) Update(strategy *models.Strategy) error {
	return r.db.Save(strategy).Error
}

// Delete removes a strategy
func (r *StrategyRepository) Delete(strategy *models.Strategy) error {
	return r.db.Delete(strategy).Error
}

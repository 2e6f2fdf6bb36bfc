package repository

import (
	"errors"

	"github.com/NAPONYAHASINE/journal/internal/models"
	"gorm.io/gorm"
)

// ErrGroupNotFound is returned when a group lookup matches nothing
var ErrGroupNotFound = errors.New("group not found")

// GroupRepository handles group, membership and message data access
type GroupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new GroupRepository
func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

// Create creates a group and enrols the owner as its first member
func (r *GroupRepository) Create(group *models.Group) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			return err
		}
		member := &models.GroupMember{GroupID: group.ID, UserID: group.OwnerID}
		return tx.Create(member).Error
	})
}

// GetByID retrieves a group by ID
func (r *GroupRepository) GetByID(id uint) (*models.Group, error) {
	var group models.Group
	if err := r.db.First(&group, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}
	return &group, nil
}

// ListForUser retrieves the groups a user is a member of
func (r *GroupRepository) ListForUser(userID uint) ([]models.Group, error) {
	var groups []models.Group
	result := r.db.Joins("JOIN group_members ON group_members.group_id = groups.id").
		Where("group_members.user_id = ?", userID).
		Find(&groups)
	return groups, result.Error
}

// IsMember checks whether a user belongs to a group
func (r *GroupRepository) IsMember(groupID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.GroupMember{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&count).Error
	return count > 0, err
}

// AddMember enrols a user into a group
func (r *GroupRepository) AddMember(member *models.GroupMember) error {
	return r.db.Create(member).Error
}

// RemoveMember removes a user from a group
func (r *GroupRepository) RemoveMember(groupID, userID uint) error {
	return r.db.Where("group_id = ? AND user_id = ?", groupID, userID).
		Delete(&models.GroupMember{}).Error
}

// ListMembers retrieves a group's members with their users preloaded
func (r *GroupRepository) ListMembers(groupID uint) ([]models.GroupMember, error) {
	var members []models.GroupMember
	result := r.db.Preload("User").Where("group_id = ?", groupID).Find(&members)
	return members, result.Error
}

// CreateMessage posts a message in a group
func (r *GroupRepository) CreateMessage(message *models.GroupMessage) error {
	return r.db.Create(message).Error
}

// ListMessages retrieves a group's messages in chronological order
func (r *GroupRepository) ListMessages(groupID uint) ([]models.GroupMessage, error) {
	var messages []models.GroupMessage
	result := r.db.Where("group_id = ?", groupID).
		Order("created_at ASC").
		Find(&messages)
	return messages, result.Error
}

package service

import (
	"errors"

	"github.com/NAPONYAHASINE/journal/internal/models"
	"github.com/NAPONYAHASINE/journal/internal/repository"
)

var (
	ErrGroupAccess    = errors.New("group not found or user is not a member")
	ErrAlreadyMember  = errors.New("user is already a member of the group")
	ErrOwnerMustStay  = errors.New("the group owner cannot leave the group")
	ErrEmptyMessage   = errors.New("a message needs text or media")
	ErrUnknownAccount = errors.New("no account with that email")
)

// CommunityService handles groups, memberships and group messages
type CommunityService struct {
	groupRepo *repository.GroupRepository
	userRepo  *repository.UserRepository
}

// NewCommunityService creates a new CommunityService
func NewCommunityService(groupRepo *repository.GroupRepository, userRepo *repository.UserRepository) *CommunityService {
	return &CommunityService{
		groupRepo: groupRepo,
		userRepo:  userRepo,
	}
}

// CreateGroupRequest represents the group creation request
type CreateGroupRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"omitempty,max=1000"`
}

// InviteRequest invites a user into a group by email
type InviteRequest struct {
	Email string `json:"email" binding:"required,max=100"`
}

// PostMessageRequest represents a group message. Either text or a media
// path must be present.
type PostMessageRequest struct {
	Content string `json:"content" binding:"omitempty,max=50000"`
	Media   string `json:"media" binding:"omitempty,max=200"`
}

// CreateGroup creates a group owned by the user, who joins it immediately
func (s *CommunityService) CreateGroup(userID uint, req *CreateGroupRequest) (*models.Group, error) {
	group := &models.Group{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     userID,
	}
	if err := s.groupRepo.Create(group); err != nil {
		return nil, err
	}
	return group, nil
}

// ListGroups retrieves the groups the user belongs to
func (s *CommunityService) ListGroups(userID uint) ([]models.Group, error) {
	return s.groupRepo.ListForUser(userID)
}

// GetGroup retrieves a group the user belongs to
func (s *CommunityService) GetGroup(groupID, userID uint) (*models.Group, error) {
	if err := s.requireMember(groupID, userID); err != nil {
		return nil, err
	}
	return s.groupRepo.GetByID(groupID)
}

// Invite adds a user, looked up by email, to a group the caller belongs to
func (s *CommunityService) Invite(groupID, userID uint, req *InviteRequest) error {
	if err := s.requireMember(groupID, userID); err != nil {
		return err
	}

	invitee, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUnknownAccount
		}
		return err
	}

	already, err := s.groupRepo.IsMember(groupID, invitee.ID)
	if err != nil {
		return err
	}
	if already {
		return ErrAlreadyMember
	}

	return s.groupRepo.AddMember(&models.GroupMember{GroupID: groupID, UserID: invitee.ID})
}

// Leave removes the user from a group. The owner cannot leave.
func (s *CommunityService) Leave(groupID, userID uint) error {
	group, err := s.groupRepo.GetByID(groupID)
	if err != nil {
		if errors.Is(err, repository.ErrGroupNotFound) {
			return ErrGroupAccess
		}
		return err
	}
	if group.OwnerID == userID {
		return ErrOwnerMustStay
	}
	if err := s.requireMember(groupID, userID); err != nil {
		return err
	}
	return s.groupRepo.RemoveMember(groupID, userID)
}

// ListMembers retrieves the members of a group the user belongs to
func (s *CommunityService) ListMembers(groupID, userID uint) ([]models.GroupMember, error) {
	if err := s.requireMember(groupID, userID); err != nil {
		return nil, err
	}
	return s.groupRepo.ListMembers(groupID)
}

// PostMessage posts a message in a group the user belongs to
func (s *CommunityService) PostMessage(groupID, userID uint, req *PostMessageRequest) (*models.GroupMessage, error) {
	if err := s.requireMember(groupID, userID); err != nil {
		return nil, err
	}
	if req.Content == "" && req.Media == "" {
		return nil, ErrEmptyMessage
	}

	message := &models.GroupMessage{
		Content: req.Content,
		Media:   req.Media,
		GroupID: groupID,
		UserID:  userID,
	}
	if err := s.groupRepo.CreateMessage(message); err != nil {
		return nil, err
	}
	return message, nil
}

// ListMessages retrieves a group's messages in chronological order
func (s *CommunityService) ListMessages(groupID, userID uint) ([]models.GroupMessage, error) {
	if err := s.requireMember(groupID, userID); err != nil {
		return nil, err
	}
	return s.groupRepo.ListMessages(groupID)
}

func (s *CommunityService) requireMember(groupID, userID uint) error {
	member, err := s.groupRepo.IsMember(groupID, userID)
	if err != nil {
		return err
	}
	if !member {
		return ErrGroupAccess
	}
	return nil
}

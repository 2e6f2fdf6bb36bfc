package service

import (
	"errors"
	"strings"

	"github.com/NAPONYAHASINE/journal/internal/models"
	"github.com/NAPONYAHASINE/journal/internal/repository"
	"github.com/NAPONYAHASINE/journal/pkg/validate"
)

var (
	ErrAnalysisAccess = errors.New("analysis not found or not owned by user")
	ErrShareAccess    = errors.New("shared analysis not found or not visible to user")
	ErrShareRecipient = errors.New("recipient must be \"all\" or a valid email")
)

// AnalysisService handles analyses and their sharing. A share is visible to
// its author, to the addressed user, or to everyone when shared with "all".
type AnalysisService struct {
	analysisRepo  *repository.AnalysisRepository
	journalRepo   *repository.JournalRepository
	userRepo      *repository.UserRepository
	notifications *NotificationService
}

// NewAnalysisService creates a new AnalysisService
func NewAnalysisService(analysisRepo *repository.AnalysisRepository, journalRepo *repository.JournalRepository, userRepo *repository.UserRepository, notifications *NotificationService) *AnalysisService {
	return &AnalysisService{
		analysisRepo:  analysisRepo,
		journalRepo:   journalRepo,
		userRepo:      userRepo,
		notifications: notifications,
	}
}

// CreateAnalysisRequest represents the analysis creation request
type CreateAnalysisRequest struct {
	Title   string `json:"title" binding:"required,min=1,max=100"`
	Content string `json:"content" binding:"required,max=50000"`
	Image   string `json:"image" binding:"omitempty,max=200"`
}

// ShareRequest addresses an analysis share: "all" or one user's email
type ShareRequest struct {
	SharedWith string `json:"shared_with" binding:"required,max=100"`
}

// CommentRequest represents a comment on a shared analysis
type CommentRequest struct {
	Comment string `json:"comment" binding:"required,min=1,max=1000"`
}

// Create attaches an analysis to a journal owned by the user
func (s *AnalysisService) Create(journalID, userID uint, req *CreateAnalysisRequest) (*models.Analysis, error) {
	if _, err := s.journalRepo.GetForUser(journalID, userID); err != nil {
		if errors.Is(err, repository.ErrJournalNotFound) {
			return nil, ErrJournalAccess
		}
		return nil, err
	}

	analysis := &models.Analysis{
		Title:     req.Title,
		Content:   req.Content,
		Image:     req.Image,
		JournalID: journalID,
	}
	if err := s.analysisRepo.Create(analysis); err != nil {
		return nil, err
	}
	return analysis, nil
}

// List retrieves a page of a journal's analyses, newest first
func (s *AnalysisService) List(journalID, userID uint, page, pageSize int) ([]models.Analysis, int64, error) {
	if _, err := s.journalRepo.GetForUser(journalID, userID); err != nil {
		if errors.Is(err, repository.ErrJournalNotFound) {
			return nil, 0, ErrJournalAccess
		}
		return nil, 0, err
	}
	return s.analysisRepo.ListByJournalPaginated(journalID, page, pageSize)
}

// Share publishes an analysis to the community or to one user by email. A
// directed share notifies the recipient if they have an account.
func (s *AnalysisService) Share(analysisID, userID uint, req *ShareRequest) (*models.AnalysisShare, error) {
	analysis, err := s.ownedAnalysis(analysisID, userID)
	if err != nil {
		return nil, err
	}

	sharedWith := strings.ToLower(strings.TrimSpace(req.SharedWith))
	if sharedWith != models.SharedWithAll && !validate.Email(sharedWith) {
		return nil, ErrShareRecipient
	}

	share := &models.AnalysisShare{
		AnalysisID:     analysis.ID,
		SharedByUserID: userID,
		SharedWith:     sharedWith,
	}
	if err := s.analysisRepo.CreateShare(share); err != nil {
		return nil, err
	}

	if sharedWith != models.SharedWithAll {
		if recipient, err := s.userRepo.GetByEmail(sharedWith); err == nil {
			_ = s.notifications.Notify(recipient.ID,
				"An analysis was shared with you: "+analysis.Title)
		}
	}

	return share, nil
}

// Community retrieves every analysis shared with everyone
func (s *AnalysisService) Community() ([]models.AnalysisShare, error) {
	return s.analysisRepo.ListCommunityShares()
}

// SharedWithMe retrieves the shares addressed to the user's email
func (s *AnalysisService) SharedWithMe(userID uint) ([]models.AnalysisShare, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	return s.analysisRepo.ListSharesForEmail(user.Email)
}

// Comment posts a comment on a share the user can see
func (s *AnalysisService) Comment(shareID, userID uint, req *CommentRequest) (*models.AnalysisShareComment, error) {
	share, err := s.visibleShare(shareID, userID)
	if err != nil {
		return nil, err
	}

	comment := &models.AnalysisShareComment{
		ShareID: share.ID,
		UserID:  userID,
		Comment: req.Comment,
	}
	if err := s.analysisRepo.CreateShareComment(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// GetShare retrieves a share, with its analysis and comments, that the user
// is allowed to see
func (s *AnalysisService) GetShare(shareID, userID uint) (*models.AnalysisShare, error) {
	return s.visibleShare(shareID, userID)
}

func (s *AnalysisService) ownedAnalysis(analysisID, userID uint) (*models.Analysis, error) {
	analysis, err := s.analysisRepo.GetByID(analysisID)
	if err != nil {
		if errors.Is(err, repository.ErrAnalysisNotFound) {
			return nil, ErrAnalysisAccess
		}
		return nil, err
	}
	if _, err := s.journalRepo.GetForUser(analysis.JournalID, userID); err != nil {
		if errors.Is(err, repository.ErrJournalNotFound) {
			return nil, ErrAnalysisAccess
		}
		return nil, err
	}
	return analysis, nil
}

func (s *AnalysisService) visibleShare(shareID, userID uint) (*models.AnalysisShare, error) {
	share, err := s.analysisRepo.GetShareByID(shareID)
	if err != nil {
		if errors.Is(err, repository.ErrShareNotFound) {
			return nil, ErrShareAccess
		}
		return nil, err
	}

	if share.SharedWith == models.SharedWithAll || share.SharedByUserID == userID {
		return share, nil
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if share.SharedWith != user.Email {
		return nil, ErrShareAccess
	}
	return share, nil
}

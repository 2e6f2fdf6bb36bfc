package service

import (
	"errors"

	"github.com/NAPONYAHASINE/journal/internal/models"
	"github.com/NAPONYAHASINE/journal/internal/repository"
)

var ErrReflectionEmpty = errors.New("a reflection needs at least one field")

// ReflectionService handles journaling reflections
type ReflectionService struct {
	reflectionRepo *repository.ReflectionRepository
	tradeRepo      *repository.TradeRepository
	journalRepo    *repository.JournalRepository
}

// NewReflectionService creates a new ReflectionService
func NewReflectionService(reflectionRepo *repository.ReflectionRepository, tradeRepo *repository.TradeRepository, journalRepo *repository.JournalRepository) *ReflectionService {
	return &ReflectionService{
		reflectionRepo: reflectionRepo,
		tradeRepo:      tradeRepo,
		journalRepo:    journalRepo,
	}
}

// CreateReflectionRequest represents a reflection entry, optionally attached
// to one of the user's trades
type CreateReflectionRequest struct {
	Emotions       string `json:"emotions" binding:"omitempty,max=50000"`
	Notes          string `json:"notes" binding:"omitempty,max=50000"`
	LessonsLearned string `json:"lessons_learned" binding:"omitempty,max=50000"`
	TradeID        *uint  `json:"trade_id"`
}

// Create stores a reflection entry. A referenced trade must belong to the
// user.
func (s *ReflectionService) Create(userID uint, req *CreateReflectionRequest) (*models.ReflectionEntry, error) {
	if req.Emotions == "" && req.Notes == "" && req.LessonsLearned == "" {
		return nil, ErrReflectionEmpty
	}

	if req.TradeID != nil {
		trade, err := s.tradeRepo.GetByID(*req.TradeID)
		if err != nil {
			if errors.Is(err, repository.ErrTradeNotFound) {
				return nil, ErrTradeAccess
			}
			return nil, err
		}
		if _, err := s.journalRepo.GetForUser(trade.JournalID, userID); err != nil {
			if errors.Is(err, repository.ErrJournalNotFound) {
				return nil, ErrTradeAccess
			}
			return nil, err
		}
	}

	entry := &models.ReflectionEntry{
		Emotions:       req.Emotions,
		Notes:          req.Notes,
		LessonsLearned: req.LessonsLearned,
		TradeID:        req.TradeID,
		UserID:         userID,
	}
	if err := s.reflectionRepo.Create(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// List retrieves a user's reflection entries, newest first
func (s *ReflectionService) List(userID uint) ([]models.ReflectionEntry, error) {
	return s.reflectionRepo.ListByUser(userID)
}

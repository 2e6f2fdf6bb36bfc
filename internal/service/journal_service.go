package service

import (
	"errors"

	"github.com/NAPONYAHASINE/journal/internal/models"
	"github.com/NAPONYAHASINE/journal/internal/repository"
)

var (
	ErrJournalAccess   = errors.New("journal not found or not owned by user")
	ErrInvalidCapital  = errors.New("initial capital must be positive")
	ErrInvalidLeverage = errors.New("leverage must be positive")
)

// JournalService handles journal operations
type JournalService struct {
	journalRepo *repository.JournalRepository
}

// NewJournalService creates a new JournalService
func NewJournalService(journalRepo *repository.JournalRepository) *JournalService {
	return &JournalService{journalRepo: journalRepo}
}

// CreateJournalRequest represents the journal creation request
type CreateJournalRequest struct {
	Name           string  `json:"name" binding:"required,min=1,max=100"`
	InitialCapital float64 `json:"initial_capital" binding:"required"`
	Currency       string  `json:"currency" binding:"required,min=3,max=10"`
	Leverage       float64 `json:"leverage" binding:"required"`
}

// UpdateJournalRequest represents journal update fields, all optional
type UpdateJournalRequest struct {
	Name           *string  `json:"name" binding:"omitempty,min=1,max=100"`
	InitialCapital *float64 `json:"initial_capital"`
	Currency       *string  `json:"currency" binding:"omitempty,min=3,max=10"`
	Leverage       *float64 `json:"leverage"`
}

// Create creates a journal for a user
func (s *JournalService) Create(userID uint, req *CreateJournalRequest) (*models.Journal, error) {
	if req.InitialCapital <= 0 {
		return nil, ErrInvalidCapital
	}
	if req.Leverage <= 0 {
		return nil, ErrInvalidLeverage
	}

	journal := &models.Journal{
		Name:           req.Name,
		InitialCapital: req.InitialCapital,
		Currency:       req.Currency,
		Leverage:       req.Leverage,
		UserID:         userID,
	}
	if err := s.journalRepo.Create(journal); err != nil {
		return nil, err
	}
	return journal, nil
}

// Get retrieves a journal owned by the user
func (s *JournalService) Get(id, userID uint) (*models.Journal, error) {
	journal, err := s.journalRepo.GetForUser(id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrJournalNotFound) {
			return nil, ErrJournalAccess
		}
		return nil, err
	}
	return journal, nil
}

// List retrieves all journals of a user
func (s *JournalService) List(userID uint) ([]models.Journal, error) {
	return s.journalRepo.ListByUser(userID)
}

// Update applies partial changes to a journal owned by the user
func (s *JournalService) Update(id, userID uint, req *UpdateJournalRequest) (*models.Journal, error) {
	journal, err := s.Get(id, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		journal.Name = *req.Name
	}
	if req.InitialCapital != nil {
		if *req.InitialCapital <= 0 {
			return nil, ErrInvalidCapital
		}
		journal.InitialCapital = *req.InitialCapital
	}
	if req.Currency != nil {
		journal.Currency = *req.Currency
	}
	if req.Leverage != nil {
		if *req.Leverage <= 0 {
			return nil, ErrInvalidLeverage
		}
		journal.Leverage = *req.Leverage
	}

	if err := s.journalRepo.Update(journal); err != nil {
		return nil, err
	}
	return journal, nil
}

// Delete removes a journal owned by the user
func (s *JournalService) Delete(id, userID uint) error {
	journal, err := s.Get(id, userID)
	if err != nil {
		return err
	}
	return s.journalRepo.Delete(journal)
}

// LinkPlatformRequest represents the broker account link request
type LinkPlatformRequest struct {
	Platform   string `json:"platform" binding:"required,min=1,max=100"`
	Identifier string `json:"identifier" binding:"required,min=1,max=100"`
	Details    string `json:"details" binding:"omitempty,max=1000"`
}

// LinkPlatform attaches an external platform account to a journal
func (s *JournalService) LinkPlatform(journalID, userID uint, req *LinkPlatformRequest) (*models.PlatformLink, error) {
	if _, err := s.Get(journalID, userID); err != nil {
		return nil, err
	}

	link := &models.PlatformLink{
		Platform:   req.Platform,
		Identifier: req.Identifier,
		Details:    req.Details,
		JournalID:  journalID,
	}
	if err := s.journalRepo.CreatePlatformLink(link); err != nil {
		return nil, err
	}
	return link, nil
}

// ListPlatformLinks retrieves the platform links of a journal owned by the user
func (s *JournalService) ListPlatformLinks(journalID, userID uint) ([]models.PlatformLink, error) {
	if _, err := s.Get(journalID, userID); err != nil {
		return nil, err
	}
	return s.journalRepo.ListPlatformLinks(journalID)
}

package repository

import (
	"errors"

	"github.com/NAPONYAHASINE/journal/internal/models"
	"gorm.io/gorm"
)

// ErrJournalNotFound is returned when a journal lookup matches nothing, or
// when the journal does not belong to the requesting user
var ErrJournalNotFound = errors.New("journal not found")

// JournalRepository handles journal data access
type JournalRepository struct {
	db *gorm.DB
}

// NewJournalRepository creates a new JournalRepository
func NewJournalRepository(db *gorm.DB) *JournalRepository {
	return &JournalRepository{db: db}
}

// Create creates a new journal
func (r *JournalRepository) Create(journal *models.Journal) error {
	return r.db.Create(journal).Error
}

// GetForUser retrieves a journal by ID, scoped to its owner. Ownership
// violations are indistinguishable from absence.
func (r *JournalRepository) GetForUser(id, userID uint) (*models.Journal, error) {
	var journal models.Journal
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&journal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJournalNotFound
		}
		return nil, err
	}
	return &journal, nil
}

// ListByUser retrieves all journals owned by a user
func (r *JournalRepository) ListByUser(userID uint) ([]models.Journal, error) {
	var journals []models.Journal
	result := r.db.Where("user_id = ?", userID).Order("id ASC").Find(&journals)
	return journals, result.Error
}

// Update persists changes to a journal
func (r *JournalRepository) Update(journal *models.Journal) error {
	return r.db.Save(journal).Error
}

// Delete removes a journal
func (r *JournalRepository) Delete(journal *models.Journal) error {
	return r.db.Delete(journal).Error
}

// CreatePlatformLink links a journal to an external platform account
func (r *JournalRepository) CreatePlatformLink(link *models.PlatformLink) error {
	return r.db.Create(link).Error
}

// ListPlatformLinks retrieves a journal's platform links
func (r *JournalRepository) ListPlatformLinks(journalID uint) ([]models.PlatformLink, error) {
	var links []models.PlatformLink
	result := r.db.Where("journal_id = ?", journalID).Find(&links)
	return links, result.Error
}

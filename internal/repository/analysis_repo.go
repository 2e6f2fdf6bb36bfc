package repository

import (
	"errors"

	"github.com/NAPONYAHASINE/journal/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrAnalysisNotFound is returned when an analysis lookup matches nothing
	ErrAnalysisNotFound = errors.New("analysis not found")
	// ErrShareNotFound is returned when a share lookup matches nothing
	ErrShareNotFound = errors.New("share not found")
)

// AnalysisRepository handles analysis and analysis-share data access
type AnalysisRepository struct {
	db *gorm.DB
}

// NewAnalysisRepository creates a new AnalysisRepository
func NewAnalysisRepository(db *gorm.DB) *AnalysisRepository {
	return &AnalysisRepository{db: db}
}

// Create creates a new analysis
func (r *AnalysisRepository) Create(analysis *models.Analysis) error {
	return r.db.Create(analysis).Error
}

// GetByID retrieves an analysis by ID
func (r *AnalysisRepository) GetByID(id uint) (*models.Analysis, error) {
	var analysis models.Analysis
	if err := r.db.First(&analysis, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnalysisNotFound
		}
		return nil, err
	}
	return &analysis, nil
}

// ListByJournalPaginated retrieves a journal's analyses with pagination
func (r *AnalysisRepository) ListByJournalPaginated(journalID uint, page, pageSize int) ([]models.Analysis, int64, error) {
	var analyses []models.Analysis
	var total int64

	if err := r.db.Model(&models.Analysis{}).Where("journal_id = ?", journalID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	result := r.db.Where("journal_id = ?", journalID).
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&analyses)

	return analyses, total, result.Error
}

// CreateShare publishes an analysis to an audience
func (r *AnalysisRepository) CreateShare(share *models.AnalysisShare) error {
	return r.db.Create(share).Error
}

// GetShareByID retrieves a share with its analysis and comments preloaded
func (r *AnalysisRepository) GetShareByID(id uint) (*models.AnalysisShare, error) {
	var share models.AnalysisShare
	err := r.db.Preload("Analysis").Preload("Comments").First(&share, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShareNotFound
		}
		return nil, err
	}
	return &share, nil
}

// ListCommunityShares retrieves shares published to everyone
func (r *AnalysisRepository) ListCommunityShares() ([]models.AnalysisShare, error) {
	var shares []models.AnalysisShare
	result := r.db.Preload("Analysis").Preload("Comments").
		Where("shared_with = ?", models.SharedWithAll).
		Find(&shares)
	return shares, result.Error
}

// ListSharesForEmail retrieves shares addressed to one specific user
func (r *AnalysisRepository) ListSharesForEmail(email string) ([]models.AnalysisShare, error) {
	var shares []models.AnalysisShare
	result := r.db.Preload("Analysis").
		Where("shared_with <> ? AND shared_with = ?", models.SharedWithAll, email).
		Find(&shares)
	return shares, result.Error
}

// CreateShareComment adds a comment to a share
func (r *AnalysisRepository) CreateShareComment(comment *models.AnalysisShareComment) error {
	return r.db.Create(comment).Error
}

package repository

import (
	"errors"

	"github.com/NAPONYAHASINE/journal/internal/models"
	"gorm.io/gorm"
)

// ErrTradeNotFound is returned when a trade lookup matches nothing
var ErrTradeNotFound = errors.New("trade not found")

// TradeRepository handles trade data access
type TradeRepository struct {
	db *gorm.DB
}

// NewTradeRepository creates a new TradeRepository
func NewTradeRepository(db *gorm.DB) *TradeRepository {
	return &TradeRepository{db: db}
}

// Create creates a new trade
func (r *TradeRepository) Create(trade *models.Trade) error {
	return r.db.Create(trade).Error
}

// GetByID retrieves a trade by ID
func (r *TradeRepository) GetByID(id uint) (*models.Trade, error) {
	var trade models.Trade
	if err := r.db.First(&trade, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTradeNotFound
		}
		return nil, err
	}
	return &trade, nil
}

// Update persists changes to a trade
func (r *TradeRepository) Update(trade *models.Trade) error {
	return r.db.Save(trade).Error
}

// Delete removes a trade
func (r *TradeRepository) Delete(trade *models.Trade) error {
	return r.db.Delete(trade).Error
}

// ListByJournal retrieves a journal's trades in stable recording order; the
// position in this ordering is the trade's per-journal sequence number.
func (r *TradeRepository) ListByJournal(journalID uint) ([]models.Trade, error) {
	var trades []models.Trade
	result := r.db.Where("journal_id = ?", journalID).
		Order("recorded_at ASC, id ASC").
		Find(&trades)
	return trades, result.Error
}

// ListByJournalAndStatus retrieves a journal's trades filtered by lifecycle
// status, keeping the stable recording order.
func (r *TradeRepository) ListByJournalAndStatus(journalID uint, status models.TradeStatus) ([]models.Trade, error) {
	var trades []models.Trade
	result := r.db.Where("journal_id = ? AND status = ?", journalID, status).
		Order("recorded_at ASC, id ASC").
		Find(&trades)
	return trades, result.Error
}

// ListClosedByJournal retrieves one journal's CLOSED trades
func (r *TradeRepository) ListClosedByJournal(journalID uint) ([]models.Trade, error) {
	var trades []models.Trade
	result := r.db.Where("journal_id = ? AND status = ?", journalID, models.TradeStatusClosed).
		Order("recorded_at ASC, id ASC").
		Find(&trades)
	return trades, result.Error
}

// ListClosedByUser retrieves all CLOSED trades across a user's journals
func (r *TradeRepository) ListClosedByUser(userID uint) ([]models.Trade, error) {
	var trades []models.Trade
	result := r.db.Joins("JOIN journals ON journals.id = trades.journal_id").
		Where("journals.user_id = ? AND trades.status = ?", userID, models.TradeStatusClosed).
		Find(&trades)
	return trades, result.Error
}

// CountByUser counts all trades across a user's journals
func (r *TradeRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Trade{}).
		Joins("JOIN journals ON journals.id = trades.journal_id").
		Where("journals.user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// SumResults sums stored results of a user's closed trades, split by sign.
// Gains and losses are both returned as totals over result > 0 and
// result < 0 rows respectively.
func (r *TradeRepository) SumResults(userID uint) (gains, losses float64, err error) {
	type row struct {
		Sum float64
	}
	var g, l row
	base := func() *gorm.DB {
		return r.db.Model(&models.Trade{}).
			Joins("JOIN journals ON journals.id = trades.journal_id").
			Where("journals.user_id = ? AND trades.status = ?", userID, models.TradeStatusClosed)
	}
	if err = base().Select("COALESCE(SUM(result), 0) as sum").
		Where("result > 0").Scan(&g).Error; err != nil {
		return 0, 0, err
	}
	if err = base().Select("COALESCE(SUM(result), 0) as sum").
		Where("result < 0").Scan(&l).Error; err != nil {
		return 0, 0, err
	}
	return g.Sum, l.Sum, nil
}

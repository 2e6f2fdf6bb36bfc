package repository

import (
	"time"

	"github.com/NAPONYAHASINE/journal/internal/models"
	"gorm.io/gorm"
)

// CalendarRepository handles economic calendar data access
type CalendarRepository struct {
	db *gorm.DB
}

// NewCalendarRepository creates a new CalendarRepository
func NewCalendarRepository(db *gorm.DB) *CalendarRepository {
	return &CalendarRepository{db: db}
}

// CreateIfAbsent inserts an event unless one with the same title and date
// already exists. Returns true when a row was inserted.
func (r *CalendarRepository) CreateIfAbsent(event *models.EconomicEvent) (bool, error) {
	result := r.db.Where("title = ? AND date = ?", event.Title, event.Date).
		FirstOrCreate(event)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ListUpcoming retrieves events from the given time onward, soonest first
func (r *CalendarRepository) ListUpcoming(from time.Time) ([]models.EconomicEvent, error) {
	var events []models.EconomicEvent
	result := r.db.Where("date >= ?", from).
		Order("date ASC").
		Find(&events)
	return events, result.Error
}

// ListAll retrieves every stored event, soonest first
func (r *CalendarRepository) ListAll() ([]models.EconomicEvent, error) {
	var events []models.EconomicEvent
	result := r.db.Order("date ASC").Find(&events)
	return events, result.Error
}

// DeleteBefore removes events older than the given time and returns how many
// rows were deleted
func (r *CalendarRepository) DeleteBefore(cutoff time.Time) (int64, error) {
	result := r.db.Where("date < ?", cutoff).Delete(&models.EconomicEvent{})
	return result.RowsAffected, result.Error
}

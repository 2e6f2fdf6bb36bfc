package models

import "time"

// EconomicEvent is an entry of the economic calendar. Rows are keyed by
// (title, date): the background fetcher only appends events it has not seen,
// it never mutates existing rows.
type EconomicEvent struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Date        time.Time `gorm:"not null;uniqueIndex:idx_events_title_date" json:"date"`
	Title       string    `gorm:"size:100;not null;uniqueIndex:idx_events_title_date" json:"title"`
	Impact      string    `gorm:"size:50;not null" json:"impact"`
	Currency    string    `gorm:"size:10;not null" json:"currency"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
}

// TableName specifies the table name for EconomicEvent model
func (EconomicEvent) TableName() string {
	return "economic_events"
}

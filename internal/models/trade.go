package models

import (
	"strings"
	"time"

	"github.com/NAPONYAHASINE/journal/internal/market"
	"gorm.io/gorm"
)

// TradeStatus represents the lifecycle status of a trade
type TradeStatus string

const (
	TradeStatusOpen   TradeStatus = "OPEN"
	TradeStatusClosed TradeStatus = "CLOSED"
)

// Trade represents a logged trade. A trade is created OPEN with entry data
// only and transitions to CLOSED exactly once, when exit data arrives.
// Invariant: Status == CLOSED exactly when ExitTime, ExitPrice and Result are
// all non-nil. Result is stored in the journal's currency;
// ResultPercentage = Result / journal.InitialCapital * 100.
type Trade struct {
	ID               uint             `gorm:"primaryKey" json:"id"`
	JournalID        uint             `gorm:"index;not null" json:"journal_id"`
	EntryTime        time.Time        `gorm:"not null" json:"entry_time"`
	ExitTime         *time.Time       `json:"exit_time,omitempty"`
	Session          string           `gorm:"size:50" json:"session,omitempty"`
	Symbol           string           `gorm:"size:50;not null;index" json:"symbol"`
	Direction        market.Direction `gorm:"size:10;not null" json:"direction"`
	EntryPrice       float64          `gorm:"type:decimal(20,8);not null" json:"entry_price"`
	ExitPrice        *float64         `gorm:"type:decimal(20,8)" json:"exit_price,omitempty"`
	Size             float64          `gorm:"type:decimal(20,8);not null" json:"size"`
	RiskReward       string           `gorm:"size:10" json:"risk_reward,omitempty"`
	TimeFrame        string           `gorm:"size:50" json:"time_frame,omitempty"`
	Notes            string           `gorm:"type:text" json:"notes,omitempty"`
	Screenshot       string           `gorm:"size:200" json:"screenshot,omitempty"`
	Result           *float64         `gorm:"type:decimal(20,8)" json:"result,omitempty"`
	ResultPercentage *float64         `gorm:"type:decimal(20,8)" json:"result_percentage,omitempty"`
	Status           TradeStatus      `gorm:"size:20;not null;default:'OPEN'" json:"status"`
	Tags             string           `gorm:"size:200" json:"tags,omitempty"`
	RecordedAt       time.Time        `gorm:"not null" json:"recorded_at"`
	DeletedAt        gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relations
	Journal     Journal           `gorm:"foreignKey:JournalID" json:"-"`
	Reflections []ReflectionEntry `gorm:"foreignKey:TradeID" json:"reflections,omitempty"`
}

// TableName specifies the table name for Trade model
func (Trade) TableName() string {
	return "trades"
}

// IsClosed returns true once the trade carries final exit data
func (t *Trade) IsClosed() bool {
	return t.Status == TradeStatusClosed
}

// TagList splits the comma-separated tags field, trimming whitespace and
// dropping empty entries.
func (t *Trade) TagList() []string {
	if t.Tags == "" {
		return nil
	}
	parts := strings.Split(t.Tags, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

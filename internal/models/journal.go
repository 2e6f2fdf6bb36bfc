package models

import (
	"time"

	"gorm.io/gorm"
)

// Journal represents a user's named trading ledger. Percentage returns are
// measured against its initial capital, and results are converted into its
// currency.
type Journal struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Name           string         `gorm:"size:100;not null" json:"name"`
	InitialCapital float64        `gorm:"type:decimal(20,8);not null" json:"initial_capital"`
	Currency       string         `gorm:"size:10;not null" json:"currency"`
	Leverage       float64        `gorm:"not null" json:"leverage"`
	UserID         uint           `gorm:"index;not null" json:"user_id"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	User          User           `gorm:"foreignKey:UserID" json:"-"`
	Trades        []Trade        `gorm:"foreignKey:JournalID" json:"trades,omitempty"`
	Analyses      []Analysis     `gorm:"foreignKey:JournalID" json:"analyses,omitempty"`
	PlatformLinks []PlatformLink `gorm:"foreignKey:JournalID" json:"platform_links,omitempty"`
}

// TableName specifies the table name for Journal model
func (Journal) TableName() string {
	return "journals"
}

// PlatformLink links a journal to an external broker/platform account
type PlatformLink struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Platform   string `gorm:"size:100;not null" json:"platform"`
	Identifier string `gorm:"size:100;not null" json:"identifier"`
	Details    string `gorm:"type:text" json:"details,omitempty"`
	JournalID  uint   `gorm:"index;not null" json:"journal_id"`
}

// TableName specifies the table name for PlatformLink model
func (PlatformLink) TableName() string {
	return "platform_links"
}

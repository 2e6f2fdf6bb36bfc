package models

import "time"

// Goal tracks a user's progress toward a numeric target
type Goal struct {
	ID                 uint    `gorm:"primaryKey" json:"id"`
	Title              string  `gorm:"size:100;not null" json:"title"`
	Description        string  `gorm:"type:text" json:"description,omitempty"`
	TargetValue        float64 `gorm:"not null" json:"target_value"`
	CurrentValue       float64 `gorm:"default:0" json:"current_value"`
	ProgressPercentage float64 `gorm:"default:0" json:"progress_percentage"`
	UserID             uint    `gorm:"index;not null" json:"user_id"`
}

// TableName specifies the table name for Goal model
func (Goal) TableName() string {
	return "goals"
}

// Notification is a message shown to a user until dismissed
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Message   string    `gorm:"size:200;not null" json:"message"`
	IsRead    bool      `gorm:"default:false" json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for Notification model
func (Notification) TableName() string {
	return "notifications"
}

// ReflectionEntry is a journaling note, optionally attached to a trade
type ReflectionEntry struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Emotions       string    `gorm:"type:text" json:"emotions,omitempty"`
	Notes          string    `gorm:"type:text" json:"notes,omitempty"`
	LessonsLearned string    `gorm:"type:text" json:"lessons_learned,omitempty"`
	TradeID        *uint     `gorm:"index" json:"trade_id,omitempty"`
	UserID         uint      `gorm:"index;not null" json:"user_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// TableName specifies the table name for ReflectionEntry model
func (ReflectionEntry) TableName() string {
	return "reflection_entries"
}

// Strategy is a user-defined trading strategy with structured fields.
// Instruments, ExitType and Indicators hold comma-joined selections.
type Strategy struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Rules       string    `gorm:"type:text;not null" json:"rules"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	Type        string    `gorm:"size:50" json:"type,omitempty"`
	Instruments string    `gorm:"type:text" json:"instruments,omitempty"`
	Timeframe   string    `gorm:"size:20" json:"timeframe,omitempty"`
	EntryType   string    `gorm:"size:20" json:"entry_type,omitempty"`
	ExitType    string    `gorm:"type:text" json:"exit_type,omitempty"`
	Indicators  string    `gorm:"type:text" json:"indicators,omitempty"`
	Risk        string    `gorm:"size:20" json:"risk,omitempty"`
	MaxLoss     *float64  `json:"max_loss,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName specifies the table name for Strategy model
func (Strategy) TableName() string {
	return "strategies"
}

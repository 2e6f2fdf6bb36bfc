package models

import "time"

// SharedWithAll is the AnalysisShare audience meaning "everyone" (the
// community feed), as opposed to a specific user's e-mail address.
const SharedWithAll = "all"

// Analysis is a written market analysis attached to a journal
type Analysis struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:100;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Image     string    `gorm:"size:200" json:"image,omitempty"`
	JournalID uint      `gorm:"index;not null" json:"journal_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Journal Journal         `gorm:"foreignKey:JournalID" json:"-"`
	Shares  []AnalysisShare `gorm:"foreignKey:AnalysisID" json:"shares,omitempty"`
}

// TableName specifies the table name for Analysis model
func (Analysis) TableName() string {
	return "analyses"
}

// AnalysisShare publishes an analysis either to the whole community
// (SharedWith == SharedWithAll) or to one user identified by e-mail
type AnalysisShare struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	AnalysisID     uint   `gorm:"index;not null" json:"analysis_id"`
	SharedByUserID uint   `gorm:"index;not null" json:"shared_by_user_id"`
	SharedWith     string `gorm:"size:100;not null" json:"shared_with"`

	// Relations
	Analysis Analysis               `gorm:"foreignKey:AnalysisID" json:"analysis,omitempty"`
	Comments []AnalysisShareComment `gorm:"foreignKey:ShareID" json:"comments,omitempty"`
}

// TableName specifies the table name for AnalysisShare model
func (AnalysisShare) TableName() string {
	return "analysis_shares"
}

// AnalysisShareComment is a comment left on a shared analysis
type AnalysisShareComment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ShareID   uint      `gorm:"index;not null" json:"share_id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Comment   string    `gorm:"type:text;not null" json:"comment"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// TableName specifies the table name for AnalysisShareComment model
func (AnalysisShareComment) TableName() string {
	return "analysis_share_comments"
}

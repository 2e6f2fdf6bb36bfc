package models

import "time"

// AssistanceSender identifies which side of an assistance thread wrote a reply
type AssistanceSender string

const (
	SenderUser  AssistanceSender = "user"
	SenderAdmin AssistanceSender = "admin"
)

// AssistanceMessage opens a support thread between a user and the admins
type AssistanceMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Subject   string    `gorm:"size:100;not null" json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	User    User              `gorm:"foreignKey:UserID" json:"-"`
	Replies []AssistanceReply `gorm:"foreignKey:AssistanceID" json:"replies,omitempty"`
}

// TableName specifies the table name for AssistanceMessage model
func (AssistanceMessage) TableName() string {
	return "assistance_messages"
}

// AssistanceReply is one reply inside an assistance thread
type AssistanceReply struct {
	ID           uint             `gorm:"primaryKey" json:"id"`
	ReplyMessage string           `gorm:"type:text;not null" json:"reply_message"`
	AssistanceID uint             `gorm:"index;not null" json:"assistance_id"`
	Sender       AssistanceSender `gorm:"size:10;not null" json:"sender"`
	CreatedAt    time.Time        `json:"created_at"`
}

// TableName specifies the table name for AssistanceReply model
func (AssistanceReply) TableName() string {
	return "assistance_replies"
}

// InfoPost is an admin-published announcement shown to all users
type InfoPost struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:100;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Media     string    `gorm:"size:200" json:"media,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for InfoPost model
func (InfoPost) TableName() string {
	return "info_posts"
}

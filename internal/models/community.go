package models

import "time"

// Group is a user-owned discussion group
type Group struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	OwnerID     uint   `gorm:"index;not null" json:"owner_id"`

	// Relations
	Owner    User           `gorm:"foreignKey:OwnerID" json:"-"`
	Members  []GroupMember  `gorm:"foreignKey:GroupID" json:"members,omitempty"`
	Messages []GroupMessage `gorm:"foreignKey:GroupID" json:"messages,omitempty"`
}

// TableName specifies the table name for Group model
func (Group) TableName() string {
	return "groups"
}

// GroupMember is a user's membership in a group
type GroupMember struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	GroupID uint `gorm:"index;not null" json:"group_id"`
	UserID  uint `gorm:"index;not null" json:"user_id"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for GroupMember model
func (GroupMember) TableName() string {
	return "group_members"
}

// GroupMessage is a message, optionally with media, posted in a group
type GroupMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text" json:"content,omitempty"`
	Media     string    `gorm:"size:200" json:"media,omitempty"`
	GroupID   uint      `gorm:"index;not null" json:"group_id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// TableName specifies the table name for GroupMessage model
func (GroupMessage) TableName() string {
	return "group_messages"
}

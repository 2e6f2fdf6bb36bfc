package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered user
type User struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	FirstName    string         `gorm:"size:50;not null" json:"first_name"`
	LastName     string         `gorm:"size:50;not null" json:"last_name"`
	Email        string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	PasswordHash string         `gorm:"size:255;not null" json:"-"`
	Country      string         `gorm:"size:50" json:"country,omitempty"`
	IsAdmin      bool           `gorm:"default:false" json:"is_admin"`
	Participate  bool           `gorm:"default:false" json:"participate"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Journals []Journal `gorm:"foreignKey:UserID" json:"journals,omitempty"`
	Goals    []Goal    `gorm:"foreignKey:UserID" json:"goals,omitempty"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}

// FullName returns the display name used in rankings and share comments
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

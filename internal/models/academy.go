package models

import "time"

// Module groups academy courses under one theme
type Module struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Price       float64   `gorm:"default:0" json:"price"`
	CourseCount int       `gorm:"default:0" json:"course_count"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Skills      string    `gorm:"type:text" json:"skills,omitempty"`
	Image       string    `gorm:"size:200" json:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`

	// Relations
	Courses []Course `gorm:"foreignKey:ModuleID" json:"courses,omitempty"`
}

// TableName specifies the table name for Module model
func (Module) TableName() string {
	return "modules"
}

// Course is one lesson inside an academy module
type Course struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:100;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Price       float64   `gorm:"default:0" json:"price"`
	File        string    `gorm:"size:200" json:"file,omitempty"`
	ModuleID    uint      `gorm:"index;not null" json:"module_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName specifies the table name for Course model
func (Course) TableName() string {
	return "courses"
}

// CourseLike marks that a user liked a course (toggled)
type CourseLike struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	CourseID uint `gorm:"index;not null" json:"course_id"`
	UserID   uint `gorm:"index;not null" json:"user_id"`
}

// TableName specifies the table name for CourseLike model
func (CourseLike) TableName() string {
	return "course_likes"
}

// CourseComment is a user comment on a course
type CourseComment struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	CourseID uint      `gorm:"index;not null" json:"course_id"`
	UserID   uint      `gorm:"index;not null" json:"user_id"`
	Comment  string    `gorm:"type:text;not null" json:"comment"`
	PostedAt time.Time `gorm:"autoCreateTime" json:"posted_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// TableName specifies the table name for CourseComment model
func (CourseComment) TableName() string {
	return "course_comments"
}

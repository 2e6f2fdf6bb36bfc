package repository

import (
	"errors"

	"github.com/NAPONYAHASINE/journal/internal/models"
	"gorm.io/gorm"
)

// Sentinel errors for academy data access
var (
	ErrModuleNotFound = errors.New("module not found")
	ErrCourseNotFound = errors.New("course not found")
)

// AcademyRepository handles academy module and course data access
type AcademyRepository struct {
	db *gorm.DB
}

// NewAcademyRepository creates a new AcademyRepository
func NewAcademyRepository(db *gorm.DB) *AcademyRepository {
	return &AcademyRepository{db: db}
}

// CreateModule creates an academy module
func (r *AcademyRepository) CreateModule(module *models.Module) error {
	return r.db.Create(module).Error
}

// GetModuleByID retrieves a module with its courses
func (r *AcademyRepository) GetModuleByID(id uint) (*models.Module, error) {
	var module models.Module
	if err := r.db.Preload("Courses").First(&module, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrModuleNotFound
		}
		return nil, err
	}
	return &module, nil
}

// ListModules retrieves all academy modules
func (r *AcademyRepository) ListModules() ([]models.Module, error) {
	var modules []models.Module
	result := r.db.Order("created_at ASC").Find(&modules)
	return modules, result.Error
}

// CreateCourse creates a course and bumps its module's course count
func (r *AcademyRepository) CreateCourse(course *models.Course) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(course).Error; err != nil {
			return err
		}
		return tx.Model(&models.Module{}).
			Where("id = ?", course.ModuleID).
			Update("course_count", gorm.Expr("course_count + 1")).Error
	})
}

// GetCourseByID retrieves a course by ID
func (r *AcademyRepository) GetCourseByID(id uint) (*models.Course, error) {
	var course models.Course
	if err := r.db.First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return &course, nil
}

// ListCoursesByModule retrieves the courses of a module
func (r *AcademyRepository) ListCoursesByModule(moduleID uint) ([]models.Course, error) {
	var courses []models.Course
	result := r.db.Where("module_id = ?", moduleID).
		Order("created_at ASC").
		Find(&courses)
	return courses, result.Error
}

// ToggleLike likes a course for a user, or removes the like if it already
// exists. Returns true when the course ends up liked.
func (r *AcademyRepository) ToggleLike(courseID, userID uint) (bool, error) {
	var like models.CourseLike
	err := r.db.Where("course_id = ? AND user_id = ?", courseID, userID).
		First(&like).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		like = models.CourseLike{CourseID: courseID, UserID: userID}
		if err := r.db.Create(&like).Error; err != nil {
			return false, err
		}
		return true, nil
	}
	if err != nil {
		return false, err
	}
	if err := r.db.Delete(&like).Error; err != nil {
		return false, err
	}
	return false, nil
}

// CountLikes counts the likes of a course
func (r *AcademyRepository) CountLikes(courseID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.CourseLike{}).
		Where("course_id = ?", courseID).
		Count(&count).Error
	return count, err
}

// CreateComment posts a comment on a course
func (r *AcademyRepository) CreateComment(comment *models.CourseComment) error {
	return r.db.Create(comment).Error
}

// ListComments retrieves a course's comments with authors, newest first
func (r *AcademyRepository) ListComments(courseID uint) ([]models.CourseComment, error) {
	var comments []models.CourseComment
	result := r.db.Preload("User").
		Where("course_id = ?", courseID).
		Order("posted_at DESC").
		Find(&comments)
	return comments, result.Error
}

package service

import (
	"errors"

	"github.com/NAPONYAHASINE/journal/internal/models"
	"github.com/NAPONYAHASINE/journal/internal/repository"
)

var (
	ErrModuleMissing = errors.New("module not found")
	ErrCourseMissing = errors.New("course not found")
)

// AcademyService handles the learning catalogue: modules, courses, likes
// and comments
type AcademyService struct {
	academyRepo *repository.AcademyRepository
}

// NewAcademyService creates a new AcademyService
func NewAcademyService(academyRepo *repository.AcademyRepository) *AcademyService {
	return &AcademyService{academyRepo: academyRepo}
}

// CreateModuleRequest represents the module creation request (admin)
type CreateModuleRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=100"`
	Price       float64 `json:"price" binding:"omitempty"`
	Description string  `json:"description" binding:"omitempty,max=1000"`
	Skills      string  `json:"skills" binding:"omitempty,max=1000"`
	Image       string  `json:"image" binding:"omitempty,max=200"`
}

// CreateCourseRequest represents the course creation request (admin)
type CreateCourseRequest struct {
	Title       string  `json:"title" binding:"required,min=1,max=100"`
	Description string  `json:"description" binding:"omitempty,max=1000"`
	Price       float64 `json:"price" binding:"omitempty"`
	File        string  `json:"file" binding:"omitempty,max=200"`
}

// CourseCommentRequest represents a user comment on a course
type CourseCommentRequest struct {
	Comment string `json:"comment" binding:"required,min=1,max=1000"`
}

// CreateModule adds a module to the catalogue
func (s *AcademyService) CreateModule(req *CreateModuleRequest) (*models.Module, error) {
	module := &models.Module{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Skills:      req.Skills,
		Image:       req.Image,
	}
	if err := s.academyRepo.CreateModule(module); err != nil {
		return nil, err
	}
	return module, nil
}

// ListModules retrieves the catalogue
func (s *AcademyService) ListModules() ([]models.Module, error) {
	return s.academyRepo.ListModules()
}

// GetModule retrieves a module with its courses
func (s *AcademyService) GetModule(id uint) (*models.Module, error) {
	module, err := s.academyRepo.GetModuleByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrModuleNotFound) {
			return nil, ErrModuleMissing
		}
		return nil, err
	}
	return module, nil
}

// CreateCourse adds a course to a module
func (s *AcademyService) CreateCourse(moduleID uint, req *CreateCourseRequest) (*models.Course, error) {
	if _, err := s.GetModule(moduleID); err != nil {
		return nil, err
	}

	course := &models.Course{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		File:        req.File,
		ModuleID:    moduleID,
	}
	if err := s.academyRepo.CreateCourse(course); err != nil {
		return nil, err
	}
	return course, nil
}

// GetCourse retrieves a course with its like count
func (s *AcademyService) GetCourse(id uint) (*models.Course, int64, error) {
	course, err := s.academyRepo.GetCourseByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return nil, 0, ErrCourseMissing
		}
		return nil, 0, err
	}
	likes, err := s.academyRepo.CountLikes(id)
	if err != nil {
		return nil, 0, err
	}
	return course, likes, nil
}

// ToggleLike toggles the user's like on a course and returns the new state
// and like count
func (s *AcademyService) ToggleLike(courseID, userID uint) (liked bool, likes int64, err error) {
	if _, err := s.academyRepo.GetCourseByID(courseID); err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return false, 0, ErrCourseMissing
		}
		return false, 0, err
	}

	liked, err = s.academyRepo.ToggleLike(courseID, userID)
	if err != nil {
		return false, 0, err
	}
	likes, err = s.academyRepo.CountLikes(courseID)
	return liked, likes, err
}

// Comment posts a comment on a course
func (s *AcademyService) Comment(courseID, userID uint, req *CourseCommentRequest) (*models.CourseComment, error) {
	if _, err := s.academyRepo.GetCourseByID(courseID); err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return nil, ErrCourseMissing
		}
		return nil, err
	}

	comment := &models.CourseComment{
		CourseID: courseID,
		UserID:   userID,
		Comment:  req.Comment,
	}
	if err := s.academyRepo.CreateComment(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments retrieves a course's comments, newest first
func (s *AcademyService) ListComments(courseID uint) ([]models.CourseComment, error) {
	return s.academyRepo.ListComments(courseID)
}

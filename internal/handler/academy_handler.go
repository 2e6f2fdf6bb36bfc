package handler

import (
	"errors"

	"github.com/NAPONYAHASINE/journal/internal/middleware"
	"github.com/NAPONYAHASINE/journal/internal/service"
	"github.com/NAPONYAHASINE/journal/pkg/response"
	"github.com/gin-gonic/gin"
)

// AcademyHandler handles learning catalogue API requests
type AcademyHandler struct {
	academyService *service.AcademyService
}

// NewAcademyHandler creates a new AcademyHandler
func NewAcademyHandler(academyService *service.AcademyService) *AcademyHandler {
	return &AcademyHandler{
		academyService: academyService,
	}
}

// GetModules lists the catalogue
// GET /api/v1/academy/modules
func (h *AcademyHandler) GetModules(c *gin.Context) {
	modules, err := h.academyService.ListModules()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, modules)
}

// GetModule retrieves a module with its courses
// GET /api/v1/academy/modules/:id
func (h *AcademyHandler) GetModule(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid module id")
		return
	}

	module, err := h.academyService.GetModule(id)
	if err != nil {
		if errors.Is(err, service.ErrModuleMissing) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, module)
}

// CreateModule adds a module to the catalogue (admin)
// POST /api/v1/academy/modules
func (h *AcademyHandler) CreateModule(c *gin.Context) {
	var req service.CreateModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	module, err := h.academyService.CreateModule(&req)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Created(c, module)
}

// CreateCourse adds a course to a module (admin)
// POST /api/v1/academy/modules/:id/courses
func (h *AcademyHandler) CreateCourse(c *gin.Context) {
	moduleID, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid module id")
		return
	}

	var req service.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	course, err := h.academyService.CreateCourse(moduleID, &req)
	if err != nil {
		if errors.Is(err, service.ErrModuleMissing) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}
	response.Created(c, course)
}

// GetCourse retrieves a course with its like count
// GET /api/v1/academy/courses/:id
func (h *AcademyHandler) GetCourse(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid course id")
		return
	}

	course, likes, err := h.academyService.GetCourse(id)
	if err != nil {
		if errors.Is(err, service.ErrCourseMissing) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, gin.H{"course": course, "likes": likes})
}

// ToggleLike toggles the caller's like on a course
// POST /api/v1/academy/courses/:id/like
func (h *AcademyHandler) ToggleLike(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid course id")
		return
	}

	liked, likes, err := h.academyService.ToggleLike(id, middleware.GetUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrCourseMissing) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, gin.H{"liked": liked, "likes": likes})
}

// CommentCourse posts a comment on a course
// POST /api/v1/academy/courses/:id/comments
func (h *AcademyHandler) CommentCourse(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid course id")
		return
	}

	var req service.CourseCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	comment, err := h.academyService.Comment(id, middleware.GetUserID(c), &req)
	if err != nil {
		if errors.Is(err, service.ErrCourseMissing) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}
	response.Created(c, comment)
}

// GetCourseComments lists a course's comments, newest first
// GET /api/v1/academy/courses/:id/comments
func (h *AcademyHandler) GetCourseComments(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid course id")
		return
	}

	comments, err := h.academyService.ListComments(id)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, comments)
}

// RegisterRoutes registers academy routes
func (h *AcademyHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware, adminMiddleware gin.HandlerFunc) {
	academy := rg.Group("/academy", authMiddleware)
	{
		academy.GET("/modules", h.GetModules)
		academy.GET("/modules/:id", h.GetModule)
		academy.GET("/courses/:id", h.GetCourse)
		academy.POST("/courses/:id/like", h.ToggleLike)
		academy.POST("/courses/:id/comments", h.CommentCourse)
		academy.GET("/courses/:id/comments", h.GetCourseComments)

		academy.POST("/modules", adminMiddleware, h.CreateModule)
		academy.POST("/modules/:id/courses", adminMiddleware, h.CreateCourse)
	}
}

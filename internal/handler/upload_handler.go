package handler

import (
	"errors"
	"os"

	"github.com/NAPONYAHASINE/journal/internal/service"
	"github.com/NAPONYAHASINE/journal/pkg/response"
	"github.com/gin-gonic/gin"
)

// UploadHandler handles file upload API requests
type UploadHandler struct {
	uploadService *service.UploadService
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(uploadService *service.UploadService) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
	}
}

// Upload stores a file and returns the name to reference it by
// POST /api/v1/uploads
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "missing file field")
		return
	}

	name, err := h.uploadService.Save(file)
	if err != nil {
		if errors.Is(err, service.ErrFileType) || errors.Is(err, service.ErrFileTooLarge) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}
	response.Created(c, gin.H{"file": name})
}

// Download serves a stored file
// GET /api/v1/uploads/:name
func (h *UploadHandler) Download(c *gin.Context) {
	path, err := h.uploadService.Path(c.Param("name"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			response.NotFound(c, "file not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}
	c.File(path)
}

// RegisterRoutes registers upload routes
func (h *UploadHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	uploads := rg.Group("/uploads", authMiddleware)
	{
		uploads.POST("", h.Upload)
		uploads.GET("/:name", h.Download)
	}
}

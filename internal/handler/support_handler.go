package handler

import (
	"errors"

	"github.com/NAPONYAHASINE/journal/internal/middleware"
	"github.com/NAPONYAHASINE/journal/internal/service"
	"github.com/NAPONYAHASINE/journal/pkg/response"
	"github.com/gin-gonic/gin"
)

// SupportHandler handles assistance and announcement API requests
type SupportHandler struct {
	supportService *service.SupportService
}

// NewSupportHandler creates a new SupportHandler
func NewSupportHandler(supportService *service.SupportService) *SupportHandler {
	return &SupportHandler{
		supportService: supportService,
	}
}

// OpenThread opens an assistance thread
// POST /api/v1/assistance
func (h *SupportHandler) OpenThread(c *gin.Context) {
	var req service.OpenThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	thread, err := h.supportService.OpenThread(middleware.GetUserID(c), &req)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Created(c, thread)
}

// GetThreads lists the caller's threads, or all threads for admins
// GET /api/v1/assistance
func (h *SupportHandler) GetThreads(c *gin.Context) {
	threads, err := h.supportService.ListThreads(middleware.GetUserID(c), middleware.IsAdmin(c))
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, threads)
}

// GetThread retrieves a thread visible to the caller
// GET /api/v1/assistance/:id
func (h *SupportHandler) GetThread(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid thread id")
		return
	}

	thread, err := h.supportService.GetThread(id, middleware.GetUserID(c), middleware.IsAdmin(c))
	if err != nil {
		if errors.Is(err, service.ErrAssistanceAccess) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, thread)
}

// Reply appends a reply to a thread
// POST /api/v1/assistance/:id/replies
func (h *SupportHandler) Reply(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid thread id")
		return
	}

	var req service.ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	reply, err := h.supportService.Reply(id, middleware.GetUserID(c), middleware.IsAdmin(c), &req)
	if err != nil {
		if errors.Is(err, service.ErrAssistanceAccess) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}
	response.Created(c, reply)
}

// GetPosts lists all announcements
// GET /api/v1/posts
func (h *SupportHandler) GetPosts(c *gin.Context) {
	posts, err := h.supportService.ListPosts()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, posts)
}

// PublishPost publishes an announcement (admin)
// POST /api/v1/admin/posts
func (h *SupportHandler) PublishPost(c *gin.Context) {
	var req service.PublishPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := h.supportService.PublishPost(&req)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Created(c, post)
}

// DeletePost removes an announcement (admin)
// DELETE /api/v1/admin/posts/:id
func (h *SupportHandler) DeletePost(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	if err := h.supportService.DeletePost(id); err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// RegisterRoutes registers assistance and announcement routes
func (h *SupportHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware, adminMiddleware gin.HandlerFunc) {
	assistance := rg.Group("/assistance", authMiddleware)
	{
		assistance.POST("", h.OpenThread)
		assistance.GET("", h.GetThreads)
		assistance.GET("/:id", h.GetThread)
		assistance.POST("/:id/replies", h.Reply)
	}

	rg.GET("/posts", authMiddleware, h.GetPosts)

	admin := rg.Group("/admin/posts", authMiddleware, adminMiddleware)
	{
		admin.POST("", h.PublishPost)
		admin.DELETE("/:id", h.DeletePost)
	}
}

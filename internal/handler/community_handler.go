package handler

import (
	"errors"

	"github.com/NAPONYAHASINE/journal/internal/middleware"
	"github.com/NAPONYAHASINE/journal/internal/service"
	"github.com/NAPONYAHASINE/journal/pkg/response"
	"github.com/gin-gonic/gin"
)

// CommunityHandler handles group API requests
type CommunityHandler struct {
	communityService *service.CommunityService
}

// NewCommunityHandler creates a new CommunityHandler
func NewCommunityHandler(communityService *service.CommunityService) *CommunityHandler {
	return &CommunityHandler{
		communityService: communityService,
	}
}

// CreateGroup creates a group owned by the caller
// POST /api/v1/groups
func (h *CommunityHandler) CreateGroup(c *gin.Context) {
	var req service.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	group, err := h.communityService.CreateGroup(middleware.GetUserID(c), &req)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Created(c, group)
}

// GetGroups lists the caller's groups
// GET /api/v1/groups
func (h *CommunityHandler) GetGroups(c *gin.Context) {
	groups, err := h.communityService.ListGroups(middleware.GetUserID(c))
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, groups)
}

// GetGroup retrieves a group the caller belongs to
// GET /api/v1/groups/:id
func (h *CommunityHandler) GetGroup(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid group id")
		return
	}

	group, err := h.communityService.GetGroup(id, middleware.GetUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrGroupAccess) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, group)
}

// Invite adds a user, by email, to a group the caller belongs to
// POST /api/v1/groups/:id/invite
func (h *CommunityHandler) Invite(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid group id")
		return
	}

	var req service.InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.communityService.Invite(id, middleware.GetUserID(c), &req); err != nil {
		switch {
		case errors.Is(err, service.ErrGroupAccess):
			response.NotFound(c, err.Error())
		case errors.Is(err, service.ErrUnknownAccount), errors.Is(err, service.ErrAlreadyMember):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, err.Error())
		}
		return
	}
	response.Success(c, gin.H{"invited": true})
}

// Leave removes the caller from a group
// POST /api/v1/groups/:id/leave
func (h *CommunityHandler) Leave(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid group id")
		return
	}

	if err := h.communityService.Leave(id, middleware.GetUserID(c)); err != nil {
		switch {
		case errors.Is(err, service.ErrGroupAccess):
			response.NotFound(c, err.Error())
		case errors.Is(err, service.ErrOwnerMustStay):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, err.Error())
		}
		return
	}
	response.Success(c, gin.H{"left": true})
}

// GetMembers lists a group's members
// GET /api/v1/groups/:id/members
func (h *CommunityHandler) GetMembers(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid group id")
		return
	}

	members, err := h.communityService.ListMembers(id, middleware.GetUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrGroupAccess) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, members)
}

// PostMessage posts a message in a group
// POST /api/v1/groups/:id/messages
func (h *CommunityHandler) PostMessage(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid group id")
		return
	}

	var req service.PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	message, err := h.communityService.PostMessage(id, middleware.GetUserID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGroupAccess):
			response.NotFound(c, err.Error())
		case errors.Is(err, service.ErrEmptyMessage):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, err.Error())
		}
		return
	}
	response.Created(c, message)
}

// GetMessages lists a group's messages in chronological order
// GET /api/v1/groups/:id/messages
func (h *CommunityHandler) GetMessages(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid group id")
		return
	}

	messages, err := h.communityService.ListMessages(id, middleware.GetUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrGroupAccess) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, messages)
}

// RegisterRoutes registers group routes
func (h *CommunityHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	groups := rg.Group("/groups", authMiddleware)
	{
		groups.POST("", h.CreateGroup)
		groups.GET("", h.GetGroups)
		groups.GET("/:id", h.GetGroup)
		groups.POST("/:id/invite", h.Invite)
		groups.POST("/:id/leave", h.Leave)
		groups.GET("/:id/members", h.GetMembers)
		groups.POST("/:id/messages", h.PostMessage)
		groups.GET("/:id/messages", h.GetMessages)
	}
}

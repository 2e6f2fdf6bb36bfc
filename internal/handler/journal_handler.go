package handler

import (
	"errors"
	"strconv"

	"github.com/NAPONYAHASINE/journal/internal/middleware"
	"github.com/NAPONYAHASINE/journal/internal/service"
	"github.com/NAPONYAHASINE/journal/pkg/response"
	"github.com/gin-gonic/gin"
)

// JournalHandler handles journal API requests
type JournalHandler struct {
	journalService *service.JournalService
}

// NewJournalHandler creates a new JournalHandler
func NewJournalHandler(journalService *service.JournalService) *JournalHandler {
	return &JournalHandler{
		journalService: journalService,
	}
}

// CreateJournal handles journal creation
// POST /api/v1/journals
func (h *JournalHandler) CreateJournal(c *gin.Context) {
	var req service.CreateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	journal, err := h.journalService.Create(middleware.GetUserID(c), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCapital) || errors.Is(err, service.ErrInvalidLeverage) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Created(c, journal)
}

// GetJournals handles listing the user's journals
// GET /api/v1/journals
func (h *JournalHandler) GetJournals(c *gin.Context) {
	journals, err := h.journalService.List(middleware.GetUserID(c))
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, journals)
}

// GetJournal handles getting a single journal
// GET /api/v1/journals/:id
func (h *JournalHandler) GetJournal(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid journal id")
		return
	}

	journal, err := h.journalService.Get(id, middleware.GetUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrJournalAccess) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, journal)
}

// UpdateJournal handles partial journal updates
// PUT /api/v1/journals/:id
func (h *JournalHandler) UpdateJournal(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid journal id")
		return
	}

	var req service.UpdateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	journal, err := h.journalService.Update(id, middleware.GetUserID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrJournalAccess):
			response.NotFound(c, err.Error())
		case errors.Is(err, service.ErrInvalidCapital), errors.Is(err, service.ErrInvalidLeverage):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, err.Error())
		}
		return
	}
	response.Success(c, journal)
}

// DeleteJournal handles journal deletion
// DELETE /api/v1/journals/:id
func (h *JournalHandler) DeleteJournal(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid journal id")
		return
	}

	if err := h.journalService.Delete(id, middleware.GetUserID(c)); err != nil {
		if errors.Is(err, service.ErrJournalAccess) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// LinkPlatform attaches an external platform account to a journal
// POST /api/v1/journals/:id/platforms
func (h *JournalHandler) LinkPlatform(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid journal id")
		return
	}

	var req service.LinkPlatformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	link, err := h.journalService.LinkPlatform(id, middleware.GetUserID(c), &req)
	if err != nil {
		if errors.Is(err, service.ErrJournalAccess) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}
	response.Created(c, link)
}

// GetPlatformLinks lists a journal's platform links
// GET /api/v1/journals/:id/platforms
func (h *JournalHandler) GetPlatformLinks(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid journal id")
		return
	}

	links, err := h.journalService.ListPlatformLinks(id, middleware.GetUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrJournalAccess) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, links)
}

// RegisterRoutes registers journal routes
func (h *JournalHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	journals := rg.Group("/journals", authMiddleware)
	{
		journals.POST("", h.CreateJournal)
		journals.GET("", h.GetJournals)
		journals.GET("/:id", h.GetJournal)
		journals.PUT("/:id", h.UpdateJournal)
		journals.DELETE("/:id", h.DeleteJournal)
		journals.POST("/:id/platforms", h.LinkPlatform)
		journals.GET("/:id/platforms", h.GetPlatformLinks)
	}
}

// parseID parses a positive uint path parameter
func parseID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, strconv.ErrSyntax
	}
	return uint(id), nil
}

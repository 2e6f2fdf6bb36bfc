package handler

import (
	"errors"
	"strconv"

	"github.com/NAPONYAHASINE/journal/internal/middleware"
	"github.com/NAPONYAHASINE/journal/internal/service"
	"github.com/NAPONYAHASINE/journal/pkg/response"
	"github.com/gin-gonic/gin"
)

// AnalysisHandler handles analysis and sharing API requests
type AnalysisHandler struct {
	analysisService *service.AnalysisService
}

// NewAnalysisHandler creates a new AnalysisHandler
func NewAnalysisHandler(analysisService *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
	}
}

// CreateAnalysis attaches an analysis to a journal
// POST /api/v1/journals/:id/analyses
func (h *AnalysisHandler) CreateAnalysis(c *gin.Context) {
	journalID, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid journal id")
		return
	}

	var req service.CreateAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	analysis, err := h.analysisService.Create(journalID, middleware.GetUserID(c), &req)
	if err != nil {
		if errors.Is(err, service.ErrJournalAccess) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}
	response.Created(c, analysis)
}

// GetAnalyses lists a journal's analyses, paginated and newest first
// GET /api/v1/journals/:id/analyses
func (h *AnalysisHandler) GetAnalyses(c *gin.Context) {
	journalID, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid journal id")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	analyses, total, err := h.analysisService.List(journalID, middleware.GetUserID(c), page, pageSize)
	if err != nil {
		if errors.Is(err, service.ErrJournalAccess) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}
	response.SuccessPaginated(c, analyses, total, page, pageSize)
}

// ShareAnalysis publishes an analysis to the community or to one user
// POST /api/v1/analyses/:id/share
func (h *AnalysisHandler) ShareAnalysis(c *gin.Context) {
	analysisID, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid analysis id")
		return
	}

	var req service.ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	share, err := h.analysisService.Share(analysisID, middleware.GetUserID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAnalysisAccess):
			response.NotFound(c, err.Error())
		case errors.Is(err, service.ErrShareRecipient):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, err.Error())
		}
		return
	}
	response.Created(c, share)
}

// GetCommunity lists every analysis shared with everyone
// GET /api/v1/community/analyses
func (h *AnalysisHandler) GetCommunity(c *gin.Context) {
	shares, err := h.analysisService.Community()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, shares)
}

// GetSharedWithMe lists shares addressed to the caller
// GET /api/v1/community/shared-with-me
func (h *AnalysisHandler) GetSharedWithMe(c *gin.Context) {
	shares, err := h.analysisService.SharedWithMe(middleware.GetUserID(c))
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, shares)
}

// GetShare retrieves one share with its analysis and comments
// GET /api/v1/shares/:id
func (h *AnalysisHandler) GetShare(c *gin.Context) {
	shareID, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid share id")
		return
	}

	share, err := h.analysisService.GetShare(shareID, middleware.GetUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrShareAccess) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, share)
}

// CommentShare posts a comment on a visible share
// POST /api/v1/shares/:id/comments
func (h *AnalysisHandler) CommentShare(c *gin.Context) {
	shareID, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid share id")
		return
	}

	var req service.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	comment, err := h.analysisService.Comment(shareID, middleware.GetUserID(c), &req)
	if err != nil {
		if errors.Is(err, service.ErrShareAccess) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}
	response.Created(c, comment)
}

// RegisterRoutes registers analysis and sharing routes
func (h *AnalysisHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	journals := rg.Group("/journals", authMiddleware)
	{
		journals.POST("/:id/analyses", h.CreateAnalysis)
		journals.GET("/:id/analyses", h.GetAnalyses)
	}

	analyses := rg.Group("/analyses", authMiddleware)
	{
		analyses.POST("/:id/share", h.ShareAnalysis)
	}

	community := rg.Group("/community", authMiddleware)
	{
		community.GET("/analyses", h.GetCommunity)
		community.GET("/shared-with-me", h.GetSharedWithMe)
	}

	shares := rg.Group("/shares", authMiddleware)
	{
		shares.GET("/:id", h.GetShare)
		shares.POST("/:id/comments", h.CommentShare)
	}
}

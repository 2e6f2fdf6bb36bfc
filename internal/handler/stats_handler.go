package handler

import (
	"errors"

	"github.com/NAPONYAHASINE/journal/internal/middleware"
	"github.com/NAPONYAHASINE/journal/internal/service"
	"github.com/NAPONYAHASINE/journal/pkg/response"
	"github.com/gin-gonic/gin"
)

// StatsHandler handles dashboard and aggregate API requests
type StatsHandler struct {
	statsService *service.StatsService
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// journalStatsError maps journal-scoped aggregate failures
func journalStatsError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrJournalAccess) {
		response.NotFound(c, err.Error())
		return
	}
	response.InternalError(c, err.Error())
}

// GetJournalDashboard returns totals and win rate over one journal's closed
// trades, in the journal currency
// GET /api/v1/journals/:id/stats/dashboard
func (h *StatsHandler) GetJournalDashboard(c *gin.Context) {
	journalID, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid journal id")
		return
	}

	dashboard, err := h.statsService.JournalDashboard(c.Request.Context(), journalID, middleware.GetUserID(c))
	if err != nil {
		journalStatsError(c, err)
		return
	}
	response.Success(c, dashboard)
}

// GetJournalBySymbol returns one journal's per-symbol aggregates
// GET /api/v1/journals/:id/stats/by-symbol
func (h *StatsHandler) GetJournalBySymbol(c *gin.Context) {
	journalID, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid journal id")
		return
	}

	stats, err := h.statsService.JournalBySymbol(c.Request.Context(), journalID, middleware.GetUserID(c))
	if err != nil {
		journalStatsError(c, err)
		return
	}
	response.Success(c, stats)
}

// GetJournalByTag returns one journal's per-tag aggregates
// GET /api/v1/journals/:id/stats/by-tag
func (h *StatsHandler) GetJournalByTag(c *gin.Context) {
	journalID, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid journal id")
		return
	}

	stats, err := h.statsService.JournalByTag(c.Request.Context(), journalID, middleware.GetUserID(c))
	if err != nil {
		journalStatsError(c, err)
		return
	}
	response.Success(c, stats)
}

// GetJournalByHour returns one journal's per-entry-hour aggregates
// GET /api/v1/journals/:id/stats/by-hour
func (h *StatsHandler) GetJournalByHour(c *gin.Context) {
	journalID, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid journal id")
		return
	}

	stats, err := h.statsService.JournalByHour(c.Request.Context(), journalID, middleware.GetUserID(c))
	if err != nil {
		journalStatsError(c, err)
		return
	}
	response.Success(c, stats)
}

// GetJournalByMonth returns one journal's per-entry-month aggregates
// GET /api/v1/journals/:id/stats/by-month
func (h *StatsHandler) GetJournalByMonth(c *gin.Context) {
	journalID, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid journal id")
		return
	}

	stats, err := h.statsService.JournalByMonth(c.Request.Context(), journalID, middleware.GetUserID(c))
	if err != nil {
		journalStatsError(c, err)
		return
	}
	response.Success(c, stats)
}

// GetDashboard returns the cross-journal rollup of the user's closed trades
// GET /api/v1/stats/dashboard
func (h *StatsHandler) GetDashboard(c *gin.Context) {
	dashboard, err := h.statsService.GetDashboard(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, dashboard)
}

// GetBySymbol returns per-symbol aggregates
// GET /api/v1/stats/by-symbol
func (h *StatsHandler) GetBySymbol(c *gin.Context) {
	stats, err := h.statsService.BySymbol(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, stats)
}

// GetByTag returns per-tag aggregates
// GET /api/v1/stats/by-tag
func (h *StatsHandler) GetByTag(c *gin.Context) {
	stats, err := h.statsService.ByTag(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, stats)
}

// GetByHour returns per-entry-hour aggregates
// GET /api/v1/stats/by-hour
func (h *StatsHandler) GetByHour(c *gin.Context) {
	stats, err := h.statsService.ByHour(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, stats)
}

// GetByMonth returns per-entry-month aggregates
// GET /api/v1/stats/by-month
func (h *StatsHandler) GetByMonth(c *gin.Context) {
	stats, err := h.statsService.ByMonth(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, stats)
}

// GetRanking returns the community performance ranking
// GET /api/v1/stats/ranking
func (h *StatsHandler) GetRanking(c *gin.Context) {
	ranking, err := h.statsService.Ranking(c.Request.Context())
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, ranking)
}

// RegisterRoutes registers stats routes
func (h *StatsHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	journals := rg.Group("/journals", authMiddleware)
	{
		journals.GET("/:id/stats/dashboard", h.GetJournalDashboard)
		journals.GET("/:id/stats/by-symbol", h.GetJournalBySymbol)
		journals.GET("/:id/stats/by-tag", h.GetJournalByTag)
		journals.GET("/:id/stats/by-hour", h.GetJournalByHour)
		journals.GET("/:id/stats/by-month", h.GetJournalByMonth)
	}

	stats := rg.Group("/stats", authMiddleware)
	{
		stats.GET("/dashboard", h.GetDashboard)
		stats.GET("/by-symbol", h.GetBySymbol)
		stats.GET("/by-tag", h.GetByTag)
		stats.GET("/by-hour", h.GetByHour)
		stats.GET("/by-month", h.GetByMonth)
		stats.GET("/ranking", h.GetRanking)
	}
}

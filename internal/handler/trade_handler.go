package handler

import (
	"errors"

	"github.com/NAPONYAHASINE/journal/internal/market"
	"github.com/NAPONYAHASINE/journal/internal/middleware"
	"github.com/NAPONYAHASINE/journal/internal/models"
	"github.com/NAPONYAHASINE/journal/internal/service"
	"github.com/NAPONYAHASINE/journal/pkg/response"
	"github.com/gin-gonic/gin"
)

// TradeHandler handles trade API requests
type TradeHandler struct {
	tradeService *service.TradeService
}

// NewTradeHandler creates a new TradeHandler
func NewTradeHandler(tradeService *service.TradeService) *TradeHandler {
	return &TradeHandler{
		tradeService: tradeService,
	}
}

// tradeBadRequest maps validation failures of the trade lifecycle to 400s
func tradeBadRequest(err error) bool {
	return errors.Is(err, service.ErrInvalidDirection) ||
		errors.Is(err, service.ErrInvalidEntryPrice) ||
		errors.Is(err, service.ErrInvalidExitPrice) ||
		errors.Is(err, service.ErrInvalidSize) ||
		errors.Is(err, service.ErrExitBeforeEntry) ||
		errors.Is(err, service.ErrExitIncomplete) ||
		errors.Is(err, service.ErrTradeClosed)
}

// OpenTrade handles logging a trade in a journal
// POST /api/v1/journals/:id/trades
func (h *TradeHandler) OpenTrade(c *gin.Context) {
	journalID, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid journal id")
		return
	}

	var req service.OpenTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	trade, err := h.tradeService.Open(c.Request.Context(), journalID, middleware.GetUserID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrJournalAccess):
			response.NotFound(c, err.Error())
		case tradeBadRequest(err):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, err.Error())
		}
		return
	}

	response.Created(c, trade)
}

// GetTrades handles listing a journal's trades, optionally filtered by status
// GET /api/v1/journals/:id/trades?status=OPEN|CLOSED
func (h *TradeHandler) GetTrades(c *gin.Context) {
	journalID, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid journal id")
		return
	}

	userID := middleware.GetUserID(c)

	var trades []models.Trade
	switch status := c.Query("status"); status {
	case "":
		trades, err = h.tradeService.List(journalID, userID)
	case string(models.TradeStatusOpen), string(models.TradeStatusClosed):
		trades, err = h.tradeService.ListByStatus(journalID, userID, models.TradeStatus(status))
	default:
		response.BadRequest(c, "invalid status filter")
		return
	}
	if err != nil {
		if errors.Is(err, service.ErrJournalAccess) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, trades)
}

// GetTrade handles getting a single trade
// GET /api/v1/trades/:id
func (h *TradeHandler) GetTrade(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid trade id")
		return
	}

	trade, err := h.tradeService.Get(id, middleware.GetUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrTradeAccess) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, trade)
}

// CloseTrade handles recording a trade's exit
// POST /api/v1/trades/:id/close
func (h *TradeHandler) CloseTrade(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid trade id")
		return
	}

	var req service.CloseTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	trade, err := h.tradeService.Close(c.Request.Context(), id, middleware.GetUserID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTradeAccess):
			response.NotFound(c, err.Error())
		case tradeBadRequest(err):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, err.Error())
		}
		return
	}
	response.Success(c, trade)
}

// EditTrade handles partial trade edits
// PUT /api/v1/trades/:id
func (h *TradeHandler) EditTrade(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid trade id")
		return
	}

	var req service.EditTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	trade, err := h.tradeService.Edit(c.Request.Context(), id, middleware.GetUserID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTradeAccess):
			response.NotFound(c, err.Error())
		case tradeBadRequest(err):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, err.Error())
		}
		return
	}
	response.Success(c, trade)
}

// DeleteTrade handles trade deletion
// DELETE /api/v1/trades/:id
func (h *TradeHandler) DeleteTrade(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid trade id")
		return
	}

	if err := h.tradeService.Delete(c.Request.Context(), id, middleware.GetUserID(c)); err != nil {
		if errors.Is(err, service.ErrTradeAccess) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// GetSymbols lists the instruments known to the valuation catalogue
// GET /api/v1/symbols
func (h *TradeHandler) GetSymbols(c *gin.Context) {
	response.Success(c, market.Symbols())
}

// RegisterRoutes registers trade routes
func (h *TradeHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	journals := rg.Group("/journals", authMiddleware)
	{
		journals.POST("/:id/trades", h.OpenTrade)
		journals.GET("/:id/trades", h.GetTrades)
	}

	trades := rg.Group("/trades", authMiddleware)
	{
		trades.GET("/:id", h.GetTrade)
		trades.POST("/:id/close", h.CloseTrade)
		trades.PUT("/:id", h.EditTrade)
		trades.DELETE("/:id", h.DeleteTrade)
	}

	rg.GET("/symbols", h.GetSymbols)
}

package handler

import (
	"errors"

	"github.com/NAPONYAHASINE/journal/internal/middleware"
	"github.com/NAPONYAHASINE/journal/internal/service"
	"github.com/NAPONYAHASINE/journal/pkg/response"
	"github.com/gin-gonic/gin"
)

// ProgressHandler handles goals, reflections and strategies API requests
type ProgressHandler struct {
	goalService       *service.GoalService
	reflectionService *service.ReflectionService
	strategyService   *service.StrategyService
}

// NewProgressHandler creates a new ProgressHandler
func NewProgressHandler(goalService *service.GoalService, reflectionService *service.ReflectionService, strategyService *service.StrategyService) *ProgressHandler {
	return &ProgressHandler{
		goalService:       goalService,
		reflectionService: reflectionService,
		strategyService:   strategyService,
	}
}

// CreateGoal creates a goal
// POST /api/v1/goals
func (h *ProgressHandler) CreateGoal(c *gin.Context) {
	var req service.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	goal, err := h.goalService.Create(middleware.GetUserID(c), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTarget) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}
	response.Created(c, goal)
}

// GetGoals lists the caller's goals
// GET /api/v1/goals
func (h *ProgressHandler) GetGoals(c *gin.Context) {
	goals, err := h.goalService.List(middleware.GetUserID(c))
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, goals)
}

// AddGoalProgress adds to a goal's current value
// POST /api/v1/goals/:id/progress
func (h *ProgressHandler) AddGoalProgress(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid goal id")
		return
	}

	var req service.ProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	goal, err := h.goalService.AddProgress(id, middleware.GetUserID(c), &req)
	if err != nil {
		if errors.Is(err, service.ErrGoalAccess) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, goal)
}

// CheckGoals raises near-completion alerts for the caller's goals
// POST /api/v1/goals/check
func (h *ProgressHandler) CheckGoals(c *gin.Context) {
	if err := h.goalService.CheckGoals(middleware.GetUserID(c)); err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, gin.H{"checked": true})
}

// DeleteGoal removes a goal
// DELETE /api/v1/goals/:id
func (h *ProgressHandler) DeleteGoal(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid goal id")
		return
	}

	if err := h.goalService.Delete(id, middleware.GetUserID(c)); err != nil {
		if errors.Is(err, service.ErrGoalAccess) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// CreateReflection stores a reflection entry
// POST /api/v1/reflections
func (h *ProgressHandler) CreateReflection(c *gin.Context) {
	var req service.CreateReflectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	entry, err := h.reflectionService.Create(middleware.GetUserID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReflectionEmpty):
			response.BadRequest(c, err.Error())
		case errors.Is(err, service.ErrTradeAccess):
			response.NotFound(c, err.Error())
		default:
			response.InternalError(c, err.Error())
		}
		return
	}
	response.Created(c, entry)
}

// GetReflections lists the caller's reflection entries, newest first
// GET /api/v1/reflections
func (h *ProgressHandler) GetReflections(c *gin.Context) {
	entries, err := h.reflectionService.List(middleware.GetUserID(c))
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, entries)
}

// CreateStrategy creates a strategy
// POST /api/v1/strategies
func (h *ProgressHandler) CreateStrategy(c *gin.Context) {
	var req service.CreateStrategyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	strategy, err := h.strategyService.Create(middleware.GetUserID(c), &req)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Created(c, strategy)
}

// GetStrategies lists the caller's strategies
// GET /api/v1/strategies
func (h *ProgressHandler) GetStrategies(c *gin.Context) {
	strategies, err := h.strategyService.List(middleware.GetUserID(c))
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, strategies)
}

// UpdateStrategy applies partial changes to a strategy
// PUT /api/v1/strategies/:id
func (h *ProgressHandler) UpdateStrategy(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid strategy id")
		return
	}

	var req service.UpdateStrategyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	strategy, err := h.strategyService.Update(id, middleware.GetUserID(c), &req)
	if err != nil {
		if errors.Is(err, service.ErrStrategyAccess) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, strategy)
}

// DeleteStrategy removes a strategy
// DELETE /api/v1/strategies/:id
func (h *ProgressHandler) DeleteStrategy(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid strategy id")
		return
	}

	if err := h.strategyService.Delete(id, middleware.GetUserID(c)); err != nil {
		if errors.Is(err, service.ErrStrategyAccess) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// CheckTrades reports trades violating the strategies named in their tags
// GET /api/v1/strategies/check-trades
func (h *ProgressHandler) CheckTrades(c *gin.Context) {
	messages, err := h.strategyService.CheckTrades(middleware.GetUserID(c))
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, gin.H{"violations": messages})
}

// RegisterRoutes registers goal, reflection and strategy routes
func (h *ProgressHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	goals := rg.Group("/goals", authMiddleware)
	{
		goals.POST("", h.CreateGoal)
		goals.GET("", h.GetGoals)
		goals.POST("/check", h.CheckGoals)
		goals.POST("/:id/progress", h.AddGoalProgress)
		goals.DELETE("/:id", h.DeleteGoal)
	}

	reflections := rg.Group("/reflections", authMiddleware)
	{
		reflections.POST("", h.CreateReflection)
		reflections.GET("", h.GetReflections)
	}

	strategies := rg.Group("/strategies", authMiddleware)
	{
		strategies.POST("", h.CreateStrategy)
		strategies.GET("", h.GetStrategies)
		strategies.GET("/check-trades", h.CheckTrades)
		strategies.PUT("/:id", h.UpdateStrategy)
		strategies.DELETE("/:id", h.DeleteStrategy)
	}
}

package handler

import (
	"time"

	"github.com/NAPONYAHASINE/journal/internal/repository"
	"github.com/NAPONYAHASINE/journal/pkg/response"
	"github.com/gin-gonic/gin"
)

// CalendarHandler handles economic calendar API requests
type CalendarHandler struct {
	calendarRepo *repository.CalendarRepository
}

// NewCalendarHandler creates a new CalendarHandler
func NewCalendarHandler(calendarRepo *repository.CalendarRepository) *CalendarHandler {
	return &CalendarHandler{
		calendarRepo: calendarRepo,
	}
}

// GetEvents lists upcoming economic events, soonest first. Pass all=true to
// include past events.
// GET /api/v1/calendar/events
func (h *CalendarHandler) GetEvents(c *gin.Context) {
	if c.Query("all") == "true" {
		events, err := h.calendarRepo.ListAll()
		if err != nil {
			response.InternalError(c, err.Error())
			return
		}
		response.Success(c, events)
		return
	}

	events, err := h.calendarRepo.ListUpcoming(time.Now())
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, events)
}

// PruneEvents removes past events (admin)
// DELETE /api/v1/admin/calendar/events
func (h *CalendarHandler) PruneEvents(c *gin.Context) {
	deleted, err := h.calendarRepo.DeleteBefore(time.Now())
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, gin.H{"deleted": deleted})
}

// RegisterRoutes registers calendar routes
func (h *CalendarHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware, adminMiddleware gin.HandlerFunc) {
	rg.GET("/calendar/events", authMiddleware, h.GetEvents)
	rg.DELETE("/admin/calendar/events", authMiddleware, adminMiddleware, h.PruneEvents)
}

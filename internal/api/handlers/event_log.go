package handlers

import (
	"net/http"

	"teampulse-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EventLogHandler handles HTTP requests for the admin event log
type EventLogHandler struct {
	eventLogService service.EventLogServiceInterface
}

// NewEventLogHandler creates a new event log handler
func NewEventLogHandler(eventLogService service.EventLogServiceInterface) *EventLogHandler {
	return &EventLogHandler{
		eventLogService: eventLogService,
	}
}

// ListEventLogs handles GET /event-logs
// @Summary List event logs
// @Description Newest first
// @Tags event-logs
// @Produce json
// @Param event_name query string false "Only events with this name"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.EventLogListResponse
// @Failure 403 {object} ErrorResponse "Admin only"
// @Security BearerAuth
// @Router /event-logs [get]
func (h *EventLogHandler) ListEventLogs(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	page, pageSize := pageParams(c)
	events, err := h.eventLogService.List(c.Request.Context(), caller, c.Query("event_name"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// GetEventLog handles GET /event-logs/:id
// @Summary Get event log by ID
// @Tags event-logs
// @Produce json
// @Param id path string true "Event log ID (UUID)"
// @Success 200 {object} service.EventLogResponse
// @Failure 404 {object} ErrorResponse "Event log not found"
// @Security BearerAuth
// @Router /event-logs/{id} [get]
func (h *EventLogHandler) GetEventLog(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "event log")
	if !ok {
		return
	}

	event, err := h.eventLogService.GetByID(c.Request.Context(), caller, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// CreateEventLog handles POST /event-logs
// @Summary Create event log entry
// @Tags event-logs
// @Accept json
// @Produce json
// @Param request body service.EventLogRequest true "Event"
// @Success 201 {object} service.EventLogResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Security BearerAuth
// @Router /event-logs [post]
func (h *EventLogHandler) CreateEventLog(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var req service.EventLogRequest
	if !bindJSON(c, &req) {
		return
	}

	event, err := h.eventLogService.Create(c.Request.Context(), caller, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

// UpdateEventLog handles PUT and PATCH /event-logs/:id
// @Summary Update event log entry
// @Tags event-logs
// @Accept json
// @Produce json
// @Param id path string true "Event log ID (UUID)"
// @Param request body service.EventLogRequest true "Event"
// @Success 200 {object} service.EventLogResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Event log not found"
// @Security BearerAuth
// @Router /event-logs/{id} [put]
func (h *EventLogHandler) UpdateEventLog(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "event log")
	if !ok {
		return
	}

	var req service.EventLogRequest
	if !bindJSON(c, &req) {
		return
	}

	event, err := h.eventLogService.Update(c.Request.Context(), caller, id, &req, isPartial(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// DeleteEventLog handles DELETE /event-logs/:id
// @Summary Delete event log entry
// @Tags event-logs
// @Param id path string true "Event log ID (UUID)"
// @Success 204 "Event log deleted"
// @Failure 404 {object} ErrorResponse "Event log not found"
// @Security BearerAuth
// @Router /event-logs/{id} [delete]
func (h *EventLogHandler) DeleteEventLog(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "event log")
	if !ok {
		return
	}

	if err := h.eventLogService.Delete(c.Request.Context(), caller, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

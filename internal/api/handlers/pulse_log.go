package handlers

import (
	"net/http"

	"teampulse-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PulseLogHandler handles HTTP requests for pulse logs
type PulseLogHandler struct {
	pulseLogService service.PulseLogServiceInterface
}

// NewPulseLogHandler creates a new pulse log handler
func NewPulseLogHandler(pulseLogService service.PulseLogServiceInterface) *PulseLogHandler {
	return &PulseLogHandler{
		pulseLogService: pulseLogService,
	}
}

// ListPulseLogs handles GET /pulse-logs
// @Summary List pulse logs
// @Description Admins see every pulse log, other users only their own
// @Tags pulse-logs
// @Produce json
// @Param user query string false "User ID (UUID)"
// @Param team query string false "Team ID (UUID)"
// @Param year query int false "ISO year"
// @Param week_index query int false "ISO week"
// @Param mood query int false "Mood value"
// @Param workload query int false "Workload value"
// @Param ordering query string false "timestamp, year or week_index, prefixed with - for descending" default(-timestamp)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.PulseLogListResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Security BearerAuth
// @Router /pulse-logs [get]
func (h *PulseLogHandler) ListPulseLogs(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	filters := newQueryFilters(c)
	query := service.PulseLogQuery{
		User:      filters.uuidParam("user"),
		Team:      filters.uuidParam("team"),
		Year:      filters.intParam("year"),
		WeekIndex: filters.intParam("week_index"),
		Mood:      filters.intParam("mood"),
		Workload:  filters.intParam("workload"),
		Ordering:  c.Query("ordering"),
	}
	if !filters.ok() {
		return
	}

	page, pageSize := pageParams(c)
	logs, err := h.pulseLogService.List(c.Request.Context(), caller, query, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, logs)
}

// GetPulseLog handles GET /pulse-logs/:id
// @Summary Get pulse log by ID
// @Tags pulse-logs
// @Produce json
// @Param id path string true "Pulse log ID (UUID)"
// @Success 200 {object} service.PulseLogResponse
// @Failure 404 {object} ErrorResponse "Pulse log not found"
// @Security BearerAuth
// @Router /pulse-logs/{id} [get]
func (h *PulseLogHandler) GetPulseLog(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "pulse log")
	if !ok {
		return
	}

	log, err := h.pulseLogService.GetByID(c.Request.Context(), caller, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, log)
}

// CreatePulseLog handles POST /pulse-logs
// @Summary Submit a pulse log
// @Description year and week_index default to the current ISO week. team defaults to the caller's first team.
// @Tags pulse-logs
// @Accept json
// @Produce json
// @Param request body service.PulseLogRequest true "Pulse log"
// @Success 201 {object} service.PulseLogResponse
// @Failure 400 {object} ErrorResponse "Invalid input or no team"
// @Security BearerAuth
// @Router /pulse-logs [post]
func (h *PulseLogHandler) CreatePulseLog(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var req service.PulseLogRequest
	if !bindJSON(c, &req) {
		return
	}

	log, err := h.pulseLogService.Create(c.Request.Context(), caller, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, log)
}

// UpdatePulseLog handles PUT and PATCH /pulse-logs/:id
// @Summary Update a pulse log
// @Tags pulse-logs
// @Accept json
// @Produce json
// @Param id path string true "Pulse log ID (UUID)"
// @Param request body service.PulseLogRequest true "Pulse log"
// @Success 200 {object} service.PulseLogResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Pulse log not found"
// @Security BearerAuth
// @Router /pulse-logs/{id} [put]
func (h *PulseLogHandler) UpdatePulseLog(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "pulse log")
	if !ok {
		return
	}

	var req service.PulseLogRequest
	if !bindJSON(c, &req) {
		return
	}

	log, err := h.pulseLogService.Update(c.Request.Context(), caller, id, &req, isPartial(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, log)
}

// DeletePulseLog handles DELETE /pulse-logs/:id
// @Summary Delete a pulse log
// @Tags pulse-logs
// @Param id path string true "Pulse log ID (UUID)"
// @Success 204 "Pulse log deleted"
// @Failure 404 {object} ErrorResponse "Pulse log not found"
// @Security BearerAuth
// @Router /pulse-logs/{id} [delete]
func (h *PulseLogHandler) DeletePulseLog(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "pulse log")
	if !ok {
		return
	}

	if err := h.pulseLogService.Delete(c.Request.Context(), caller, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

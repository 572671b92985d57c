package handlers

import (
	"net/http"

	"teampulse-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MoodHandler handles HTTP requests for the mood catalog
type MoodHandler struct {
	moodService service.MoodServiceInterface
}

// NewMoodHandler creates a new mood handler
func NewMoodHandler(moodService service.MoodServiceInterface) *MoodHandler {
	return &MoodHandler{
		moodService: moodService,
	}
}

// ListMoods handles GET /moods
// @Summary List moods
// @Tags moods
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.MoodListResponse
// @Security BearerAuth
// @Router /moods [get]
func (h *MoodHandler) ListMoods(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	page, pageSize := pageParams(c)
	items, err := h.moodService.List(c.Request.Context(), caller, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetMood handles GET /moods/:id
// @Summary Get mood by ID
// @Tags moods
// @Produce json
// @Param id path string true "Mood ID (UUID)"
// @Success 200 {object} service.MoodResponse
// @Failure 404 {object} ErrorResponse "Mood not found"
// @Security BearerAuth
// @Router /moods/{id} [get]
func (h *MoodHandler) GetMood(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "mood")
	if !ok {
		return
	}

	item, err := h.moodService.GetByID(c.Request.Context(), caller, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// CreateMood handles POST /moods
// @Summary Create mood
// @Description Several moods may share a value
// @Tags moods
// @Accept json
// @Produce json
// @Param request body service.CatalogRequest true "Mood data"
// @Success 201 {object} service.MoodResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Admin only"
// @Security BearerAuth
// @Router /moods [post]
func (h *MoodHandler) CreateMood(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var req service.CatalogRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.moodService.Create(c.Request.Context(), caller, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// UpdateMood handles PUT and PATCH /moods/:id
// @Summary Update mood
// @Tags moods
// @Accept json
// @Produce json
// @Param id path string true "Mood ID (UUID)"
// @Param request body service.CatalogRequest true "Mood data"
// @Success 200 {object} service.MoodResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Mood not found"
// @Security BearerAuth
// @Router /moods/{id} [put]
func (h *MoodHandler) UpdateMood(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "mood")
	if !ok {
		return
	}

	var req service.CatalogRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.moodService.Update(c.Request.Context(), caller, id, &req, isPartial(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteMood handles DELETE /moods/:id
// @Summary Delete mood
// @Tags moods
// @Param id path string true "Mood ID (UUID)"
// @Success 204 "Mood deleted"
// @Failure 404 {object} ErrorResponse "Mood not found"
// @Security BearerAuth
// @Router /moods/{id} [delete]
func (h *MoodHandler) DeleteMood(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "mood")
	if !ok {
		return
	}

	if err := h.moodService.Delete(c.Request.Context(), caller, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

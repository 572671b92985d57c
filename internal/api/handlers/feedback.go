package handlers

import (
	"net/http"

	"teampulse-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FeedbackHandler handles HTTP requests for team feedback
type FeedbackHandler struct {
	feedbackService service.FeedbackServiceInterface
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(feedbackService service.FeedbackServiceInterface) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackService: feedbackService,
	}
}

// ListFeedback handles GET /feedback
// @Summary List feedback
// @Description Feedback for the caller's teams plus the caller's own. Anonymous entries never show the author's name.
// @Tags feedback
// @Produce json
// @Param team query string false "Team ID (UUID)"
// @Param is_anonymous query bool false "Anonymous entries only, or named entries only"
// @Param ordering query string false "created_at or -created_at" default(-created_at)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.FeedbackListResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Security BearerAuth
// @Router /feedback [get]
func (h *FeedbackHandler) ListFeedback(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	filters := newQueryFilters(c)
	query := service.FeedbackQuery{
		Team:        filters.uuidParam("team"),
		IsAnonymous: filters.boolParam("is_anonymous"),
		Ordering:    c.Query("ordering"),
	}
	if !filters.ok() {
		return
	}

	page, pageSize := pageParams(c)
	feedback, err := h.feedbackService.List(c.Request.Context(), caller, query, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, feedback)
}

// GetFeedback handles GET /feedback/:id
// @Summary Get feedback by ID
// @Tags feedback
// @Produce json
// @Param id path string true "Feedback ID (UUID)"
// @Success 200 {object} service.FeedbackResponse
// @Failure 404 {object} ErrorResponse "Feedback not found"
// @Security BearerAuth
// @Router /feedback/{id} [get]
func (h *FeedbackHandler) GetFeedback(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "feedback")
	if !ok {
		return
	}

	feedback, err := h.feedbackService.GetByID(c.Request.Context(), caller, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, feedback)
}

// CreateFeedback handles POST /feedback
// @Summary Submit feedback
// @Tags feedback
// @Accept json
// @Produce json
// @Param request body service.FeedbackRequest true "Feedback"
// @Success 201 {object} service.FeedbackResponse
// @Failure 400 {object} ErrorResponse "Invalid input or no team"
// @Security BearerAuth
// @Router /feedback [post]
func (h *FeedbackHandler) CreateFeedback(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var req service.FeedbackRequest
	if !bindJSON(c, &req) {
		return
	}

	feedback, err := h.feedbackService.Create(c.Request.Context(), caller, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, feedback)
}

// DeleteFeedback handles DELETE /feedback/:id
// @Summary Delete feedback
// @Description Authors may delete their own feedback, admins any
// @Tags feedback
// @Param id path string true "Feedback ID (UUID)"
// @Success 204 "Feedback deleted"
// @Failure 404 {object} ErrorResponse "Feedback not found"
// @Security BearerAuth
// @Router /feedback/{id} [delete]
func (h *FeedbackHandler) DeleteFeedback(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "feedback")
	if !ok {
		return
	}

	if err := h.feedbackService.Delete(c.Request.Context(), caller, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

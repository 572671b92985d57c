package handlers

import (
	"net/http"

	"teampulse-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkloadHandler handles HTTP requests for the workload catalog
type WorkloadHandler struct {
	workloadService service.WorkloadServiceInterface
}

// NewWorkloadHandler creates a new workload handler
func NewWorkloadHandler(workloadService service.WorkloadServiceInterface) *WorkloadHandler {
	return &WorkloadHandler{
		workloadService: workloadService,
	}
}

// ListWorkloads handles GET /workloads
// @Summary List workloads
// @Tags workloads
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.WorkloadListResponse
// @Security BearerAuth
// @Router /workloads [get]
func (h *WorkloadHandler) ListWorkloads(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	page, pageSize := pageParams(c)
	items, err := h.workloadService.List(c.Request.Context(), caller, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetWorkload handles GET /workloads/:id
// @Summary Get workload by ID
// @Tags workloads
// @Produce json
// @Param id path string true "Workload ID (UUID)"
// @Success 200 {object} service.WorkloadResponse
// @Failure 404 {object} ErrorResponse "Workload not found"
// @Security BearerAuth
// @Router /workloads/{id} [get]
func (h *WorkloadHandler) GetWorkload(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "workload")
	if !ok {
		return
	}

	item, err := h.workloadService.GetByID(c.Request.Context(), caller, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// CreateWorkload handles POST /workloads
// @Summary Create workload
// @Description Workload values are unique
// @Tags workloads
// @Accept json
// @Produce json
// @Param request body service.CatalogRequest true "Workload data"
// @Success 201 {object} service.WorkloadResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Admin only"
// @Security BearerAuth
// @Router /workloads [post]
func (h *WorkloadHandler) CreateWorkload(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var req service.CatalogRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.workloadService.Create(c.Request.Context(), caller, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// UpdateWorkload handles PUT and PATCH /workloads/:id
// @Summary Update workload
// @Tags workloads
// @Accept json
// @Produce json
// @Param id path string true "Workload ID (UUID)"
// @Param request body service.CatalogRequest true "Workload data"
// @Success 200 {object} service.WorkloadResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Workload not found"
// @Security BearerAuth
// @Router /workloads/{id} [put]
func (h *WorkloadHandler) UpdateWorkload(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "workload")
	if !ok {
		return
	}

	var req service.CatalogRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.workloadService.Update(c.Request.Context(), caller, id, &req, isPartial(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteWorkload handles DELETE /workloads/:id
// @Summary Delete workload
// @Tags workloads
// @Param id path string true "Workload ID (UUID)"
// @Success 204 "Workload deleted"
// @Failure 404 {object} ErrorResponse "Workload not found"
// @Security BearerAuth
// @Router /workloads/{id} [delete]
func (h *WorkloadHandler) DeleteWorkload(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "workload")
	if !ok {
		return
	}

	if err := h.workloadService.Delete(c.Request.Context(), caller, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

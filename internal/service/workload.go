package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"teampulse-backend/internal/access"
	"teampulse-backend/internal/database/models"
	apperrors "teampulse-backend/internal/errors"
	"teampulse-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const workloadExistsMessage = "workload with this value already exists"

// WorkloadService handles business logic for the workload scale
type WorkloadService struct {
	repo      repository.WorkloadRepositoryInterface
	validator *validator.Validate
}

// Ensure WorkloadService implements WorkloadServiceInterface
var _ WorkloadServiceInterface = (*WorkloadService)(nil)

// NewWorkloadService creates a new workload service
func NewWorkloadService(repo repository.WorkloadRepositoryInterface, validator *validator.Validate) *WorkloadService {
	return &WorkloadService{
		repo:      repo,
		validator: validator,
	}
}

// WorkloadResponse represents a workload in API responses
type WorkloadResponse struct {
	ID          uuid.UUID `json:"id"`
	Value       int       `json:"value"`
	Description string    `json:"description"`
	ImageURL    *string   `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// WorkloadListResponse represents a paginated list of workloads
type WorkloadListResponse struct {
	Workloads []WorkloadResponse `json:"workloads"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// List returns workloads ordered by value
func (s *WorkloadService) List(ctx context.Context, caller access.Caller, page, pageSize int) (*WorkloadListResponse, error) {
	if err := access.Authorize(caller, access.ResourceWorkload, access.ActionRead); err != nil {
		return nil, err
	}

	page, pageSize, offset := normalizePage(page, pageSize)
	workloads, total, err := s.repo.GetAll(ctx, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list workloads: %w", err)
	}

	responses := make([]WorkloadResponse, len(workloads))
	for i := range workloads {
		responses[i] = toWorkloadResponse(&workloads[i])
	}

	return &WorkloadListResponse{
		Workloads: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// GetByID returns a single workload
func (s *WorkloadService) GetByID(ctx context.Context, caller access.Caller, id uuid.UUID) (*WorkloadResponse, error) {
	if err := access.Authorize(caller, access.ResourceWorkload, access.ActionRead); err != nil {
		return nil, err
	}

	workload, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrWorkloadNotFound, "workload")
	}

	resp := toWorkloadResponse(workload)
	return &resp, nil
}

// Create adds a workload. Values are unique.
func (s *WorkloadService) Create(ctx context.Context, caller access.Caller, req *CatalogRequest) (*WorkloadResponse, error) {
	if err := access.Authorize(caller, access.ResourceWorkload, access.ActionCreate); err != nil {
		return nil, err
	}
	if err := validateCatalogRequest(s.validator, req, false); err != nil {
		return nil, err
	}
	if err := s.checkValueFree(ctx, *req.Value, uuid.Nil); err != nil {
		return nil, err
	}

	workload := &models.Workload{
		Value:       *req.Value,
		Description: strings.TrimSpace(*req.Description),
		ImageURL:    req.ImageURL,
	}
	if err := s.repo.Create(ctx, workload); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.FieldErrors{"value": workloadExistsMessage}
		}
		return nil, fmt.Errorf("failed to create workload: %w", err)
	}

	resp := toWorkloadResponse(workload)
	return &resp, nil
}

// Update changes a workload. partial selects PATCH semantics.
func (s *WorkloadService) Update(ctx context.Context, caller access.Caller, id uuid.UUID, req *CatalogRequest, partial bool) (*WorkloadResponse, error) {
	if err := access.Authorize(caller, access.ResourceWorkload, access.ActionUpdate); err != nil {
		return nil, err
	}
	if err := validateCatalogRequest(s.validator, req, partial); err != nil {
		return nil, err
	}

	workload, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrWorkloadNotFound, "workload")
	}

	if req.Value != nil && *req.Value != workload.Value {
		if err := s.checkValueFree(ctx, *req.Value, workload.ID); err != nil {
			return nil, err
		}
		workload.Value = *req.Value
	}
	if req.Description != nil {
		workload.Description = strings.TrimSpace(*req.Description)
	}
	if req.ImageURL != nil {
		workload.ImageURL = req.ImageURL
	}

	if err := s.repo.Update(ctx, workload); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.FieldErrors{"value": workloadExistsMessage}
		}
		return nil, fmt.Errorf("failed to update workload: %w", err)
	}

	resp := toWorkloadResponse(workload)
	return &resp, nil
}

// Delete removes a workload
func (s *WorkloadService) Delete(ctx context.Context, caller access.Caller, id uuid.UUID) error {
	if err := access.Authorize(caller, access.ResourceWorkload, access.ActionDelete); err != nil {
		return err
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return lookupError(err, apperrors.ErrWorkloadNotFound, "workload")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete workload: %w", err)
	}
	return nil
}

// checkValueFree rejects a value already held by a workload other than self
func (s *WorkloadService) checkValueFree(ctx context.Context, value int, self uuid.UUID) error {
	existing, err := s.repo.GetByValue(ctx, value)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check workload value: %w", err)
	}
	if existing.ID != self {
		return apperrors.FieldErrors{"value": workloadExistsMessage}
	}
	return nil
}

func toWorkloadResponse(workload *models.Workload) WorkloadResponse {
	return WorkloadResponse{
		ID:          workload.ID,
		Value:       workload.Value,
		Description: workload.Description,
		ImageURL:    workload.ImageURL,
		CreatedAt:   workload.CreatedAt,
	}
}

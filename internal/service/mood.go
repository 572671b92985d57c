package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"teampulse-backend/internal/access"
	"teampulse-backend/internal/database/models"
	apperrors "teampulse-backend/internal/errors"
	"teampulse-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// MoodService handles business logic for the mood scale
type MoodService struct {
	repo      repository.MoodRepositoryInterface
	validator *validator.Validate
}

// Ensure MoodService implements MoodServiceInterface
var _ MoodServiceInterface = (*MoodService)(nil)

// NewMoodService creates a new mood service
func NewMoodService(repo repository.MoodRepositoryInterface, validator *validator.Validate) *MoodService {
	return &MoodService{
		repo:      repo,
		validator: validator,
	}
}

// CatalogRequest is the body for creating or updating a mood or workload entry
type CatalogRequest struct {
	Value       *int    `json:"value" example:"3"`
	Description *string `json:"description" validate:"omitempty,max=255" example:"Neutral"`
	ImageURL    *string `json:"image_url" example:"https://cdn.example.com/moods/3.png"`
}

// MoodResponse represents a mood in API responses
type MoodResponse struct {
	ID          uuid.UUID `json:"id"`
	Value       int       `json:"value"`
	Description string    `json:"description"`
	ImageURL    *string   `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// MoodListResponse represents a paginated list of moods
type MoodListResponse struct {
	Moods    []MoodResponse `json:"moods"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// validateCatalogRequest checks a catalog body. A full write needs value and description.
func validateCatalogRequest(v *validator.Validate, req *CatalogRequest, partial bool) error {
	missing := apperrors.FieldErrors{}
	if !partial {
		requireInt(missing, "value", req.Value)
	}
	if !partial || req.Description != nil {
		requireString(missing, "description", req.Description)
	}
	return validateRequest(v, req, missing)
}

// List returns moods ordered by value
func (s *MoodService) List(ctx context.Context, caller access.Caller, page, pageSize int) (*MoodListResponse, error) {
	if err := access.Authorize(caller, access.ResourceMood, access.ActionRead); err != nil {
		return nil, err
	}

	page, pageSize, offset := normalizePage(page, pageSize)
	moods, total, err := s.repo.GetAll(ctx, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list moods: %w", err)
	}

	responses := make([]MoodResponse, len(moods))
	for i := range moods {
		responses[i] = toMoodResponse(&moods[i])
	}

	return &MoodListResponse{
		Moods:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetByID returns a single mood
func (s *MoodService) GetByID(ctx context.Context, caller access.Caller, id uuid.UUID) (*MoodResponse, error) {
	if err := access.Authorize(caller, access.ResourceMood, access.ActionRead); err != nil {
		return nil, err
	}

	mood, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrMoodNotFound, "mood")
	}

	resp := toMoodResponse(mood)
	return &resp, nil
}

// Create adds a mood. Values may repeat.
func (s *MoodService) Create(ctx context.Context, caller access.Caller, req *CatalogRequest) (*MoodResponse, error) {
	if err := access.Authorize(caller, access.ResourceMood, access.ActionCreate); err != nil {
		return nil, err
	}
	if err := validateCatalogRequest(s.validator, req, false); err != nil {
		return nil, err
	}

	mood := &models.Mood{
		Value:       *req.Value,
		Description: strings.TrimSpace(*req.Description),
		ImageURL:    req.ImageURL,
	}
	if err := s.repo.Create(ctx, mood); err != nil {
		return nil, fmt.Errorf("failed to create mood: %w", err)
	}

	resp := toMoodResponse(mood)
	return &resp, nil
}

// Update changes a mood. partial selects PATCH semantics.
func (s *MoodService) Update(ctx context.Context, caller access.Caller, id uuid.UUID, req *CatalogRequest, partial bool) (*MoodResponse, error) {
	if err := access.Authorize(caller, access.ResourceMood, access.ActionUpdate); err != nil {
		return nil, err
	}
	if err := validateCatalogRequest(s.validator, req, partial); err != nil {
		return nil, err
	}

	mood, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrMoodNotFound, "mood")
	}

	if req.Value != nil {
		mood.Value = *req.Value
	}
	if req.Description != nil {
		mood.Description = strings.TrimSpace(*req.Description)
	}
	if req.ImageURL != nil {
		mood.ImageURL = req.ImageURL
	}

	if err := s.repo.Update(ctx, mood); err != nil {
		return nil, fmt.Errorf("failed to update mood: %w", err)
	}

	resp := toMoodResponse(mood)
	return &resp, nil
}

// Delete removes a mood
func (s *MoodService) Delete(ctx context.Context, caller access.Caller, id uuid.UUID) error {
	if err := access.Authorize(caller, access.ResourceMood, access.ActionDelete); err != nil {
		return err
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return lookupError(err, apperrors.ErrMoodNotFound, "mood")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete mood: %w", err)
	}
	return nil
}

func toMoodResponse(mood *models.Mood) MoodResponse {
	return MoodResponse{
		ID:          mood.ID,
		Value:       mood.Value,
		Description: mood.Description,
		ImageURL:    mood.ImageURL,
		CreatedAt:   mood.CreatedAt,
	}
}

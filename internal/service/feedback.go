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

const (
	anonymousUsername = "Anonymous"
	generalTeamName   = "General"
)

// FeedbackService handles business logic for team feedback
type FeedbackService struct {
	repo      repository.FeedbackRepositoryInterface
	teams     teamResolver
	validator *validator.Validate
}

// Ensure FeedbackService implements FeedbackServiceInterface
var _ FeedbackServiceInterface = (*FeedbackService)(nil)

// NewFeedbackService creates a new feedback service
func NewFeedbackService(repo repository.FeedbackRepositoryInterface, teamRepo repository.TeamRepositoryInterface, validator *validator.Validate) *FeedbackService {
	return &FeedbackService{
		repo:      repo,
		teams:     teamResolver{teams: teamRepo},
		validator: validator,
	}
}

// FeedbackRequest is the body for submitting feedback
type FeedbackRequest struct {
	Message     string     `json:"message" validate:"notblank" example:"Standups run long"`
	IsAnonymous bool       `json:"is_anonymous" example:"false"`
	Team        *uuid.UUID `json:"team"`
}

// FeedbackQuery holds the list filters. Nil fields are ignored.
type FeedbackQuery struct {
	Team        *uuid.UUID
	IsAnonymous *bool
	Ordering    string
}

// FeedbackResponse represents a feedback entry in API responses. User is only
// filled in for admin readers.
type FeedbackResponse struct {
	ID          uuid.UUID  `json:"id"`
	Username    string     `json:"username"`
	User        *uuid.UUID `json:"user,omitempty"`
	Team        *uuid.UUID `json:"team"`
	TeamName    string     `json:"team_name"`
	Message     string     `json:"message"`
	IsAnonymous bool       `json:"is_anonymous"`
	CreatedAt   time.Time  `json:"created_at"`
}

// FeedbackListResponse represents a paginated list of feedback entries
type FeedbackListResponse struct {
	Feedback []FeedbackResponse `json:"feedback"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}

// List returns the feedback the caller may see: their teams' and their own
func (s *FeedbackService) List(ctx context.Context, caller access.Caller, query FeedbackQuery, page, pageSize int) (*FeedbackListResponse, error) {
	if err := access.Authorize(caller, access.ResourceFeedback, access.ActionRead); err != nil {
		return nil, err
	}

	filter := repository.FeedbackFilter{
		TeamID:      query.Team,
		IsAnonymous: query.IsAnonymous,
		Ordering:    query.Ordering,
	}

	page, pageSize, offset := normalizePage(page, pageSize)
	items, total, err := s.repo.List(ctx, filter, access.Scope(caller, access.ResourceFeedback, access.ActionRead), pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}

	responses := make([]FeedbackResponse, len(items))
	for i := range items {
		responses[i] = toFeedbackResponse(caller, &items[i])
	}

	return &FeedbackListResponse{
		Feedback: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Create submits feedback from the caller
func (s *FeedbackService) Create(ctx context.Context, caller access.Caller, req *FeedbackRequest) (*FeedbackResponse, error) {
	if err := access.Authorize(caller, access.ResourceFeedback, access.ActionCreate); err != nil {
		return nil, err
	}

	if err := validateRequest(s.validator, req, nil); err != nil {
		return nil, err
	}
	message := strings.TrimSpace(req.Message)

	teamID, err := s.teams.resolve(ctx, caller, access.ResourceFeedback, req.Team)
	if err != nil {
		return nil, err
	}

	feedback := &models.TeamFeedback{
		UserID:      caller.UserID,
		TeamID:      teamID,
		Message:     message,
		IsAnonymous: req.IsAnonymous,
	}
	if err := s.repo.Create(ctx, feedback); err != nil {
		return nil, fmt.Errorf("failed to create feedback: %w", err)
	}

	created, err := s.repo.GetByID(ctx, feedback.ID, nil)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrFeedbackNotFound, "feedback")
	}

	resp := toFeedbackResponse(caller, created)
	return &resp, nil
}

// GetByID returns a feedback entry the caller may see
func (s *FeedbackService) GetByID(ctx context.Context, caller access.Caller, id uuid.UUID) (*FeedbackResponse, error) {
	if err := access.Authorize(caller, access.ResourceFeedback, access.ActionRead); err != nil {
		return nil, err
	}

	feedback, err := s.repo.GetByID(ctx, id, access.Scope(caller, access.ResourceFeedback, access.ActionRead))
	if err != nil {
		return nil, lookupError(err, apperrors.ErrFeedbackNotFound, "feedback")
	}

	resp := toFeedbackResponse(caller, feedback)
	return &resp, nil
}

// Delete removes feedback the caller wrote. Admins may delete any entry.
func (s *FeedbackService) Delete(ctx context.Context, caller access.Caller, id uuid.UUID) error {
	if err := access.Authorize(caller, access.ResourceFeedback, access.ActionDelete); err != nil {
		return err
	}

	if _, err := s.repo.GetByID(ctx, id, access.Scope(caller, access.ResourceFeedback, access.ActionDelete)); err != nil {
		return lookupError(err, apperrors.ErrFeedbackNotFound, "feedback")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete feedback: %w", err)
	}
	return nil
}

func toFeedbackResponse(caller access.Caller, feedback *models.TeamFeedback) FeedbackResponse {
	resp := FeedbackResponse{
		ID:          feedback.ID,
		Username:    anonymousUsername,
		Team:        feedback.TeamID,
		TeamName:    generalTeamName,
		Message:     feedback.Message,
		IsAnonymous: feedback.IsAnonymous,
		CreatedAt:   feedback.CreatedAt,
	}
	if !feedback.IsAnonymous && feedback.User != nil {
		resp.Username = feedback.User.Username
	}
	if feedback.Team != nil {
		resp.TeamName = feedback.Team.TeamName
	}
	if caller.IsStaff {
		userID := feedback.UserID
		resp.User = &userID
	}
	return resp
}

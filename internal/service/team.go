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

// TeamService handles business logic for teams and their members
type TeamService struct {
	repo      repository.TeamRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	events    EventRecorder
	validator *validator.Validate
}

// Ensure TeamService implements TeamServiceInterface
var _ TeamServiceInterface = (*TeamService)(nil)

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, userRepo repository.UserRepositoryInterface, events EventRecorder, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:      repo,
		userRepo:  userRepo,
		events:    events,
		validator: validator,
	}
}

// TeamRequest is the body for creating or renaming a team
type TeamRequest struct {
	TeamName *string `json:"team_name" validate:"omitempty,max=255" example:"Platform"`
}

// TeamMemberRequest names the user to add to or remove from a team
type TeamMemberRequest struct {
	UserID *uuid.UUID `json:"user_id" example:"7d9f4c2e-1b3a-4f5e-9c8d-2a1b3c4d5e6f"`
}

// PublicTeamResponse is the unauthenticated team listing entry
type PublicTeamResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// TeamMemberResponse is a team member as shown inside a team
type TeamMemberResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	IsStaff   bool      `json:"is_staff"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// TeamResponse represents a team with its members
type TeamResponse struct {
	ID          uuid.UUID            `json:"id"`
	TeamName    string               `json:"team_name"`
	Members     []TeamMemberResponse `json:"members"`
	MemberCount int                  `json:"member_count"`
	CreatedAt   time.Time            `json:"created_at"`
}

// TeamListResponse represents a paginated list of teams
type TeamListResponse struct {
	Teams    []TeamResponse `json:"teams"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// StatusResponse acknowledges a membership change
type StatusResponse struct {
	Status string `json:"status" example:"member added"`
}

// ListPublic returns every team's id and name. No caller is required.
func (s *TeamService) ListPublic(ctx context.Context) ([]PublicTeamResponse, error) {
	teams, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	responses := make([]PublicTeamResponse, len(teams))
	for i, team := range teams {
		responses[i] = PublicTeamResponse{ID: team.ID, Name: team.TeamName}
	}
	return responses, nil
}

// List returns teams with their members
func (s *TeamService) List(ctx context.Context, caller access.Caller, page, pageSize int) (*TeamListResponse, error) {
	if err := access.Authorize(caller, access.ResourceTeam, access.ActionRead); err != nil {
		return nil, err
	}

	page, pageSize, offset := normalizePage(page, pageSize)
	teams, total, err := s.repo.GetAll(ctx, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	ids := make([]uuid.UUID, len(teams))
	for i, team := range teams {
		ids[i] = team.ID
	}
	members, err := s.repo.GetMembers(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get team members: %w", err)
	}

	responses := make([]TeamResponse, len(teams))
	for i := range teams {
		responses[i] = toTeamResponse(&teams[i], members[teams[i].ID])
	}

	return &TeamListResponse{
		Teams:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetByID returns a team with its members
func (s *TeamService) GetByID(ctx context.Context, caller access.Caller, id uuid.UUID) (*TeamResponse, error) {
	if err := access.Authorize(caller, access.ResourceTeam, access.ActionRead); err != nil {
		return nil, err
	}

	team, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrTeamNotFound, "team")
	}
	return s.withMembers(ctx, team)
}

// Create adds a team
func (s *TeamService) Create(ctx context.Context, caller access.Caller, req *TeamRequest) (*TeamResponse, error) {
	if err := access.Authorize(caller, access.ResourceTeam, access.ActionCreate); err != nil {
		return nil, err
	}
	if err := s.validateTeamRequest(req, false); err != nil {
		return nil, err
	}

	team := &models.Team{TeamName: strings.TrimSpace(*req.TeamName)}
	if err := s.repo.Create(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	resp := toTeamResponse(team, nil)
	return &resp, nil
}

// Update renames a team. partial selects PATCH semantics.
func (s *TeamService) Update(ctx context.Context, caller access.Caller, id uuid.UUID, req *TeamRequest, partial bool) (*TeamResponse, error) {
	if err := access.Authorize(caller, access.ResourceTeam, access.ActionUpdate); err != nil {
		return nil, err
	}
	if err := s.validateTeamRequest(req, partial); err != nil {
		return nil, err
	}

	team, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrTeamNotFound, "team")
	}

	if req.TeamName != nil {
		team.TeamName = strings.TrimSpace(*req.TeamName)
		if err := s.repo.Update(ctx, team); err != nil {
			return nil, fmt.Errorf("failed to update team: %w", err)
		}
	}
	return s.withMembers(ctx, team)
}

// Delete removes a team. Memberships go with it; pulse logs and feedback keep a null team.
func (s *TeamService) Delete(ctx context.Context, caller access.Caller, id uuid.UUID) error {
	if err := access.Authorize(caller, access.ResourceTeam, access.ActionDelete); err != nil {
		return err
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return lookupError(err, apperrors.ErrTeamNotFound, "team")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

// AddMember puts a user in a team. Adding an existing member succeeds.
func (s *TeamService) AddMember(ctx context.Context, caller access.Caller, teamID uuid.UUID, req *TeamMemberRequest) (*StatusResponse, error) {
	team, user, err := s.resolveMembership(ctx, caller, teamID, req)
	if err != nil {
		return nil, err
	}

	added, err := s.repo.AddMember(ctx, team.ID, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to add team member: %w", err)
	}
	if added {
		s.events.Record(ctx, models.EventTeamMemberAdded, membershipMetadata(caller, team, user))
	}
	return &StatusResponse{Status: "member added"}, nil
}

// RemoveMember takes a user out of a team. Removing a non-member succeeds.
func (s *TeamService) RemoveMember(ctx context.Context, caller access.Caller, teamID uuid.UUID, req *TeamMemberRequest) (*StatusResponse, error) {
	team, user, err := s.resolveMembership(ctx, caller, teamID, req)
	if err != nil {
		return nil, err
	}

	removed, err := s.repo.RemoveMember(ctx, team.ID, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to remove team member: %w", err)
	}
	if removed {
		s.events.Record(ctx, models.EventTeamMemberRemoved, membershipMetadata(caller, team, user))
	}
	return &StatusResponse{Status: "member removed"}, nil
}

func (s *TeamService) resolveMembership(ctx context.Context, caller access.Caller, teamID uuid.UUID, req *TeamMemberRequest) (*models.Team, *models.User, error) {
	if err := access.Authorize(caller, access.ResourceTeam, access.ActionUpdate); err != nil {
		return nil, nil, err
	}

	team, err := s.repo.GetByID(ctx, teamID)
	if err != nil {
		return nil, nil, lookupError(err, apperrors.ErrTeamNotFound, "team")
	}

	if req.UserID == nil {
		return nil, nil, apperrors.FieldErrors{"user_id": requiredMessage}
	}
	user, err := s.userRepo.GetByID(ctx, *req.UserID)
	if err != nil {
		return nil, nil, lookupError(err, apperrors.ErrUserNotFound, "user")
	}
	return team, user, nil
}

func (s *TeamService) validateTeamRequest(req *TeamRequest, partial bool) error {
	missing := apperrors.FieldErrors{}
	if !partial || req.TeamName != nil {
		requireString(missing, "team_name", req.TeamName)
	}
	return validateRequest(s.validator, req, missing)
}

func (s *TeamService) withMembers(ctx context.Context, team *models.Team) (*TeamResponse, error) {
	members, err := s.repo.GetMembers(ctx, []uuid.UUID{team.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to get team members: %w", err)
	}

	resp := toTeamResponse(team, members[team.ID])
	return &resp, nil
}

func membershipMetadata(caller access.Caller, team *models.Team, user *models.User) map[string]interface{} {
	return map[string]interface{}{
		"team_id":    team.ID.String(),
		"team_name":  team.TeamName,
		"user_id":    user.ID.String(),
		"username":   user.Username,
		"changed_by": caller.Username,
	}
}

func toTeamResponse(team *models.Team, members []models.User) TeamResponse {
	memberResponses := make([]TeamMemberResponse, len(members))
	for i, m := range members {
		memberResponses[i] = TeamMemberResponse{
			ID:        m.ID,
			Email:     m.Email,
			Username:  m.Username,
			FirstName: m.FirstName,
			LastName:  m.LastName,
			IsStaff:   m.IsStaff,
			IsActive:  m.IsActive,
			CreatedAt: m.CreatedAt,
		}
	}

	return TeamResponse{
		ID:          team.ID,
		TeamName:    team.TeamName,
		Members:     memberResponses,
		MemberCount: len(members),
		CreatedAt:   team.CreatedAt,
	}
}

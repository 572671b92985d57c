package handlers

import (
	"context"
	"net/http"

	"teampulse-backend/internal/access"
	"teampulse-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// ListPublicTeams handles GET /teams/public
// @Summary List team names
// @Description Id and name of every team, for the registration form. No authentication required.
// @Tags teams
// @Produce json
// @Success 200 {array} service.PublicTeamResponse
// @Router /teams/public [get]
func (h *TeamHandler) ListPublicTeams(c *gin.Context) {
	teams, err := h.teamService.ListPublic(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// ListTeams handles GET /teams
// @Summary List teams
// @Description List teams with their members
// @Tags teams
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.TeamListResponse
// @Security BearerAuth
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	page, pageSize := pageParams(c)
	teams, err := h.teamService.List(c.Request.Context(), caller, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// GetTeam handles GET /teams/:id
// @Summary Get team by ID
// @Tags teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} service.TeamResponse
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "team")
	if !ok {
		return
	}

	team, err := h.teamService.GetByID(c.Request.Context(), caller, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// CreateTeam handles POST /teams
// @Summary Create a new team
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.TeamRequest true "Team data"
// @Success 201 {object} service.TeamResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Admin only"
// @Security BearerAuth
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var req service.TeamRequest
	if !bindJSON(c, &req) {
		return
	}

	team, err := h.teamService.Create(c.Request.Context(), caller, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// UpdateTeam handles PUT and PATCH /teams/:id
// @Summary Update team
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param team body service.TeamRequest true "Team data"
// @Success 200 {object} service.TeamResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "team")
	if !ok {
		return
	}

	var req service.TeamRequest
	if !bindJSON(c, &req) {
		return
	}

	team, err := h.teamService.Update(c.Request.Context(), caller, id, &req, isPartial(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// DeleteTeam handles DELETE /teams/:id
// @Summary Delete team
// @Description Pulse logs and feedback filed under the team are kept with no team
// @Tags teams
// @Param id path string true "Team ID (UUID)"
// @Success 204 "Team deleted"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "team")
	if !ok {
		return
	}

	if err := h.teamService.Delete(c.Request.Context(), caller, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AddMember handles POST /teams/:id/add-member
// @Summary Add a team member
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param request body service.TeamMemberRequest true "User to add"
// @Success 200 {object} service.StatusResponse
// @Failure 400 {object} ErrorResponse "Missing or unknown user_id"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id}/add-member [post]
func (h *TeamHandler) AddMember(c *gin.Context) {
	h.changeMembership(c, h.teamService.AddMember)
}

// RemoveMember handles POST /teams/:id/remove-member
// @Summary Remove a team member
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param request body service.TeamMemberRequest true "User to remove"
// @Success 200 {object} service.StatusResponse
// @Failure 400 {object} ErrorResponse "Missing user_id or user not a member"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id}/remove-member [post]
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	h.changeMembership(c, h.teamService.RemoveMember)
}

type membershipChange func(ctx context.Context, caller access.Caller, teamID uuid.UUID, req *service.TeamMemberRequest) (*service.StatusResponse, error)

func (h *TeamHandler) changeMembership(c *gin.Context, change membershipChange) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "team")
	if !ok {
		return
	}

	var req service.TeamMemberRequest
	if !bindJSON(c, &req) {
		return
	}

	status, err := change(c.Request.Context(), caller, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

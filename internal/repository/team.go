package repository

import (
	"context"

	"teampulse-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TeamRepository handles database operations for teams and their memberships
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(ctx context.Context, team *models.Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.WithContext(ctx).First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetAll retrieves all teams with pagination, ordered by name
func (r *TeamRepository) GetAll(ctx context.Context, limit, offset int) ([]models.Team, int64, error) {
	var teams []models.Team
	var total int64

	db := r.db.WithContext(ctx)

	// Get total count
	if err := db.Model(&models.Team{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := db.Order("team_name").Order("id").Limit(limit).Offset(offset).Find(&teams).Error
	if err != nil {
		return nil, 0, err
	}

	return teams, total, nil
}

// ListAll retrieves every team ordered by name, for the public listing
func (r *TeamRepository) ListAll(ctx context.Context) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.WithContext(ctx).Select("id", "team_name").Order("team_name").Order("id").Find(&teams).Error
	return teams, err
}

// Update updates a team
func (r *TeamRepository) Update(ctx context.Context, team *models.Team) error {
	return r.db.WithContext(ctx).Save(team).Error
}

// Delete deletes a team. Memberships cascade; pulse logs and feedback keep a null team.
func (r *TeamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Team{}, "id = ?", id).Error
}

// AddMember adds the user to the team. Adding an existing member is a no-op.
func (r *TeamRepository) AddMember(ctx context.Context, teamID, userID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.TeamMember{TeamID: teamID, UserID: userID})
	return result.RowsAffected > 0, result.Error
}

// RemoveMember removes the user from the team. Removing a non-member is a no-op.
func (r *TeamRepository) RemoveMember(ctx context.Context, teamID, userID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Delete(&models.TeamMember{})
	return result.RowsAffected > 0, result.Error
}

// GetMembers returns the members of each given team, oldest membership first
func (r *TeamRepository) GetMembers(ctx context.Context, teamIDs []uuid.UUID) (map[uuid.UUID][]models.User, error) {
	members := make(map[uuid.UUID][]models.User, len(teamIDs))
	if len(teamIDs) == 0 {
		return members, nil
	}

	type memberRow struct {
		models.User
		TeamID uuid.UUID
	}
	var rows []memberRow
	err := r.db.WithContext(ctx).
		Table("users").
		Select("users.*, team_members.team_id").
		Joins("JOIN team_members ON team_members.user_id = users.id").
		Where("team_members.team_id IN ?", teamIDs).
		Order("team_members.joined_at").
		Order("users.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		members[row.TeamID] = append(members[row.TeamID], row.User)
	}
	return members, nil
}

// ListTeamIDsForUser returns the user's team ids, earliest membership first (ties by team id)
func (r *TeamRepository) ListTeamIDsForUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&models.TeamMember{}).
		Where("user_id = ?", userID).
		Order("joined_at").
		Order("team_id").
		Pluck("team_id", &ids).Error
	return ids, err
}

// GetTeamsForUsers returns each user's teams, earliest membership first
func (r *TeamRepository) GetTeamsForUsers(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID][]models.Team, error) {
	teams := make(map[uuid.UUID][]models.Team, len(userIDs))
	if len(userIDs) == 0 {
		return teams, nil
	}

	type teamRow struct {
		models.Team
		UserID uuid.UUID
	}
	var rows []teamRow
	err := r.db.WithContext(ctx).
		Table("teams").
		Select("teams.*, team_members.user_id").
		Joins("JOIN team_members ON team_members.team_id = teams.id").
		Where("team_members.user_id IN ?", userIDs).
		Order("team_members.joined_at").
		Order("teams.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		teams[row.UserID] = append(teams[row.UserID], row.Team)
	}
	return teams, nil
}

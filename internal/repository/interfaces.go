package repository

import (
	"context"

	"teampulse-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	GetAll(ctx context.Context, limit, offset int) ([]models.User, int64, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*models.User, error)
	UpdateWithStaffGuard(ctx context.Context, id uuid.UUID, updates map[string]interface{}, guard StaffGuard) (*models.User, error)
	DeleteWithStaffGuard(ctx context.Context, id uuid.UUID, guard StaffGuard) (*models.User, error)
	CountStaff(ctx context.Context) (int64, error)
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error)
	GetAll(ctx context.Context, limit, offset int) ([]models.Team, int64, error)
	ListAll(ctx context.Context) ([]models.Team, error)
	Update(ctx context.Context, team *models.Team) error
	Delete(ctx context.Context, id uuid.UUID) error
	AddMember(ctx context.Context, teamID, userID uuid.UUID) (bool, error)
	RemoveMember(ctx context.Context, teamID, userID uuid.UUID) (bool, error)
	GetMembers(ctx context.Context, teamIDs []uuid.UUID) (map[uuid.UUID][]models.User, error)
	ListTeamIDsForUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	GetTeamsForUsers(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID][]models.Team, error)
}

// MoodRepositoryInterface defines the interface for mood repository operations
type MoodRepositoryInterface interface {
	Create(ctx context.Context, mood *models.Mood) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Mood, error)
	GetAll(ctx context.Context, limit, offset int) ([]models.Mood, int64, error)
	Update(ctx context.Context, mood *models.Mood) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// WorkloadRepositoryInterface defines the interface for workload repository operations
type WorkloadRepositoryInterface interface {
	Create(ctx context.Context, workload *models.Workload) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Workload, error)
	GetByValue(ctx context.Context, value int) (*models.Workload, error)
	GetAll(ctx context.Context, limit, offset int) ([]models.Workload, int64, error)
	Update(ctx context.Context, workload *models.Workload) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PulseLogRepositoryInterface defines the interface for pulse log repository operations
type PulseLogRepositoryInterface interface {
	Create(ctx context.Context, log *models.PulseLog) error
	GetByID(ctx context.Context, id uuid.UUID, scope Scope) (*models.PulseLog, error)
	List(ctx context.Context, filter PulseLogFilter, scope Scope, limit, offset int) ([]models.PulseLog, int64, error)
	Update(ctx context.Context, log *models.PulseLog) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// FeedbackRepositoryInterface defines the interface for feedback repository operations
type FeedbackRepositoryInterface interface {
	Create(ctx context.Context, feedback *models.TeamFeedback) error
	GetByID(ctx context.Context, id uuid.UUID, scope Scope) (*models.TeamFeedback, error)
	List(ctx context.Context, filter FeedbackFilter, scope Scope, limit, offset int) ([]models.TeamFeedback, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// EventLogRepositoryInterface defines the interface for event log repository operations
type EventLogRepositoryInterface interface {
	Create(ctx context.Context, event *models.EventLog) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.EventLog, error)
	List(ctx context.Context, eventName string, limit, offset int) ([]models.EventLog, int64, error)
	Update(ctx context.Context, event *models.EventLog) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Ensure implementations satisfy the interfaces
var (
	_ UserRepositoryInterface     = (*UserRepository)(nil)
	_ TeamRepositoryInterface     = (*TeamRepository)(nil)
	_ MoodRepositoryInterface     = (*MoodRepository)(nil)
	_ WorkloadRepositoryInterface = (*WorkloadRepository)(nil)
	_ PulseLogRepositoryInterface = (*PulseLogRepository)(nil)
	_ FeedbackRepositoryInterface = (*FeedbackRepository)(nil)
	_ EventLogRepositoryInterface = (*EventLogRepository)(nil)
)

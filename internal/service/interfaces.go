package service

import (
	"context"

	"teampulse-backend/internal/access"
	"teampulse-backend/internal/auth"
	"teampulse-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TokenIssuer issues the access/refresh pair returned on register and login
type TokenIssuer interface {
	GenerateTokenPair(user *models.User) (*auth.TokenPair, error)
}

// EventRecorder stores system events. Implementations must not fail the caller.
type EventRecorder interface {
	Record(ctx context.Context, name models.EventName, metadata map[string]interface{})
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	Register(ctx context.Context, req *RegisterRequest) (*RegisterResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
	GetMe(ctx context.Context, caller access.Caller) (*UserResponse, error)
	UpdateMe(ctx context.Context, caller access.Caller, req *UpdateProfileRequest) (*UserResponse, error)
	List(ctx context.Context, caller access.Caller, page, pageSize int) (*UserListResponse, error)
	GetByID(ctx context.Context, caller access.Caller, id uuid.UUID) (*UserResponse, error)
	Update(ctx context.Context, caller access.Caller, id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error)
	Delete(ctx context.Context, caller access.Caller, id uuid.UUID) error
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	ListPublic(ctx context.Context) ([]PublicTeamResponse, error)
	List(ctx context.Context, caller access.Caller, page, pageSize int) (*TeamListResponse, error)
	GetByID(ctx context.Context, caller access.Caller, id uuid.UUID) (*TeamResponse, error)
	Create(ctx context.Context, caller access.Caller, req *TeamRequest) (*TeamResponse, error)
	Update(ctx context.Context, caller access.Caller, id uuid.UUID, req *TeamRequest, partial bool) (*TeamResponse, error)
	Delete(ctx context.Context, caller access.Caller, id uuid.UUID) error
	AddMember(ctx context.Context, caller access.Caller, teamID uuid.UUID, req *TeamMemberRequest) (*StatusResponse, error)
	RemoveMember(ctx context.Context, caller access.Caller, teamID uuid.UUID, req *TeamMemberRequest) (*StatusResponse, error)
}

// MoodServiceInterface defines the interface for mood service
type MoodServiceInterface interface {
	List(ctx context.Context, caller access.Caller, page, pageSize int) (*MoodListResponse, error)
	GetByID(ctx context.Context, caller access.Caller, id uuid.UUID) (*MoodResponse, error)
	Create(ctx context.Context, caller access.Caller, req *CatalogRequest) (*MoodResponse, error)
	Update(ctx context.Context, caller access.Caller, id uuid.UUID, req *CatalogRequest, partial bool) (*MoodResponse, error)
	Delete(ctx context.Context, caller access.Caller, id uuid.UUID) error
}

// WorkloadServiceInterface defines the interface for workload service
type WorkloadServiceInterface interface {
	List(ctx context.Context, caller access.Caller, page, pageSize int) (*WorkloadListResponse, error)
	GetByID(ctx context.Context, caller access.Caller, id uuid.UUID) (*WorkloadResponse, error)
	Create(ctx context.Context, caller access.Caller, req *CatalogRequest) (*WorkloadResponse, error)
	Update(ctx context.Context, caller access.Caller, id uuid.UUID, req *CatalogRequest, partial bool) (*WorkloadResponse, error)
	Delete(ctx context.Context, caller access.Caller, id uuid.UUID) error
}

// PulseLogServiceInterface defines the interface for pulse log service
type PulseLogServiceInterface interface {
	List(ctx context.Context, caller access.Caller, query PulseLogQuery, page, pageSize int) (*PulseLogListResponse, error)
	Create(ctx context.Context, caller access.Caller, req *PulseLogRequest) (*PulseLogResponse, error)
	GetByID(ctx context.Context, caller access.Caller, id uuid.UUID) (*PulseLogResponse, error)
	Update(ctx context.Context, caller access.Caller, id uuid.UUID, req *PulseLogRequest, partial bool) (*PulseLogResponse, error)
	Delete(ctx context.Context, caller access.Caller, id uuid.UUID) error
}

// FeedbackServiceInterface defines the interface for feedback service
type FeedbackServiceInterface interface {
	List(ctx context.Context, caller access.Caller, query FeedbackQuery, page, pageSize int) (*FeedbackListResponse, error)
	Create(ctx context.Context, caller access.Caller, req *FeedbackRequest) (*FeedbackResponse, error)
	GetByID(ctx context.Context, caller access.Caller, id uuid.UUID) (*FeedbackResponse, error)
	Delete(ctx context.Context, caller access.Caller, id uuid.UUID) error
}

// EventLogServiceInterface defines the interface for event log service
type EventLogServiceInterface interface {
	List(ctx context.Context, caller access.Caller, eventName string, page, pageSize int) (*EventLogListResponse, error)
	Create(ctx context.Context, caller access.Caller, req *EventLogRequest) (*EventLogResponse, error)
	GetByID(ctx context.Context, caller access.Caller, id uuid.UUID) (*EventLogResponse, error)
	Update(ctx context.Context, caller access.Caller, id uuid.UUID, req *EventLogRequest, partial bool) (*EventLogResponse, error)
	Delete(ctx context.Context, caller access.Caller, id uuid.UUID) error
}

var _ TokenIssuer = (*auth.AuthService)(nil)

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"teampulse-backend/internal/access"
	"teampulse-backend/internal/auth"
	"teampulse-backend/internal/database/models"
	apperrors "teampulse-backend/internal/errors"
	"teampulse-backend/internal/repository"

	"github.com/badoux/checkmail"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	usernameTakenMessage = "A user with that username already exists."
	emailTakenMessage    = "A user with that email already exists."
)

// UserService handles registration, login and user administration
type UserService struct {
	repo      repository.UserRepositoryInterface
	teamRepo  repository.TeamRepositoryInterface
	tokens    TokenIssuer
	events    EventRecorder
	validator *validator.Validate
}

// Ensure UserService implements UserServiceInterface
var _ UserServiceInterface = (*UserService)(nil)

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, teamRepo repository.TeamRepositoryInterface, tokens TokenIssuer, events EventRecorder, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		teamRepo:  teamRepo,
		tokens:    tokens,
		events:    events,
		validator: validator,
	}
}

// RegisterRequest represents the data needed to sign up
type RegisterRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=150" example:"alice"`
	Email     string `json:"email" validate:"required,max=254" example:"alice@example.com"`
	Password  string `json:"password" validate:"required,min=8,max=128" example:"correct-horse-battery"`
	FirstName string `json:"first_name" validate:"max=150" example:"Alice"`
	LastName  string `json:"last_name" validate:"max=150" example:"Smith"`
}

// LoginRequest carries credentials. Either email or username identifies the account.
type LoginRequest struct {
	Email    string `json:"email" example:"alice@example.com"`
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"correct-horse-battery"`
}

// UpdateProfileRequest is what a user may change about themselves
type UpdateProfileRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,max=150" example:"Alice"`
	LastName  *string `json:"last_name" validate:"omitempty,max=150" example:"Smith"`
}

// UpdateUserRequest is what an admin may change about any user
type UpdateUserRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,max=150"`
	LastName  *string `json:"last_name" validate:"omitempty,max=150"`
	IsStaff   *bool   `json:"is_staff"`
	IsActive  *bool   `json:"is_active"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	IsStaff   bool      `json:"is_staff"`
	IsActive  bool      `json:"is_active"`
	Teams     []string  `json:"teams"`
	CreatedAt time.Time `json:"created_at"`
}

// RegisterResponse is the new user together with its first token pair
type RegisterResponse struct {
	UserResponse
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// LoginResponse carries the caller's names and a fresh token pair
type LoginResponse struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Access    string `json:"access"`
	Refresh   string `json:"refresh"`
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Users    []UserResponse `json:"users"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Register creates an account and issues its tokens
func (s *UserService) Register(ctx context.Context, req *RegisterRequest) (*RegisterResponse, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if err := s.validateRegistration(ctx, req); err != nil {
		return nil, err
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  hashed,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		IsActive:  true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, uniqueUserError(err)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	tokens, err := s.tokens.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	s.events.Record(ctx, models.EventUserRegistered, map[string]interface{}{
		"user_id":  user.ID.String(),
		"username": user.Username,
	})

	return &RegisterResponse{
		UserResponse: toUserResponse(user, nil),
		Access:       tokens.Access,
		Refresh:      tokens.Refresh,
	}, nil
}

func (s *UserService) validateRegistration(ctx context.Context, req *RegisterRequest) error {
	extra := apperrors.FieldErrors{}
	if req.Email != "" {
		if err := checkmail.ValidateFormat(req.Email); err != nil {
			extra["email"] = "Enter a valid email address."
		}
	}

	err := validateRequest(s.validator, req, extra)
	var fields apperrors.FieldErrors
	if err != nil && !errors.As(err, &fields) {
		return err
	}
	if fields == nil {
		fields = apperrors.FieldErrors{}
	}

	// Uniqueness is only worth checking for values that are otherwise valid
	if _, bad := fields["username"]; !bad {
		taken, err := s.repo.ExistsByUsername(ctx, req.Username)
		if err != nil {
			return fmt.Errorf("failed to check username: %w", err)
		}
		if taken {
			fields["username"] = usernameTakenMessage
		}
	}
	if _, bad := fields["email"]; !bad {
		taken, err := s.repo.ExistsByEmail(ctx, req.Email)
		if err != nil {
			return fmt.Errorf("failed to check email: %w", err)
		}
		if taken {
			fields["email"] = emailTakenMessage
		}
	}

	if len(fields) > 0 {
		return fields
	}
	return nil
}

func uniqueUserError(err error) error {
	if strings.Contains(repository.UniqueConstraint(err), "email") {
		return apperrors.FieldErrors{"email": emailTakenMessage}
	}
	return apperrors.FieldErrors{"username": usernameTakenMessage}
}

// Login checks credentials and issues a token pair
func (s *UserService) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	identifier := strings.TrimSpace(req.Email)
	lookup := s.repo.GetByEmail
	if identifier == "" {
		identifier = strings.TrimSpace(req.Username)
		lookup = s.repo.GetByUsername
	}
	if identifier == "" || req.Password == "" {
		return nil, apperrors.NewValidationError("", "Email and password are required")
	}

	user, err := lookup(ctx, identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperrors.ErrUserDisabled
	}

	tokens, err := s.tokens.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	return &LoginResponse{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Access:    tokens.Access,
		Refresh:   tokens.Refresh,
	}, nil
}

// GetMe returns the caller's own profile
func (s *UserService) GetMe(ctx context.Context, caller access.Caller) (*UserResponse, error) {
	user, err := s.repo.GetByID(ctx, caller.UserID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrUserNotFound, "user")
	}
	return s.withTeams(ctx, user)
}

// UpdateMe changes the caller's names. Role and status are not editable here.
func (s *UserService) UpdateMe(ctx context.Context, caller access.Caller, req *UpdateProfileRequest) (*UserResponse, error) {
	if err := validateRequest(s.validator, req, nil); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.FirstName != nil {
		updates["first_name"] = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		updates["last_name"] = strings.TrimSpace(*req.LastName)
	}

	user, err := s.repo.Update(ctx, caller.UserID, updates)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrUserNotFound, "user")
	}
	return s.withTeams(ctx, user)
}

// List returns all users
func (s *UserService) List(ctx context.Context, caller access.Caller, page, pageSize int) (*UserListResponse, error) {
	if err := access.Authorize(caller, access.ResourceUser, access.ActionRead); err != nil {
		return nil, err
	}

	page, pageSize, offset := normalizePage(page, pageSize)
	users, total, err := s.repo.GetAll(ctx, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	ids := make([]uuid.UUID, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	teams, err := s.teamRepo.GetTeamsForUsers(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get user teams: %w", err)
	}

	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = toUserResponse(&users[i], teams[users[i].ID])
	}

	return &UserListResponse{
		Users:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetByID returns any user
func (s *UserService) GetByID(ctx context.Context, caller access.Caller, id uuid.UUID) (*UserResponse, error) {
	if err := access.Authorize(caller, access.ResourceUser, access.ActionRead); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrUserNotFound, "user")
	}
	return s.withTeams(ctx, user)
}

// Update changes a user's names, role or status. Demoting the last admin is refused.
func (s *UserService) Update(ctx context.Context, caller access.Caller, id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error) {
	if err := access.Authorize(caller, access.ResourceUser, access.ActionUpdate); err != nil {
		return nil, err
	}
	if err := validateRequest(s.validator, req, nil); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.FirstName != nil {
		updates["first_name"] = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		updates["last_name"] = strings.TrimSpace(*req.LastName)
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if req.IsStaff == nil {
		user, err := s.repo.Update(ctx, id, updates)
		if err != nil {
			return nil, lookupError(err, apperrors.ErrUserNotFound, "user")
		}
		return s.withTeams(ctx, user)
	}

	newIsStaff := *req.IsStaff
	updates["is_staff"] = newIsStaff
	var wasStaff bool
	user, err := s.repo.UpdateWithStaffGuard(ctx, id, updates, func(current *models.User, adminCount int64) error {
		wasStaff = current.IsStaff
		return access.CheckStaffChange(current.IsStaff, newIsStaff, adminCount)
	})
	if err != nil {
		if apperrors.IsValidation(err) {
			return nil, err
		}
		return nil, lookupError(err, apperrors.ErrUserNotFound, "user")
	}

	if wasStaff != newIsStaff {
		s.events.Record(ctx, models.EventUserRoleChanged, map[string]interface{}{
			"user_id":    user.ID.String(),
			"username":   user.Username,
			"is_staff":   newIsStaff,
			"changed_by": caller.Username,
		})
	}
	return s.withTeams(ctx, user)
}

// Delete removes a user. Deleting the last admin is refused.
func (s *UserService) Delete(ctx context.Context, caller access.Caller, id uuid.UUID) error {
	if err := access.Authorize(caller, access.ResourceUser, access.ActionDelete); err != nil {
		return err
	}

	deleted, err := s.repo.DeleteWithStaffGuard(ctx, id, func(current *models.User, adminCount int64) error {
		return access.CheckStaffChange(current.IsStaff, false, adminCount)
	})
	if err != nil {
		if apperrors.IsValidation(err) {
			return err
		}
		return lookupError(err, apperrors.ErrUserNotFound, "user")
	}

	s.events.Record(ctx, models.EventUserDeleted, map[string]interface{}{
		"user_id":    deleted.ID.String(),
		"username":   deleted.Username,
		"deleted_by": caller.Username,
	})
	return nil
}

func (s *UserService) withTeams(ctx context.Context, user *models.User) (*UserResponse, error) {
	teams, err := s.teamRepo.GetTeamsForUsers(ctx, []uuid.UUID{user.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to get user teams: %w", err)
	}

	resp := toUserResponse(user, teams[user.ID])
	return &resp, nil
}

func toUserResponse(user *models.User, teams []models.Team) UserResponse {
	names := make([]string, len(teams))
	for i, team := range teams {
		names[i] = team.TeamName
	}

	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		IsStaff:   user.IsStaff,
		IsActive:  user.IsActive,
		Teams:     names,
		CreatedAt: user.CreatedAt,
	}
}

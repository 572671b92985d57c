package service

import (
	"context"
	"fmt"
	"time"

	"teampulse-backend/internal/access"
	"teampulse-backend/internal/database/models"
	apperrors "teampulse-backend/internal/errors"
	"teampulse-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// PulseLogService handles business logic for weekly check-ins
type PulseLogService struct {
	repo      repository.PulseLogRepositoryInterface
	teams     teamResolver
	validator *validator.Validate
	now       func() time.Time
}

// Ensure PulseLogService implements PulseLogServiceInterface
var _ PulseLogServiceInterface = (*PulseLogService)(nil)

// NewPulseLogService creates a new pulse log service
func NewPulseLogService(repo repository.PulseLogRepositoryInterface, teamRepo repository.TeamRepositoryInterface, validator *validator.Validate) *PulseLogService {
	return &PulseLogService{
		repo:      repo,
		teams:     teamResolver{teams: teamRepo},
		validator: validator,
		now:       time.Now,
	}
}

// SetClock replaces the time source used for timestamps and ISO week defaults
func (s *PulseLogService) SetClock(now func() time.Time) {
	s.now = now
}

// PulseLogRequest is the body for creating or updating a pulse log
type PulseLogRequest struct {
	Mood           *int       `json:"mood" example:"4"`
	Workload       *int       `json:"workload" example:"3"`
	Comment        *string    `json:"comment" example:"Busy sprint"`
	Team           *uuid.UUID `json:"team"`
	TimestampLocal *time.Time `json:"timestamp_local"`
	Year           *int       `json:"year" validate:"omitempty,min=1,max=9999" example:"2024"`
	WeekIndex      *int       `json:"week_index" validate:"omitempty,min=1,max=53" example:"12"`
}

// PulseLogQuery holds the list filters. Nil fields are ignored.
type PulseLogQuery struct {
	User      *uuid.UUID
	Team      *uuid.UUID
	Year      *int
	WeekIndex *int
	Mood      *int
	Workload  *int
	Ordering  string
}

// PulseLogResponse represents a pulse log in API responses
type PulseLogResponse struct {
	ID             uuid.UUID  `json:"id"`
	User           uuid.UUID  `json:"user"`
	UserName       string     `json:"user_name"`
	Mood           int        `json:"mood"`
	Workload       int        `json:"workload"`
	Comment        *string    `json:"comment"`
	Timestamp      time.Time  `json:"timestamp"`
	Team           *uuid.UUID `json:"team"`
	TeamName       *string    `json:"team_name"`
	TimestampLocal *time.Time `json:"timestamp_local"`
	Year           int        `json:"year"`
	WeekIndex      int        `json:"week_index"`
	CreatedAt      time.Time  `json:"created_at"`
}

// PulseLogListResponse represents a paginated list of pulse logs
type PulseLogListResponse struct {
	PulseLogs []PulseLogResponse `json:"pulse_logs"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// List returns the pulse logs the caller may see
func (s *PulseLogService) List(ctx context.Context, caller access.Caller, query PulseLogQuery, page, pageSize int) (*PulseLogListResponse, error) {
	if err := access.Authorize(caller, access.ResourcePulseLog, access.ActionRead); err != nil {
		return nil, err
	}

	ordering := query.Ordering
	if !repository.IsValidPulseLogOrdering(ordering) {
		ordering = "-timestamp"
	}
	filter := repository.PulseLogFilter{
		UserID:    query.User,
		TeamID:    query.Team,
		Year:      query.Year,
		WeekIndex: query.WeekIndex,
		Mood:      query.Mood,
		Workload:  query.Workload,
		Ordering:  ordering,
	}

	page, pageSize, offset := normalizePage(page, pageSize)
	logs, total, err := s.repo.List(ctx, filter, access.Scope(caller, access.ResourcePulseLog, access.ActionRead), pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list pulse logs: %w", err)
	}

	responses := make([]PulseLogResponse, len(logs))
	for i := range logs {
		responses[i] = toPulseLogResponse(&logs[i])
	}

	return &PulseLogListResponse{
		PulseLogs: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// Create records a check-in for the caller
func (s *PulseLogService) Create(ctx context.Context, caller access.Caller, req *PulseLogRequest) (*PulseLogResponse, error) {
	if err := access.Authorize(caller, access.ResourcePulseLog, access.ActionCreate); err != nil {
		return nil, err
	}
	if err := s.validatePulseLogRequest(req, false); err != nil {
		return nil, err
	}

	teamID, err := s.teams.resolve(ctx, caller, access.ResourcePulseLog, req.Team)
	if err != nil {
		return nil, err
	}

	now := s.now()
	year, week := isoWeekDefaults(now, req.Year, req.WeekIndex)

	log := &models.PulseLog{
		UserID:         caller.UserID,
		Mood:           *req.Mood,
		Workload:       *req.Workload,
		Comment:        req.Comment,
		Timestamp:      now,
		TimestampLocal: req.TimestampLocal,
		TeamID:         teamID,
		Year:           year,
		WeekIndex:      week,
	}
	if err := s.repo.Create(ctx, log); err != nil {
		return nil, fmt.Errorf("failed to create pulse log: %w", err)
	}

	return s.reload(ctx, log.ID)
}

// GetByID returns a pulse log the caller may see
func (s *PulseLogService) GetByID(ctx context.Context, caller access.Caller, id uuid.UUID) (*PulseLogResponse, error) {
	if err := access.Authorize(caller, access.ResourcePulseLog, access.ActionRead); err != nil {
		return nil, err
	}

	log, err := s.repo.GetByID(ctx, id, access.Scope(caller, access.ResourcePulseLog, access.ActionRead))
	if err != nil {
		return nil, lookupError(err, apperrors.ErrPulseLogNotFound, "pulse log")
	}

	resp := toPulseLogResponse(log)
	return &resp, nil
}

// Update changes a pulse log owned by the caller. partial selects PATCH semantics;
// a full update requires mood and workload. Fields left out keep their values.
func (s *PulseLogService) Update(ctx context.Context, caller access.Caller, id uuid.UUID, req *PulseLogRequest, partial bool) (*PulseLogResponse, error) {
	if err := access.Authorize(caller, access.ResourcePulseLog, access.ActionUpdate); err != nil {
		return nil, err
	}
	if err := s.validatePulseLogRequest(req, partial); err != nil {
		return nil, err
	}

	log, err := s.repo.GetByID(ctx, id, access.Scope(caller, access.ResourcePulseLog, access.ActionUpdate))
	if err != nil {
		return nil, lookupError(err, apperrors.ErrPulseLogNotFound, "pulse log")
	}

	if req.Team != nil {
		teamID, err := s.teams.resolve(ctx, caller, access.ResourcePulseLog, req.Team)
		if err != nil {
			return nil, err
		}
		log.TeamID = teamID
	}
	if req.Mood != nil {
		log.Mood = *req.Mood
	}
	if req.Workload != nil {
		log.Workload = *req.Workload
	}
	if req.Comment != nil {
		log.Comment = req.Comment
	}
	if req.TimestampLocal != nil {
		log.TimestampLocal = req.TimestampLocal
	}
	if req.Year != nil {
		log.Year = *req.Year
	}
	if req.WeekIndex != nil {
		log.WeekIndex = *req.WeekIndex
	}

	if err := s.repo.Update(ctx, log); err != nil {
		return nil, fmt.Errorf("failed to update pulse log: %w", err)
	}

	return s.reload(ctx, log.ID)
}

// Delete removes a pulse log owned by the caller
func (s *PulseLogService) Delete(ctx context.Context, caller access.Caller, id uuid.UUID) error {
	if err := access.Authorize(caller, access.ResourcePulseLog, access.ActionDelete); err != nil {
		return err
	}

	if _, err := s.repo.GetByID(ctx, id, access.Scope(caller, access.ResourcePulseLog, access.ActionDelete)); err != nil {
		return lookupError(err, apperrors.ErrPulseLogNotFound, "pulse log")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete pulse log: %w", err)
	}
	return nil
}

func (s *PulseLogService) validatePulseLogRequest(req *PulseLogRequest, partial bool) error {
	missing := apperrors.FieldErrors{}
	if !partial {
		requireInt(missing, "mood", req.Mood)
		requireInt(missing, "workload", req.Workload)
	}
	return validateRequest(s.validator, req, missing)
}

// reload fetches a row the caller has just written, with user and team names
func (s *PulseLogService) reload(ctx context.Context, id uuid.UUID) (*PulseLogResponse, error) {
	log, err := s.repo.GetByID(ctx, id, nil)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrPulseLogNotFound, "pulse log")
	}

	resp := toPulseLogResponse(log)
	return &resp, nil
}

// isoWeekDefaults fills whichever of year and week was not supplied: the calendar
// year of now and the ISO week containing now. Supplied values are kept as-is.
func isoWeekDefaults(now time.Time, year, week *int) (int, int) {
	currentYear := now.Year()
	_, currentWeek := now.ISOWeek()
	if year != nil {
		currentYear = *year
	}
	if week != nil {
		currentWeek = *week
	}
	return currentYear, currentWeek
}

func toPulseLogResponse(log *models.PulseLog) PulseLogResponse {
	resp := PulseLogResponse{
		ID:             log.ID,
		User:           log.UserID,
		Mood:           log.Mood,
		Workload:       log.Workload,
		Comment:        log.Comment,
		Timestamp:      log.Timestamp,
		Team:           log.TeamID,
		TimestampLocal: log.TimestampLocal,
		Year:           log.Year,
		WeekIndex:      log.WeekIndex,
		CreatedAt:      log.CreatedAt,
	}
	if log.User != nil {
		resp.UserName = log.User.Username
	}
	if log.Team != nil {
		name := log.Team.TeamName
		resp.TeamName = &name
	}
	return resp
}

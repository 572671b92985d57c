package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"teampulse-backend/internal/access"
	"teampulse-backend/internal/database/models"
	apperrors "teampulse-backend/internal/errors"
	"teampulse-backend/internal/logger"
	"teampulse-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// EventLogService handles business logic for the admin event log
type EventLogService struct {
	repo      repository.EventLogRepositoryInterface
	validator *validator.Validate
}

// Ensure EventLogService implements the service interfaces
var (
	_ EventLogServiceInterface = (*EventLogService)(nil)
	_ EventRecorder            = (*EventLogService)(nil)
)

// NewEventLogService creates a new event log service
func NewEventLogService(repo repository.EventLogRepositoryInterface, validator *validator.Validate) *EventLogService {
	return &EventLogService{
		repo:      repo,
		validator: validator,
	}
}

// EventLogRequest is the body for creating or updating an event log entry
type EventLogRequest struct {
	EventName *string `json:"event_name" validate:"omitempty,max=255" example:"user_registered"`
	Metadata  *string `json:"metadata" example:"{\"user_id\":\"7d9f4c2e-1b3a-4f5e-9c8d-2a1b3c4d5e6f\"}"`
}

// EventLogResponse represents an event log entry in API responses
type EventLogResponse struct {
	ID        uuid.UUID `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	EventName string    `json:"event_name"`
	Metadata  *string   `json:"metadata"`
	CreatedAt time.Time `json:"created_at"`
}

// EventLogListResponse represents a paginated list of event log entries
type EventLogListResponse struct {
	EventLogs []EventLogResponse `json:"event_logs"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// List returns event log entries, newest first, optionally filtered by name
func (s *EventLogService) List(ctx context.Context, caller access.Caller, eventName string, page, pageSize int) (*EventLogListResponse, error) {
	if err := access.Authorize(caller, access.ResourceEventLog, access.ActionRead); err != nil {
		return nil, err
	}

	page, pageSize, offset := normalizePage(page, pageSize)
	events, total, err := s.repo.List(ctx, eventName, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list event logs: %w", err)
	}

	responses := make([]EventLogResponse, len(events))
	for i := range events {
		responses[i] = toEventLogResponse(&events[i])
	}

	return &EventLogListResponse{
		EventLogs: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// Create adds a manual event log entry
func (s *EventLogService) Create(ctx context.Context, caller access.Caller, req *EventLogRequest) (*EventLogResponse, error) {
	if err := access.Authorize(caller, access.ResourceEventLog, access.ActionCreate); err != nil {
		return nil, err
	}

	missing := apperrors.FieldErrors{}
	requireString(missing, "event_name", req.EventName)
	if err := validateRequest(s.validator, req, missing); err != nil {
		return nil, err
	}

	event := &models.EventLog{
		EventName: strings.TrimSpace(*req.EventName),
		Metadata:  req.Metadata,
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event log: %w", err)
	}

	resp := toEventLogResponse(event)
	return &resp, nil
}

// GetByID returns a single event log entry
func (s *EventLogService) GetByID(ctx context.Context, caller access.Caller, id uuid.UUID) (*EventLogResponse, error) {
	if err := access.Authorize(caller, access.ResourceEventLog, access.ActionRead); err != nil {
		return nil, err
	}

	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrEventLogNotFound, "event log")
	}

	resp := toEventLogResponse(event)
	return &resp, nil
}

// Update changes an event log entry. A full update requires event_name.
func (s *EventLogService) Update(ctx context.Context, caller access.Caller, id uuid.UUID, req *EventLogRequest, partial bool) (*EventLogResponse, error) {
	if err := access.Authorize(caller, access.ResourceEventLog, access.ActionUpdate); err != nil {
		return nil, err
	}

	missing := apperrors.FieldErrors{}
	if !partial || req.EventName != nil {
		requireString(missing, "event_name", req.EventName)
	}
	if err := validateRequest(s.validator, req, missing); err != nil {
		return nil, err
	}

	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrEventLogNotFound, "event log")
	}

	if req.EventName != nil {
		event.EventName = strings.TrimSpace(*req.EventName)
	}
	if req.Metadata != nil {
		event.Metadata = req.Metadata
	}

	if err := s.repo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to update event log: %w", err)
	}

	resp := toEventLogResponse(event)
	return &resp, nil
}

// Delete removes an event log entry
func (s *EventLogService) Delete(ctx context.Context, caller access.Caller, id uuid.UUID) error {
	if err := access.Authorize(caller, access.ResourceEventLog, access.ActionDelete); err != nil {
		return err
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return lookupError(err, apperrors.ErrEventLogNotFound, "event log")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete event log: %w", err)
	}
	return nil
}

// Record stores a system event. Failures are logged and never returned, so the
// request that triggered the event is not affected.
func (s *EventLogService) Record(ctx context.Context, name models.EventName, metadata map[string]interface{}) {
	log := logger.WithContext(ctx).WithField("event_name", string(name))

	event := &models.EventLog{EventName: string(name)}
	if len(metadata) > 0 {
		raw, err := json.Marshal(metadata)
		if err != nil {
			log.WithError(err).Warn("failed to encode event metadata")
		} else {
			encoded := string(raw)
			event.Metadata = &encoded
		}
	}

	if err := s.repo.Create(ctx, event); err != nil {
		log.WithError(err).Error("failed to record event")
	}
}

func toEventLogResponse(event *models.EventLog) EventLogResponse {
	return EventLogResponse{
		ID:        event.ID,
		Timestamp: event.Timestamp,
		EventName: event.EventName,
		Metadata:  event.Metadata,
		CreatedAt: event.CreatedAt,
	}
}

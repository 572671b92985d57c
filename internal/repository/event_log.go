package repository

import (
	"context"

	"teampulse-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventLogRepository handles database operations for event logs
type EventLogRepository struct {
	db *gorm.DB
}

// NewEventLogRepository creates a new event log repository
func NewEventLogRepository(db *gorm.DB) *EventLogRepository {
	return &EventLogRepository{db: db}
}

// Create creates a new event log entry
func (r *EventLogRepository) Create(ctx context.Context, event *models.EventLog) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// GetByID retrieves an event log entry by ID
func (r *EventLogRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.EventLog, error) {
	var event models.EventLog
	err := r.db.WithContext(ctx).First(&event, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// List retrieves event log entries newest first, optionally filtered by name
func (r *EventLogRepository) List(ctx context.Context, eventName string, limit, offset int) ([]models.EventLog, int64, error) {
	var events []models.EventLog
	var total int64

	query := r.db.WithContext(ctx).Model(&models.EventLog{})
	if eventName != "" {
		query = query.Where("event_name = ?", eventName)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("timestamp DESC").Order("id").Limit(limit).Offset(offset).Find(&events).Error
	if err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

// Update updates an event log entry
func (r *EventLogRepository) Update(ctx context.Context, event *models.EventLog) error {
	return r.db.WithContext(ctx).Save(event).Error
}

// Delete deletes an event log entry
func (r *EventLogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.EventLog{}, "id = ?", id).Error
}

package repository

import (
	"context"

	"teampulse-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PulseLogFilter narrows a pulse log listing. Nil fields are ignored.
type PulseLogFilter struct {
	UserID    *uuid.UUID
	TeamID    *uuid.UUID
	Year      *int
	WeekIndex *int
	Mood      *int
	Workload  *int
	Ordering  string
}

var pulseLogOrderings = map[string]string{
	"timestamp":   "pulse_logs.timestamp ASC",
	"-timestamp":  "pulse_logs.timestamp DESC",
	"year":        "pulse_logs.year ASC",
	"-year":       "pulse_logs.year DESC",
	"week_index":  "pulse_logs.week_index ASC",
	"-week_index": "pulse_logs.week_index DESC",
}

// IsValidPulseLogOrdering reports whether the ordering key is supported
func IsValidPulseLogOrdering(ordering string) bool {
	_, ok := pulseLogOrderings[ordering]
	return ok
}

// PulseLogRepository handles database operations for pulse logs
type PulseLogRepository struct {
	db *gorm.DB
}

// NewPulseLogRepository creates a new pulse log repository
func NewPulseLogRepository(db *gorm.DB) *PulseLogRepository {
	return &PulseLogRepository{db: db}
}

// Create creates a new pulse log
func (r *PulseLogRepository) Create(ctx context.Context, log *models.PulseLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// GetByID retrieves a pulse log visible under scope, with user and team loaded
func (r *PulseLogRepository) GetByID(ctx context.Context, id uuid.UUID, scope Scope) (*models.PulseLog, error) {
	var log models.PulseLog
	err := applyScope(r.db.WithContext(ctx), scope).
		Preload("User").
		Preload("Team").
		First(&log, "pulse_logs.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// List retrieves pulse logs visible under scope, filtered and paginated
func (r *PulseLogRepository) List(ctx context.Context, filter PulseLogFilter, scope Scope, limit, offset int) ([]models.PulseLog, int64, error) {
	var logs []models.PulseLog
	var total int64

	query := applyScope(r.db.WithContext(ctx).Model(&models.PulseLog{}), scope)
	if filter.UserID != nil {
		query = query.Where("pulse_logs.user_id = ?", *filter.UserID)
	}
	if filter.TeamID != nil {
		query = query.Where("pulse_logs.team_id = ?", *filter.TeamID)
	}
	if filter.Year != nil {
		query = query.Where("pulse_logs.year = ?", *filter.Year)
	}
	if filter.WeekIndex != nil {
		query = query.Where("pulse_logs.week_index = ?", *filter.WeekIndex)
	}
	if filter.Mood != nil {
		query = query.Where("pulse_logs.mood = ?", *filter.Mood)
	}
	if filter.Workload != nil {
		query = query.Where("pulse_logs.workload = ?", *filter.Workload)
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order, ok := pulseLogOrderings[filter.Ordering]
	if !ok {
		order = pulseLogOrderings["-timestamp"]
	}

	// Get paginated results
	err := query.
		Preload("User").
		Preload("Team").
		Order(order).
		Order("pulse_logs.id").
		Limit(limit).Offset(offset).
		Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

// Update updates a pulse log
func (r *PulseLogRepository) Update(ctx context.Context, log *models.PulseLog) error {
	return r.db.WithContext(ctx).Omit("User", "Team").Save(log).Error
}

// Delete deletes a pulse log
func (r *PulseLogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.PulseLog{}, "id = ?", id).Error
}

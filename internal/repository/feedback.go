package repository

import (
	"context"

	"teampulse-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FeedbackFilter narrows a feedback listing. Nil fields are ignored.
type FeedbackFilter struct {
	TeamID      *uuid.UUID
	IsAnonymous *bool
	// Ordering is "created_at" or "-created_at"
	Ordering string
}

// FeedbackRepository handles database operations for team feedback
type FeedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// Create creates a new feedback entry
func (r *FeedbackRepository) Create(ctx context.Context, feedback *models.TeamFeedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

// GetByID retrieves feedback visible under scope, with user and team loaded
func (r *FeedbackRepository) GetByID(ctx context.Context, id uuid.UUID, scope Scope) (*models.TeamFeedback, error) {
	var feedback models.TeamFeedback
	err := applyScope(r.db.WithContext(ctx), scope).
		Preload("User").
		Preload("Team").
		First(&feedback, "team_feedbacks.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &feedback, nil
}

// List retrieves feedback visible under scope, filtered and paginated
func (r *FeedbackRepository) List(ctx context.Context, filter FeedbackFilter, scope Scope, limit, offset int) ([]models.TeamFeedback, int64, error) {
	var items []models.TeamFeedback
	var total int64

	query := applyScope(r.db.WithContext(ctx).Model(&models.TeamFeedback{}), scope)
	if filter.TeamID != nil {
		query = query.Where("team_feedbacks.team_id = ?", *filter.TeamID)
	}
	if filter.IsAnonymous != nil {
		query = query.Where("team_feedbacks.is_anonymous = ?", *filter.IsAnonymous)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "team_feedbacks.created_at DESC"
	if filter.Ordering == "created_at" {
		order = "team_feedbacks.created_at ASC"
	}

	err := query.
		Preload("User").
		Preload("Team").
		Order(order).
		Order("team_feedbacks.id").
		Limit(limit).Offset(offset).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Delete deletes a feedback entry
func (r *FeedbackRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.TeamFeedback{}, "id = ?", id).Error
}

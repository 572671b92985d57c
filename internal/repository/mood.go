package repository

import (
	"context"

	"teampulse-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MoodRepository handles database operations for moods
type MoodRepository struct {
	db *gorm.DB
}

// NewMoodRepository creates a new mood repository
func NewMoodRepository(db *gorm.DB) *MoodRepository {
	return &MoodRepository{db: db}
}

// Create creates a new mood
func (r *MoodRepository) Create(ctx context.Context, mood *models.Mood) error {
	return r.db.WithContext(ctx).Create(mood).Error
}

// GetByID retrieves a mood by ID
func (r *MoodRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Mood, error) {
	var mood models.Mood
	err := r.db.WithContext(ctx).First(&mood, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &mood, nil
}

// GetAll retrieves moods ordered by value with pagination
func (r *MoodRepository) GetAll(ctx context.Context, limit, offset int) ([]models.Mood, int64, error) {
	var moods []models.Mood
	var total int64

	db := r.db.WithContext(ctx)
	if err := db.Model(&models.Mood{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Order("value").Order("id").Limit(limit).Offset(offset).Find(&moods).Error
	if err != nil {
		return nil, 0, err
	}
	return moods, total, nil
}

// Update updates a mood
func (r *MoodRepository) Update(ctx context.Context, mood *models.Mood) error {
	return r.db.WithContext(ctx).Save(mood).Error
}

// Delete deletes a mood
func (r *MoodRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Mood{}, "id = ?", id).Error
}

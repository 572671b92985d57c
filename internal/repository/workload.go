package repository

import (
	"context"

	"teampulse-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkloadRepository handles database operations for workloads
type WorkloadRepository struct {
	db *gorm.DB
}

// NewWorkloadRepository creates a new workload repository
func NewWorkloadRepository(db *gorm.DB) *WorkloadRepository {
	return &WorkloadRepository{db: db}
}

// Create creates a new workload. A taken value surfaces as a unique violation.
func (r *WorkloadRepository) Create(ctx context.Context, workload *models.Workload) error {
	return r.db.WithContext(ctx).Create(workload).Error
}

// GetByID retrieves a workload by ID
func (r *WorkloadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Workload, error) {
	var workload models.Workload
	err := r.db.WithContext(ctx).First(&workload, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &workload, nil
}

// GetByValue retrieves a workload by its scale value
func (r *WorkloadRepository) GetByValue(ctx context.Context, value int) (*models.Workload, error) {
	var workload models.Workload
	err := r.db.WithContext(ctx).First(&workload, "value = ?", value).Error
	if err != nil {
		return nil, err
	}
	return &workload, nil
}

// GetAll retrieves workloads ordered by value with pagination
func (r *WorkloadRepository) GetAll(ctx context.Context, limit, offset int) ([]models.Workload, int64, error) {
	var workloads []models.Workload
	var total int64

	db := r.db.WithContext(ctx)
	if err := db.Model(&models.Workload{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Order("value").Limit(limit).Offset(offset).Find(&workloads).Error
	if err != nil {
		return nil, 0, err
	}
	return workloads, total, nil
}

// Update updates a workload
func (r *WorkloadRepository) Update(ctx context.Context, workload *models.Workload) error {
	return r.db.WithContext(ctx).Save(workload).Error
}

// Delete deletes a workload
func (r *WorkloadRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Workload{}, "id = ?", id).Error
}

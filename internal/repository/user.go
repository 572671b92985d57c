package repository

import (
	"context"

	"teampulse-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StaffGuard inspects the locked target row and the current number of staff
// users before a change is written. Returning an error aborts the transaction.
type StaffGuard func(current *models.User, adminCount int64) error

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "username = ?", username).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email, ignoring case
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "LOWER(email) = LOWER(?)", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ExistsByUsername checks whether the username is taken
func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

// ExistsByEmail checks whether the email is taken, ignoring case
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("LOWER(email) = LOWER(?)", email).Count(&count).Error
	return count > 0, err
}

// GetAll retrieves all users with pagination, ordered by username
func (r *UserRepository) GetAll(ctx context.Context, limit, offset int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	db := r.db.WithContext(ctx)

	// Get total count
	if err := db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := db.Order("username").Limit(limit).Offset(offset).Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// Update applies the given column updates and returns the fresh row
func (r *UserRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*models.User, error) {
	db := r.db.WithContext(ctx)
	if len(updates) > 0 {
		if err := db.Model(&models.User{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return r.GetByID(ctx, id)
}

// UpdateWithStaffGuard locks every staff row and the target row, runs the guard and
// then applies the updates, all in one transaction. Concurrent demotions queue on
// the row locks so the admin count the guard sees is current.
func (r *UserRepository) UpdateWithStaffGuard(ctx context.Context, id uuid.UUID, updates map[string]interface{}, guard StaffGuard) (*models.User, error) {
	var updated models.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, adminCount, err := lockForStaffChange(tx, id)
		if err != nil {
			return err
		}
		if err := guard(current, adminCount); err != nil {
			return err
		}
		if len(updates) > 0 {
			if err := tx.Model(current).Updates(updates).Error; err != nil {
				return err
			}
		}
		return tx.First(&updated, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteWithStaffGuard deletes a user under the same locking as UpdateWithStaffGuard
func (r *UserRepository) DeleteWithStaffGuard(ctx context.Context, id uuid.UUID, guard StaffGuard) (*models.User, error) {
	var deleted *models.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, adminCount, err := lockForStaffChange(tx, id)
		if err != nil {
			return err
		}
		if err := guard(current, adminCount); err != nil {
			return err
		}
		deleted = current
		return tx.Delete(&models.User{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

// lockForStaffChange takes FOR UPDATE locks on the staff rows and the target row.
// Postgres rejects FOR UPDATE with aggregates, so the staff ids are plucked and counted.
func lockForStaffChange(tx *gorm.DB, id uuid.UUID) (*models.User, int64, error) {
	var staffIDs []uuid.UUID
	if err := tx.Model(&models.User{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("is_staff = ?", true).
		Order("id").
		Pluck("id", &staffIDs).Error; err != nil {
		return nil, 0, err
	}

	var current models.User
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&current, "id = ?", id).Error; err != nil {
		return nil, 0, err
	}
	return &current, int64(len(staffIDs)), nil
}

// CountStaff returns the number of staff users
func (r *UserRepository) CountStaff(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("is_staff = ?", true).Count(&count).Error
	return count, err
}

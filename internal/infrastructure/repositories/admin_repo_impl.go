package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"fundraising.backend/internal/domain/entities"
	domainerrors "fundraising.backend/internal/domain/errors"
	"fundraising.backend/internal/infrastructure/models"
)

// AdminRepository implements admin data operations
type AdminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// Create creates a new admin
func (r *AdminRepository) Create(ctx context.Context, admin *entities.Admin) error {
	m := &models.Admin{
		Email:        admin.Email,
		PasswordHash: admin.PasswordHash,
	}

	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	admin.ID = m.ID
	admin.CreatedAt = m.CreatedAt
	admin.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets an admin by ID
func (r *AdminRepository) GetByID(ctx context.Context, id uint) (*entities.Admin, error) {
	var m models.Admin
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return adminToEntity(&m), nil
}

// GetByEmail gets an admin by email
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*entities.Admin, error) {
	var m models.Admin
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return adminToEntity(&m), nil
}

// EmailTaken reports whether another admin already uses the email
func (r *AdminRepository) EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Admin{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update persists all mutable admin fields
func (r *AdminRepository) Update(ctx context.Context, admin *entities.Admin) error {
	updates := map[string]interface{}{
		"email":         admin.Email,
		"password_hash": admin.PasswordHash,
		"updated_at":    time.Now(),
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Admin{}).Where("id = ?", admin.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete hard-deletes an admin
func (r *AdminRepository) Delete(ctx context.Context, id uint) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.Admin{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists admins with pagination
func (r *AdminRepository) List(ctx context.Context, offset, limit int) ([]*entities.Admin, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Admin{})

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.Order("id ASC").Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}

	var adminModels []models.Admin
	if err := query.Find(&adminModels).Error; err != nil {
		return nil, 0, err
	}

	admins := make([]*entities.Admin, 0, len(adminModels))
	for i := range adminModels {
		admins = append(admins, adminToEntity(&adminModels[i]))
	}
	return admins, total, nil
}

func adminToEntity(m *models.Admin) *entities.Admin {
	return &entities.Admin{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

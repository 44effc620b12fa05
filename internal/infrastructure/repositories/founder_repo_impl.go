package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"fundraising.backend/internal/domain/entities"
	domainerrors "fundraising.backend/internal/domain/errors"
	"fundraising.backend/internal/infrastructure/models"
)

// FounderRepository implements founder data operations
type FounderRepository struct {
	db *gorm.DB
}

// NewFounderRepository creates a new founder repository
func NewFounderRepository(db *gorm.DB) *FounderRepository {
	return &FounderRepository{db: db}
}

// Create creates a new founder
func (r *FounderRepository) Create(ctx context.Context, founder *entities.Founder) error {
	m := &models.Founder{
		Name:           founder.Name,
		Email:          founder.Email,
		PasswordHash:   founder.PasswordHash,
		ContactDetails: founder.ContactDetails.Ptr(),
		CompanyName:    founder.CompanyName.Ptr(),
		Industry:       founder.Industry.Ptr(),
		Role:           founder.Role.Ptr(),
	}

	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	founder.ID = m.ID
	founder.CreatedAt = m.CreatedAt
	founder.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a founder by ID
func (r *FounderRepository) GetByID(ctx context.Context, id uint) (*entities.Founder, error) {
	var m models.Founder
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return founderToEntity(&m), nil
}

// GetByEmail gets a founder by email
func (r *FounderRepository) GetByEmail(ctx context.Context, email string) (*entities.Founder, error) {
	var m models.Founder
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return founderToEntity(&m), nil
}

// EmailTaken reports whether another founder already uses the email
func (r *FounderRepository) EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Founder{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update persists all mutable founder fields
func (r *FounderRepository) Update(ctx context.Context, founder *entities.Founder) error {
	updates := map[string]interface{}{
		"name":            founder.Name,
		"email":           founder.Email,
		"password_hash":   founder.PasswordHash,
		"contact_details": founder.ContactDetails.Ptr(),
		"company_name":    founder.CompanyName.Ptr(),
		"industry":        founder.Industry.Ptr(),
		"role":            founder.Role.Ptr(),
		"updated_at":      time.Now(),
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Founder{}).Where("id = ?", founder.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete hard-deletes a founder
func (r *FounderRepository) Delete(ctx context.Context, id uint) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.Founder{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists founders with pagination
func (r *FounderRepository) List(ctx context.Context, offset, limit int) ([]*entities.Founder, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Founder{})

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.Order("id ASC").Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}

	var founderModels []models.Founder
	if err := query.Find(&founderModels).Error; err != nil {
		return nil, 0, err
	}

	founders := make([]*entities.Founder, 0, len(founderModels))
	for i := range founderModels {
		founders = append(founders, founderToEntity(&founderModels[i]))
	}
	return founders, total, nil
}

func founderToEntity(m *models.Founder) *entities.Founder {
	return &entities.Founder{
		ID:             m.ID,
		Name:           m.Name,
		Email:          m.Email,
		PasswordHash:   m.PasswordHash,
		ContactDetails: null.StringFromPtr(m.ContactDetails),
		CompanyName:    null.StringFromPtr(m.CompanyName),
		Industry:       null.StringFromPtr(m.Industry),
		Role:           null.StringFromPtr(m.Role),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

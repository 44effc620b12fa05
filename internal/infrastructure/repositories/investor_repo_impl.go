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

// InvestorRepository implements investor data operations
type InvestorRepository struct {
	db *gorm.DB
}

// NewInvestorRepository creates a new investor repository
func NewInvestorRepository(db *gorm.DB) *InvestorRepository {
	return &InvestorRepository{db: db}
}

// Create creates a new investor
func (r *InvestorRepository) Create(ctx context.Context, investor *entities.Investor) error {
	m := &models.Investor{
		Name:                 investor.Name,
		Email:                investor.Email,
		PasswordHash:         investor.PasswordHash,
		InvestmentFocus:      investor.InvestmentFocus.Ptr(),
		InvestmentBudget:     investor.InvestmentBudget.Ptr(),
		InvestmentSector:     investor.InvestmentSector.Ptr(),
		InvestmentExperience: investor.InvestmentExperience.Ptr(),
		LinkedInProfile:      investor.LinkedInProfile.Ptr(),
		Role:                 investor.Role.Ptr(),
	}

	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	investor.ID = m.ID
	investor.CreatedAt = m.CreatedAt
	investor.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets an investor by ID
func (r *InvestorRepository) GetByID(ctx context.Context, id uint) (*entities.Investor, error) {
	var m models.Investor
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return investorToEntity(&m), nil
}

// GetByEmail gets an investor by email
func (r *InvestorRepository) GetByEmail(ctx context.Context, email string) (*entities.Investor, error) {
	var m models.Investor
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return investorToEntity(&m), nil
}

// EmailTaken reports whether another investor already uses the email
func (r *InvestorRepository) EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Investor{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update persists all mutable investor fields
func (r *InvestorRepository) Update(ctx context.Context, investor *entities.Investor) error {
	updates := map[string]interface{}{
		"name":                  investor.Name,
		"email":                 investor.Email,
		"password_hash":         investor.PasswordHash,
		"investment_focus":      investor.InvestmentFocus.Ptr(),
		"investment_budget":     investor.InvestmentBudget.Ptr(),
		"investment_sector":     investor.InvestmentSector.Ptr(),
		"investment_experience": investor.InvestmentExperience.Ptr(),
		"linked_in_profile":     investor.LinkedInProfile.Ptr(),
		"role":                  investor.Role.Ptr(),
		"updated_at":            time.Now(),
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Investor{}).Where("id = ?", investor.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete hard-deletes an investor
func (r *InvestorRepository) Delete(ctx context.Context, id uint) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.Investor{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists investors with pagination
func (r *InvestorRepository) List(ctx context.Context, offset, limit int) ([]*entities.Investor, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Investor{})

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.Order("id ASC").Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}

	var investorModels []models.Investor
	if err := query.Find(&investorModels).Error; err != nil {
		return nil, 0, err
	}

	investors := make([]*entities.Investor, 0, len(investorModels))
	for i := range investorModels {
		investors = append(investors, investorToEntity(&investorModels[i]))
	}
	return investors, total, nil
}

func investorToEntity(m *models.Investor) *entities.Investor {
	return &entities.Investor{
		ID:                   m.ID,
		Name:                 m.Name,
		Email:                m.Email,
		PasswordHash:         m.PasswordHash,
		InvestmentFocus:      null.StringFromPtr(m.InvestmentFocus),
		InvestmentBudget:     null.StringFromPtr(m.InvestmentBudget),
		InvestmentSector:     null.StringFromPtr(m.InvestmentSector),
		InvestmentExperience: null.StringFromPtr(m.InvestmentExperience),
		LinkedInProfile:      null.StringFromPtr(m.LinkedInProfile),
		Role:                 null.StringFromPtr(m.Role),
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

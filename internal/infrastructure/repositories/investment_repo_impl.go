package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"fundraising.backend/internal/domain/entities"
	domainerrors "fundraising.backend/internal/domain/errors"
	"fundraising.backend/internal/infrastructure/models"
)

// InvestmentRepository implements investment data operations
type InvestmentRepository struct {
	db *gorm.DB
}

// NewInvestmentRepository creates a new investment repository
func NewInvestmentRepository(db *gorm.DB) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

// Create creates a new investment
func (r *InvestmentRepository) Create(ctx context.Context, investment *entities.Investment) error {
	m := &models.Investment{
		Amount:     investment.Amount,
		InvestorID: investment.InvestorID,
		ProjectID:  investment.ProjectID,
	}

	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	investment.ID = m.ID
	investment.CreatedAt = m.CreatedAt
	return nil
}

// GetByID gets an investment by ID
func (r *InvestmentRepository) GetByID(ctx context.Context, id uint) (*entities.Investment, error) {
	var m models.Investment
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return investmentToEntity(&m), nil
}

// Update persists the amount and project reference of an investment
func (r *InvestmentRepository) Update(ctx context.Context, investment *entities.Investment) error {
	updates := map[string]interface{}{
		"amount":     investment.Amount,
		"project_id": investment.ProjectID,
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Investment{}).Where("id = ?", investment.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete hard-deletes an investment
func (r *InvestmentRepository) Delete(ctx context.Context, id uint) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.Investment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists investments, optionally filtered by investor
func (r *InvestmentRepository) List(ctx context.Context, investorID *uint, offset, limit int) ([]*entities.Investment, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Investment{})
	if investorID != nil {
		db = db.Where("investor_id = ?", *investorID)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.Order("id ASC").Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}

	var investmentModels []models.Investment
	if err := query.Find(&investmentModels).Error; err != nil {
		return nil, 0, err
	}

	investments := make([]*entities.Investment, 0, len(investmentModels))
	for i := range investmentModels {
		investments = append(investments, investmentToEntity(&investmentModels[i]))
	}
	return investments, total, nil
}

// HasInvested reports whether the investor holds at least one
// investment in the project
func (r *InvestmentRepository) HasInvested(ctx context.Context, projectID, investorID uint) (bool, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Investment{}).
		Where("project_id = ? AND investor_id = ?", projectID, investorID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func investmentToEntity(m *models.Investment) *entities.Investment {
	return &entities.Investment{
		ID:         m.ID,
		Amount:     m.Amount,
		InvestorID: m.InvestorID,
		ProjectID:  m.ProjectID,
		CreatedAt:  m.CreatedAt,
	}
}

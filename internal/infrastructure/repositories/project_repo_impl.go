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

// ProjectRepository implements campaign data operations
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project
func (r *ProjectRepository) Create(ctx context.Context, project *entities.Project) error {
	if project.Status == "" {
		project.Status = entities.ProjectStatusPending
	}

	m := &models.Project{
		Name:                project.Name,
		Description:         project.Description,
		TargetAmount:        project.TargetAmount,
		FundsRaised:         project.FundsRaised,
		ImageURL:            project.ImageURL.Ptr(),
		PDFDocumentPath:     project.PDFDocumentPath.Ptr(),
		FounderID:           project.FounderID,
		Deadline:            project.Deadline,
		FundingType:         project.FundingType.Ptr(),
		MinInvestment:       project.MinInvestment,
		ContactEmail:        project.ContactEmail.Ptr(),
		Address:             project.Address.Ptr(),
		Phone:               project.Phone.Ptr(),
		PersonalizedMessage: project.PersonalizedMessage.Ptr(),
		MotivationLetter:    project.MotivationLetter.Ptr(),
		Category:            project.Category.Ptr(),
		Status:              project.Status,
	}

	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	project.ID = m.ID
	project.CreatedAt = m.CreatedAt
	project.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a project by ID
func (r *ProjectRepository) GetByID(ctx context.Context, id uint) (*entities.Project, error) {
	var m models.Project
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return projectToEntity(&m), nil
}

// Update persists the fields mutable through the campaign update path
func (r *ProjectRepository) Update(ctx context.Context, project *entities.Project) error {
	updates := map[string]interface{}{
		"name":          project.Name,
		"description":   project.Description,
		"target_amount": project.TargetAmount,
		"image_url":     project.ImageURL.Ptr(),
		"status":        project.Status,
		"updated_at":    time.Now(),
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Project{}).Where("id = ?", project.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete hard-deletes a project
func (r *ProjectRepository) Delete(ctx context.Context, id uint) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.Project{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists projects with pagination
func (r *ProjectRepository) List(ctx context.Context, offset, limit int) ([]*entities.Project, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Project{})

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.Order("created_at DESC").Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}

	var projectModels []models.Project
	if err := query.Find(&projectModels).Error; err != nil {
		return nil, 0, err
	}

	projects := make([]*entities.Project, 0, len(projectModels))
	for i := range projectModels {
		projects = append(projects, projectToEntity(&projectModels[i]))
	}
	return projects, total, nil
}

// CountInvestments counts the investments recorded against a project
func (r *ProjectRepository) CountInvestments(ctx context.Context, projectID uint) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Investment{}).
		Where("project_id = ?", projectID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// AddFunds adjusts funds_raised by delta as a column expression. The
// update is race-safe under concurrent investments.
func (r *ProjectRepository) AddFunds(ctx context.Context, projectID uint, delta float64) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Project{}).
		Where("id = ?", projectID).
		Update("funds_raised", gorm.Expr("funds_raised + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func projectToEntity(m *models.Project) *entities.Project {
	return &entities.Project{
		ID:                  m.ID,
		Name:                m.Name,
		Description:         m.Description,
		TargetAmount:        m.TargetAmount,
		FundsRaised:         m.FundsRaised,
		ImageURL:            null.StringFromPtr(m.ImageURL),
		PDFDocumentPath:     null.StringFromPtr(m.PDFDocumentPath),
		FounderID:           m.FounderID,
		Deadline:            m.Deadline,
		FundingType:         null.StringFromPtr(m.FundingType),
		MinInvestment:       m.MinInvestment,
		ContactEmail:        null.StringFromPtr(m.ContactEmail),
		Address:             null.StringFromPtr(m.Address),
		Phone:               null.StringFromPtr(m.Phone),
		PersonalizedMessage: null.StringFromPtr(m.PersonalizedMessage),
		MotivationLetter:    null.StringFromPtr(m.MotivationLetter),
		Category:            null.StringFromPtr(m.Category),
		Status:              m.Status,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

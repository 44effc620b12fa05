package repositories

import (
	"context"
	"errors"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"fundraising.backend/internal/domain/entities"
	domainerrors "fundraising.backend/internal/domain/errors"
	"fundraising.backend/internal/infrastructure/models"
)

// UpdateRepository implements campaign-post data operations
type UpdateRepository struct {
	db *gorm.DB
}

// NewUpdateRepository creates a new update repository
func NewUpdateRepository(db *gorm.DB) *UpdateRepository {
	return &UpdateRepository{db: db}
}

// Create creates a new campaign post
func (r *UpdateRepository) Create(ctx context.Context, update *entities.Update) error {
	m := &models.Update{
		Title:     update.Title.Ptr(),
		Content:   update.Content,
		ProjectID: update.ProjectID,
	}

	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	update.ID = m.ID
	update.CreatedAt = m.CreatedAt
	return nil
}

// GetByID gets a campaign post by ID
func (r *UpdateRepository) GetByID(ctx context.Context, id uint) (*entities.Update, error) {
	var m models.Update
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return updateToEntity(&m), nil
}

// Update persists the editable fields of a campaign post
func (r *UpdateRepository) Update(ctx context.Context, update *entities.Update) error {
	updates := map[string]interface{}{
		"title":   update.Title.Ptr(),
		"content": update.Content,
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Update{}).Where("id = ?", update.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete hard-deletes a campaign post
func (r *UpdateRepository) Delete(ctx context.Context, id uint) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.Update{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists campaign posts with pagination
func (r *UpdateRepository) List(ctx context.Context, offset, limit int) ([]*entities.Update, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Update{})

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.Order("id ASC").Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}

	var updateModels []models.Update
	if err := query.Find(&updateModels).Error; err != nil {
		return nil, 0, err
	}

	updates := make([]*entities.Update, 0, len(updateModels))
	for i := range updateModels {
		updates = append(updates, updateToEntity(&updateModels[i]))
	}
	return updates, total, nil
}

// ListByProject lists all posts of a project, newest first
func (r *UpdateRepository) ListByProject(ctx context.Context, projectID uint) ([]*entities.Update, error) {
	var updateModels []models.Update
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&updateModels).Error
	if err != nil {
		return nil, err
	}

	updates := make([]*entities.Update, 0, len(updateModels))
	for i := range updateModels {
		updates = append(updates, updateToEntity(&updateModels[i]))
	}
	return updates, nil
}

func updateToEntity(m *models.Update) *entities.Update {
	return &entities.Update{
		ID:        m.ID,
		Title:     null.StringFromPtr(m.Title),
		Content:   m.Content,
		ProjectID: m.ProjectID,
		CreatedAt: m.CreatedAt,
	}
}

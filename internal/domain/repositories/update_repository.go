package repositories

import (
	"context"

	"fundraising.backend/internal/domain/entities"
)

// UpdateRepository defines campaign-post data operations
type UpdateRepository interface {
	Create(ctx context.Context, update *entities.Update) error
	GetByID(ctx context.Context, id uint) (*entities.Update, error)
	Update(ctx context.Context, update *entities.Update) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]*entities.Update, int64, error)
	ListByProject(ctx context.Context, projectID uint) ([]*entities.Update, error)
}

package repositories

import (
	"context"

	"fundraising.backend/internal/domain/entities"
)

// AdminRepository defines admin data operations
type AdminRepository interface {
	Create(ctx context.Context, admin *entities.Admin) error
	GetByID(ctx context.Context, id uint) (*entities.Admin, error)
	GetByEmail(ctx context.Context, email string) (*entities.Admin, error)
	EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error)
	Update(ctx context.Context, admin *entities.Admin) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]*entities.Admin, int64, error)
}

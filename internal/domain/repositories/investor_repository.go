package repositories

import (
	"context"

	"fundraising.backend/internal/domain/entities"
)

// InvestorRepository defines investor data operations
type InvestorRepository interface {
	Create(ctx context.Context, investor *entities.Investor) error
	GetByID(ctx context.Context, id uint) (*entities.Investor, error)
	GetByEmail(ctx context.Context, email string) (*entities.Investor, error)
	EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error)
	Update(ctx context.Context, investor *entities.Investor) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]*entities.Investor, int64, error)
}

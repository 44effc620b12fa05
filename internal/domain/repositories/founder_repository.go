package repositories

import (
	"context"

	"fundraising.backend/internal/domain/entities"
)

// FounderRepository defines founder data operations
type FounderRepository interface {
	Create(ctx context.Context, founder *entities.Founder) error
	GetByID(ctx context.Context, id uint) (*entities.Founder, error)
	GetByEmail(ctx context.Context, email string) (*entities.Founder, error)
	// EmailTaken reports whether another founder (excluding excludeID)
	// already uses the email.
	EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error)
	Update(ctx context.Context, founder *entities.Founder) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]*entities.Founder, int64, error)
}

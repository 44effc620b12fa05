package repositories

import (
	"context"

	"fundraising.backend/internal/domain/entities"
)

// InvestmentRepository defines investment data operations
type InvestmentRepository interface {
	Create(ctx context.Context, investment *entities.Investment) error
	GetByID(ctx context.Context, id uint) (*entities.Investment, error)
	Update(ctx context.Context, investment *entities.Investment) error
	Delete(ctx context.Context, id uint) error
	// List returns investments, optionally filtered by investor.
	List(ctx context.Context, investorID *uint, offset, limit int) ([]*entities.Investment, int64, error)
	// HasInvested reports whether the investor holds at least one
	// investment in the project.
	HasInvested(ctx context.Context, projectID, investorID uint) (bool, error)
}

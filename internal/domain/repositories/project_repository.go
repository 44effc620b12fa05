package repositories

import (
	"context"

	"fundraising.backend/internal/domain/entities"
)

// ProjectRepository defines campaign data operations
type ProjectRepository interface {
	Create(ctx context.Context, project *entities.Project) error
	GetByID(ctx context.Context, id uint) (*entities.Project, error)
	Update(ctx context.Context, project *entities.Project) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]*entities.Project, int64, error)
	// CountInvestments returns the number of investments recorded
	// against a project.
	CountInvestments(ctx context.Context, projectID uint) (int64, error)
	// AddFunds adjusts funds_raised by delta as a SQL column expression
	// so concurrent writers cannot lose updates. Delta may be negative.
	AddFunds(ctx context.Context, projectID uint, delta float64) error
}

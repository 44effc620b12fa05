package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// Investment represents a monetary pledge by an investor toward a
// project
type Investment struct {
	ID         uint      `json:"id"`
	Amount     float64   `json:"amount"`
	InvestorID uint      `json:"investor_id"`
	ProjectID  uint      `json:"project_id"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CreateInvestmentInput represents input for creating an investment.
// The investor is taken from the authenticated caller.
type CreateInvestmentInput struct {
	ProjectID uint    `json:"project_id" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
}

// UpdateInvestmentInput represents a partial investment update. A
// project reassignment is revalidated against existing projects.
type UpdateInvestmentInput struct {
	ProjectID null.Uint    `json:"project_id"`
	Amount    null.Float64 `json:"amount"`
}

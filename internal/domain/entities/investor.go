package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// Investor represents a funding account
type Investor struct {
	ID                   uint        `json:"id"`
	Name                 string      `json:"name"`
	Email                string      `json:"email"`
	PasswordHash         string      `json:"-"`
	InvestmentFocus      null.String `json:"investmentFocus,omitempty"`
	InvestmentBudget     null.String `json:"investmentBudget,omitempty"`
	InvestmentSector     null.String `json:"investmentSector,omitempty"`
	InvestmentExperience null.String `json:"investmentExperience,omitempty"`
	LinkedInProfile      null.String `json:"linkedInProfile,omitempty"`
	Role                 null.String `json:"role,omitempty"`
	CreatedAt            time.Time   `json:"createdAt"`
	UpdatedAt            time.Time   `json:"updatedAt"`
}

// CreateInvestorInput represents input for registering an investor
type CreateInvestorInput struct {
	FullName             string `json:"fullName" binding:"required"`
	Email                string `json:"email" binding:"required,email"`
	Password             string `json:"password" binding:"required"`
	InvestmentFocus      string `json:"investmentFocus"`
	InvestmentBudget     string `json:"investmentBudget"`
	InvestmentSector     string `json:"investmentSector"`
	InvestmentExperience string `json:"investmentExperience"`
	LinkedInProfile      string `json:"linkedInProfile"`
	Role                 string `json:"role"`
}

// UpdateInvestorInput represents a partial investor update
type UpdateInvestorInput struct {
	FullName             null.String `json:"fullName"`
	Email                null.String `json:"email"`
	Password             null.String `json:"password"`
	InvestmentFocus      null.String `json:"investmentFocus"`
	InvestmentBudget     null.String `json:"investmentBudget"`
	InvestmentSector     null.String `json:"investmentSector"`
	InvestmentExperience null.String `json:"investmentExperience"`
	LinkedInProfile      null.String `json:"linkedInProfile"`
	Role                 null.String `json:"role"`
}

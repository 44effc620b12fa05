package usecases

import (
	"context"

	"github.com/volatiletech/null/v8"
	"fundraising.backend/internal/domain/entities"
	domainerrors "fundraising.backend/internal/domain/errors"
	"fundraising.backend/internal/domain/repositories"
	"fundraising.backend/pkg/crypto"
	"fundraising.backend/pkg/utils"
)

// InvestorUsecase handles investor account logic
type InvestorUsecase struct {
	investorRepo repositories.InvestorRepository
}

// NewInvestorUsecase creates a new investor usecase
func NewInvestorUsecase(investorRepo repositories.InvestorRepository) *InvestorUsecase {
	return &InvestorUsecase{investorRepo: investorRepo}
}

// Create registers an investor account
func (u *InvestorUsecase) Create(ctx context.Context, input *entities.CreateInvestorInput) (*entities.Investor, error) {
	taken, err := u.investorRepo.EmailTaken(ctx, input.Email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domainerrors.ErrAlreadyExists
	}

	hash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = "investor"
	}

	investor := &entities.Investor{
		Name:                 input.FullName,
		Email:                input.Email,
		PasswordHash:         hash,
		InvestmentFocus:      null.NewString(input.InvestmentFocus, input.InvestmentFocus != ""),
		InvestmentBudget:     null.NewString(input.InvestmentBudget, input.InvestmentBudget != ""),
		InvestmentSector:     null.NewString(input.InvestmentSector, input.InvestmentSector != ""),
		InvestmentExperience: null.NewString(input.InvestmentExperience, input.InvestmentExperience != ""),
		LinkedInProfile:      null.NewString(input.LinkedInProfile, input.LinkedInProfile != ""),
		Role:                 null.StringFrom(role),
	}

	if err := u.investorRepo.Create(ctx, investor); err != nil {
		return nil, err
	}
	return investor, nil
}

// Get returns an investor by ID
func (u *InvestorUsecase) Get(ctx context.Context, id uint) (*entities.Investor, error) {
	return u.investorRepo.GetByID(ctx, id)
}

// List returns investors with pagination metadata
func (u *InvestorUsecase) List(ctx context.Context, page, limit int) ([]*entities.Investor, utils.PaginationMeta, error) {
	p := utils.GetPaginationParams(page, limit)
	investors, total, err := u.investorRepo.List(ctx, p.CalculateOffset(), p.Limit)
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	return investors, utils.CalculateMeta(total, p.Page, p.Limit), nil
}

// Update applies a partial update to an investor
func (u *InvestorUsecase) Update(ctx context.Context, id uint, input *entities.UpdateInvestorInput) (*entities.Investor, error) {
	investor, err := u.investorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.FullName.Valid {
		investor.Name = input.FullName.String
	}
	if input.Email.Valid && input.Email.String != investor.Email {
		taken, err := u.investorRepo.EmailTaken(ctx, input.Email.String, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domainerrors.ErrAlreadyExists
		}
		investor.Email = input.Email.String
	}
	if input.Password.Valid {
		hash, err := crypto.HashPassword(input.Password.String)
		if err != nil {
			return nil, err
		}
		investor.PasswordHash = hash
	}
	if input.InvestmentFocus.Valid {
		investor.InvestmentFocus = input.InvestmentFocus
	}
	if input.InvestmentBudget.Valid {
		investor.InvestmentBudget = input.InvestmentBudget
	}
	if input.InvestmentSector.Valid {
		investor.InvestmentSector = input.InvestmentSector
	}
	if input.InvestmentExperience.Valid {
		investor.InvestmentExperience = input.InvestmentExperience
	}
	if input.LinkedInProfile.Valid {
		investor.LinkedInProfile = input.LinkedInProfile
	}
	if input.Role.Valid {
		investor.Role = input.Role
	}

	if err := u.investorRepo.Update(ctx, investor); err != nil {
		return nil, err
	}
	return investor, nil
}

// Delete removes an investor account
func (u *InvestorUsecase) Delete(ctx context.Context, id uint) error {
	return u.investorRepo.Delete(ctx, id)
}

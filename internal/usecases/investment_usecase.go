package usecases

import (
	"context"

	"fundraising.backend/internal/domain/entities"
	"fundraising.backend/internal/domain/repositories"
	"fundraising.backend/pkg/utils"
)

// InvestmentUsecase handles investment logic. Every mutation keeps the
// owning project's funds_raised equal to the sum of its live
// investments, executed inside one transaction.
type InvestmentUsecase struct {
	investmentRepo repositories.InvestmentRepository
	projectRepo    repositories.ProjectRepository
	uow            repositories.UnitOfWork
}

// NewInvestmentUsecase creates a new investment usecase
func NewInvestmentUsecase(
	investmentRepo repositories.InvestmentRepository,
	projectRepo repositories.ProjectRepository,
	uow repositories.UnitOfWork,
) *InvestmentUsecase {
	return &InvestmentUsecase{
		investmentRepo: investmentRepo,
		projectRepo:    projectRepo,
		uow:            uow,
	}
}

// Create records an investment by the calling investor and adds its
// amount to the project's running total. Both writes commit together
// or not at all.
func (u *InvestmentUsecase) Create(ctx context.Context, investorID uint, input *entities.CreateInvestmentInput) (*entities.Investment, error) {
	investment := &entities.Investment{
		Amount:     input.Amount,
		InvestorID: investorID,
		ProjectID:  input.ProjectID,
	}

	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		if _, err := u.projectRepo.GetByID(txCtx, input.ProjectID); err != nil {
			return err
		}
		if err := u.investmentRepo.Create(txCtx, investment); err != nil {
			return err
		}
		return u.projectRepo.AddFunds(txCtx, input.ProjectID, input.Amount)
	})
	if err != nil {
		return nil, err
	}
	return investment, nil
}

// Get returns an investment by ID
func (u *InvestmentUsecase) Get(ctx context.Context, id uint) (*entities.Investment, error) {
	return u.investmentRepo.GetByID(ctx, id)
}

// List returns investments, optionally filtered by investor
func (u *InvestmentUsecase) List(ctx context.Context, investorID *uint, page, limit int) ([]*entities.Investment, utils.PaginationMeta, error) {
	p := utils.GetPaginationParams(page, limit)
	investments, total, err := u.investmentRepo.List(ctx, investorID, p.CalculateOffset(), p.Limit)
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	return investments, utils.CalculateMeta(total, p.Page, p.Limit), nil
}

// ListForInvestor returns the calling investor's investments
func (u *InvestmentUsecase) ListForInvestor(ctx context.Context, investorID uint) ([]*entities.Investment, error) {
	investments, _, err := u.investmentRepo.List(ctx, &investorID, 0, 0)
	return investments, err
}

// Update changes the amount and/or reassigns the project of an
// investment. The affected project totals are adjusted in the same
// transaction: the old amount leaves the old project, the new amount
// lands on the new one.
func (u *InvestmentUsecase) Update(ctx context.Context, id uint, input *entities.UpdateInvestmentInput) (*entities.Investment, error) {
	var updated *entities.Investment

	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		investment, err := u.investmentRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		oldProjectID := investment.ProjectID
		oldAmount := investment.Amount

		if input.ProjectID.Valid {
			newProjectID := input.ProjectID.Uint
			if _, err := u.projectRepo.GetByID(txCtx, newProjectID); err != nil {
				return err
			}
			investment.ProjectID = newProjectID
		}
		if input.Amount.Valid {
			investment.Amount = input.Amount.Float64
		}

		if err := u.investmentRepo.Update(txCtx, investment); err != nil {
			return err
		}

		if err := u.projectRepo.AddFunds(txCtx, oldProjectID, -oldAmount); err != nil {
			return err
		}
		if err := u.projectRepo.AddFunds(txCtx, investment.ProjectID, investment.Amount); err != nil {
			return err
		}

		updated = investment
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes an investment and subtracts its amount from the
// project total in the same transaction
func (u *InvestmentUsecase) Delete(ctx context.Context, id uint) error {
	return u.uow.Do(ctx, func(txCtx context.Context) error {
		investment, err := u.investmentRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if err := u.investmentRepo.Delete(txCtx, id); err != nil {
			return err
		}
		return u.projectRepo.AddFunds(txCtx, investment.ProjectID, -investment.Amount)
	})
}

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

// FounderUsecase handles founder account logic
type FounderUsecase struct {
	founderRepo repositories.FounderRepository
}

// NewFounderUsecase creates a new founder usecase
func NewFounderUsecase(founderRepo repositories.FounderRepository) *FounderUsecase {
	return &FounderUsecase{founderRepo: founderRepo}
}

// Create registers a founder account
func (u *FounderUsecase) Create(ctx context.Context, input *entities.CreateFounderInput) (*entities.Founder, error) {
	taken, err := u.founderRepo.EmailTaken(ctx, input.Email, 0)
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

	founder := &entities.Founder{
		Name:           input.FullName,
		Email:          input.Email,
		PasswordHash:   hash,
		ContactDetails: null.NewString(input.ContactDetails, input.ContactDetails != ""),
		CompanyName:    null.NewString(input.CompanyName, input.CompanyName != ""),
		Industry:       null.NewString(input.Industry, input.Industry != ""),
		Role:           null.NewString(input.Role, input.Role != ""),
	}

	if err := u.founderRepo.Create(ctx, founder); err != nil {
		return nil, err
	}
	return founder, nil
}

// Get returns a founder by ID
func (u *FounderUsecase) Get(ctx context.Context, id uint) (*entities.Founder, error) {
	return u.founderRepo.GetByID(ctx, id)
}

// List returns founders with pagination metadata
func (u *FounderUsecase) List(ctx context.Context, page, limit int) ([]*entities.Founder, utils.PaginationMeta, error) {
	p := utils.GetPaginationParams(page, limit)
	founders, total, err := u.founderRepo.List(ctx, p.CalculateOffset(), p.Limit)
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	return founders, utils.CalculateMeta(total, p.Page, p.Limit), nil
}

// Update applies a partial update. Only fields present in the input
// are overwritten; an email change re-checks uniqueness.
func (u *FounderUsecase) Update(ctx context.Context, id uint, input *entities.UpdateFounderInput) (*entities.Founder, error) {
	founder, err := u.founderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name.Valid {
		founder.Name = input.Name.String
	}
	if input.Email.Valid && input.Email.String != founder.Email {
		taken, err := u.founderRepo.EmailTaken(ctx, input.Email.String, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domainerrors.ErrAlreadyExists
		}
		founder.Email = input.Email.String
	}
	if input.Password.Valid {
		hash, err := crypto.HashPassword(input.Password.String)
		if err != nil {
			return nil, err
		}
		founder.PasswordHash = hash
	}
	if input.ContactDetails.Valid {
		founder.ContactDetails = input.ContactDetails
	}
	if input.CompanyName.Valid {
		founder.CompanyName = input.CompanyName
	}
	if input.Industry.Valid {
		founder.Industry = input.Industry
	}
	if input.Role.Valid {
		founder.Role = input.Role
	}

	if err := u.founderRepo.Update(ctx, founder); err != nil {
		return nil, err
	}
	return founder, nil
}

// Delete removes a founder account
func (u *FounderUsecase) Delete(ctx context.Context, id uint) error {
	return u.founderRepo.Delete(ctx, id)
}

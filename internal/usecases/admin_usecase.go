package usecases

import (
	"context"

	"fundraising.backend/internal/domain/entities"
	domainerrors "fundraising.backend/internal/domain/errors"
	"fundraising.backend/internal/domain/repositories"
	"fundraising.backend/pkg/crypto"
	"fundraising.backend/pkg/utils"
)

// AdminUsecase handles platform administrator accounts. Creation is
// gated by a shared bootstrap secret held in configuration.
type AdminUsecase struct {
	adminRepo     repositories.AdminRepository
	creationToken string
}

// NewAdminUsecase creates a new admin usecase
func NewAdminUsecase(adminRepo repositories.AdminRepository, creationToken string) *AdminUsecase {
	return &AdminUsecase{
		adminRepo:     adminRepo,
		creationToken: creationToken,
	}
}

// Create registers an admin. The secret is checked before any other
// validation; a mismatch leaves the table untouched.
func (u *AdminUsecase) Create(ctx context.Context, token string, input *entities.CreateAdminInput) (*entities.Admin, error) {
	if token != u.creationToken {
		return nil, domainerrors.ErrForbidden
	}

	taken, err := u.adminRepo.EmailTaken(ctx, input.Email, 0)
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

	admin := &entities.Admin{
		Email:        input.Email,
		PasswordHash: hash,
	}

	if err := u.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// Get returns an admin by ID
func (u *AdminUsecase) Get(ctx context.Context, id uint) (*entities.Admin, error) {
	return u.adminRepo.GetByID(ctx, id)
}

// List returns admins with pagination metadata
func (u *AdminUsecase) List(ctx context.Context, page, limit int) ([]*entities.Admin, utils.PaginationMeta, error) {
	p := utils.GetPaginationParams(page, limit)
	admins, total, err := u.adminRepo.List(ctx, p.CalculateOffset(), p.Limit)
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	return admins, utils.CalculateMeta(total, p.Page, p.Limit), nil
}

// Update applies a partial update to an admin
func (u *AdminUsecase) Update(ctx context.Context, id uint, input *entities.UpdateAdminInput) (*entities.Admin, error) {
	admin, err := u.adminRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil && *input.Email != admin.Email {
		taken, err := u.adminRepo.EmailTaken(ctx, *input.Email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domainerrors.ErrAlreadyExists
		}
		admin.Email = *input.Email
	}
	if input.Password != nil {
		hash, err := crypto.HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		admin.PasswordHash = hash
	}

	if err := u.adminRepo.Update(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// Delete removes an admin account
func (u *AdminUsecase) Delete(ctx context.Context, id uint) error {
	return u.adminRepo.Delete(ctx, id)
}

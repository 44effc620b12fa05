package usecases

import (
	"context"

	"fundraising.backend/internal/domain/entities"
	domainerrors "fundraising.backend/internal/domain/errors"
	"fundraising.backend/internal/domain/repositories"
	"fundraising.backend/pkg/crypto"
	"fundraising.backend/pkg/jwt"
)

// AuthUsecase resolves credentials against the three account tables and
// issues bearer tokens
type AuthUsecase struct {
	founderRepo  repositories.FounderRepository
	investorRepo repositories.InvestorRepository
	adminRepo    repositories.AdminRepository
	jwtService   *jwt.JWTService
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	founderRepo repositories.FounderRepository,
	investorRepo repositories.InvestorRepository,
	adminRepo repositories.AdminRepository,
	jwtService *jwt.JWTService,
) *AuthUsecase {
	return &AuthUsecase{
		founderRepo:  founderRepo,
		investorRepo: investorRepo,
		adminRepo:    adminRepo,
		jwtService:   jwtService,
	}
}

// Login authenticates an account of the declared type. A missing
// account and a wrong password are indistinguishable to the caller.
func (u *AuthUsecase) Login(ctx context.Context, email, password string, accountType entities.AccountType) (*entities.SignInResponse, error) {
	if !accountType.Valid() {
		return nil, domainerrors.ErrInvalidCredentials
	}

	var (
		account interface{}
		id      uint
		hash    string
	)

	switch accountType {
	case entities.AccountTypeFounder:
		founder, err := u.founderRepo.GetByEmail(ctx, email)
		if err != nil {
			return nil, domainerrors.ErrInvalidCredentials
		}
		account, id, hash = founder, founder.ID, founder.PasswordHash
	case entities.AccountTypeInvestor:
		investor, err := u.investorRepo.GetByEmail(ctx, email)
		if err != nil {
			return nil, domainerrors.ErrInvalidCredentials
		}
		account, id, hash = investor, investor.ID, investor.PasswordHash
	case entities.AccountTypeAdmin:
		admin, err := u.adminRepo.GetByEmail(ctx, email)
		if err != nil {
			return nil, domainerrors.ErrInvalidCredentials
		}
		account, id, hash = admin, admin.ID, admin.PasswordHash
	}

	if !crypto.CheckPassword(password, hash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := u.jwtService.GenerateToken(id, email, string(accountType))
	if err != nil {
		return nil, err
	}

	return &entities.SignInResponse{
		AccountType: accountType,
		Account:     account,
		AccessToken: token,
	}, nil
}

// SignIn tries the founder, investor and admin credential domains in
// order and returns the first match
func (u *AuthUsecase) SignIn(ctx context.Context, email, password string) (*entities.SignInResponse, error) {
	for _, accountType := range []entities.AccountType{
		entities.AccountTypeFounder,
		entities.AccountTypeInvestor,
		entities.AccountTypeAdmin,
	} {
		resp, err := u.Login(ctx, email, password, accountType)
		if err == nil {
			return resp, nil
		}
		if err != domainerrors.ErrInvalidCredentials {
			return nil, err
		}
	}
	return nil, domainerrors.ErrInvalidCredentials
}

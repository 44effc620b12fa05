package usecases_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"fundraising.backend/internal/domain/entities"
	domainerrors "fundraising.backend/internal/domain/errors"
	"fundraising.backend/internal/usecases"
	"fundraising.backend/pkg/crypto"
	"fundraising.backend/pkg/jwt"
)

func newAuthUsecase(founderRepo *MockFounderRepository, investorRepo *MockInvestorRepository, adminRepo *MockAdminRepository) *usecases.AuthUsecase {
	return usecases.NewAuthUsecase(founderRepo, investorRepo, adminRepo, jwt.NewJWTService("test-secret", time.Hour))
}

func TestAuthUsecase_Login_Founder(t *testing.T) {
	founderRepo := new(MockFounderRepository)
	investorRepo := new(MockInvestorRepository)
	adminRepo := new(MockAdminRepository)
	uc := newAuthUsecase(founderRepo, investorRepo, adminRepo)

	hash, err := crypto.HashPassword("Password123!")
	require.NoError(t, err)
	founder := &entities.Founder{ID: 7, Name: "Ada", Email: "ada@example.com", PasswordHash: hash}

	founderRepo.On("GetByEmail", context.Background(), "ada@example.com").Return(founder, nil).Once()

	resp, err := uc.Login(context.Background(), "ada@example.com", "Password123!", entities.AccountTypeFounder)
	require.NoError(t, err)
	assert.Equal(t, entities.AccountTypeFounder, resp.AccountType)
	assert.Equal(t, founder, resp.Account)
	assert.NotEmpty(t, resp.AccessToken)

	claims, err := jwt.NewJWTService("test-secret", time.Hour).ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.EqualValues(t, 7, claims.AccountID)
	assert.Equal(t, "founder", claims.AccountType)
}

func TestAuthUsecase_Login_WrongPassword(t *testing.T) {
	founderRepo := new(MockFounderRepository)
	uc := newAuthUsecase(founderRepo, new(MockInvestorRepository), new(MockAdminRepository))

	hash, err := crypto.HashPassword("Password123!")
	require.NoError(t, err)
	founder := &entities.Founder{ID: 7, Email: "ada@example.com", PasswordHash: hash}
	founderRepo.On("GetByEmail", context.Background(), "ada@example.com").Return(founder, nil).Once()

	_, err = uc.Login(context.Background(), "ada@example.com", "nope", entities.AccountTypeFounder)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthUsecase_Login_UnknownAccount(t *testing.T) {
	investorRepo := new(MockInvestorRepository)
	uc := newAuthUsecase(new(MockFounderRepository), investorRepo, new(MockAdminRepository))

	investorRepo.On("GetByEmail", context.Background(), "ghost@example.com").Return(nil, domainerrors.ErrNotFound).Once()

	_, err := uc.Login(context.Background(), "ghost@example.com", "pw", entities.AccountTypeInvestor)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthUsecase_Login_InvalidAccountType(t *testing.T) {
	uc := newAuthUsecase(new(MockFounderRepository), new(MockInvestorRepository), new(MockAdminRepository))

	_, err := uc.Login(context.Background(), "a@b.com", "pw", entities.AccountType("wizard"))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthUsecase_SignIn_ResolvesInvestor(t *testing.T) {
	founderRepo := new(MockFounderRepository)
	investorRepo := new(MockInvestorRepository)
	adminRepo := new(MockAdminRepository)
	uc := newAuthUsecase(founderRepo, investorRepo, adminRepo)

	hash, err := crypto.HashPassword("Password123!")
	require.NoError(t, err)
	investor := &entities.Investor{ID: 3, Email: "bo@example.com", PasswordHash: hash}

	founderRepo.On("GetByEmail", context.Background(), "bo@example.com").Return(nil, domainerrors.ErrNotFound).Once()
	investorRepo.On("GetByEmail", context.Background(), "bo@example.com").Return(investor, nil).Once()

	resp, err := uc.SignIn(context.Background(), "bo@example.com", "Password123!")
	require.NoError(t, err)
	assert.Equal(t, entities.AccountTypeInvestor, resp.AccountType)
	adminRepo.AssertNotCalled(t, "GetByEmail")
}

func TestAuthUsecase_SignIn_SameEmailPrefersFounder(t *testing.T) {
	founderRepo := new(MockFounderRepository)
	investorRepo := new(MockInvestorRepository)
	uc := newAuthUsecase(founderRepo, investorRepo, new(MockAdminRepository))

	hash, err := crypto.HashPassword("Password123!")
	require.NoError(t, err)
	founder := &entities.Founder{ID: 1, Email: "dual@example.com", PasswordHash: hash}

	founderRepo.On("GetByEmail", context.Background(), "dual@example.com").Return(founder, nil).Once()

	resp, err := uc.SignIn(context.Background(), "dual@example.com", "Password123!")
	require.NoError(t, err)
	assert.Equal(t, entities.AccountTypeFounder, resp.AccountType)
	investorRepo.AssertNotCalled(t, "GetByEmail")
}

func TestAuthUsecase_SignIn_NoMatch(t *testing.T) {
	founderRepo := new(MockFounderRepository)
	investorRepo := new(MockInvestorRepository)
	adminRepo := new(MockAdminRepository)
	uc := newAuthUsecase(founderRepo, investorRepo, adminRepo)

	founderRepo.On("GetByEmail", context.Background(), "x@y.com").Return(nil, domainerrors.ErrNotFound).Once()
	investorRepo.On("GetByEmail", context.Background(), "x@y.com").Return(nil, domainerrors.ErrNotFound).Once()
	adminRepo.On("GetByEmail", context.Background(), "x@y.com").Return(nil, domainerrors.ErrNotFound).Once()

	_, err := uc.SignIn(context.Background(), "x@y.com", "pw")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

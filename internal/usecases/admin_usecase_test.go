package usecases_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"fundraising.backend/internal/domain/entities"
	domainerrors "fundraising.backend/internal/domain/errors"
	"fundraising.backend/internal/usecases"
	"fundraising.backend/pkg/crypto"
)

func TestAdminUsecase_Create(t *testing.T) {
	repo := new(MockAdminRepository)
	uc := usecases.NewAdminUsecase(repo, "bootstrap-secret")

	repo.On("EmailTaken", context.Background(), "root@example.com", uint(0)).Return(false, nil).Once()
	repo.On("Create", context.Background(), mock.AnythingOfType("*entities.Admin")).Return(nil).Once()

	admin, err := uc.Create(context.Background(), "bootstrap-secret", &entities.CreateAdminInput{
		Email:    "root@example.com",
		Password: "Password123!",
	})
	require.NoError(t, err)
	assert.Equal(t, "root@example.com", admin.Email)
	assert.True(t, crypto.CheckPassword("Password123!", admin.PasswordHash))
}

func TestAdminUsecase_Create_WrongSecret(t *testing.T) {
	repo := new(MockAdminRepository)
	uc := usecases.NewAdminUsecase(repo, "bootstrap-secret")

	_, err := uc.Create(context.Background(), "wrong", &entities.CreateAdminInput{
		Email:    "root@example.com",
		Password: "pw",
	})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	// the secret gate fires before anything touches the table
	repo.AssertNotCalled(t, "EmailTaken")
	repo.AssertNotCalled(t, "Create")
}

func TestAdminUsecase_Create_DuplicateEmail(t *testing.T) {
	repo := new(MockAdminRepository)
	uc := usecases.NewAdminUsecase(repo, "s")

	repo.On("EmailTaken", context.Background(), "root@example.com", uint(0)).Return(true, nil).Once()

	_, err := uc.Create(context.Background(), "s", &entities.CreateAdminInput{
		Email:    "root@example.com",
		Password: "pw",
	})
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
}

func TestAdminUsecase_Update(t *testing.T) {
	repo := new(MockAdminRepository)
	uc := usecases.NewAdminUsecase(repo, "s")

	existing := &entities.Admin{ID: 1, Email: "root@example.com", PasswordHash: "old"}
	repo.On("GetByID", context.Background(), uint(1)).Return(existing, nil).Once()
	repo.On("EmailTaken", context.Background(), "new@example.com", uint(1)).Return(false, nil).Once()
	repo.On("Update", context.Background(), mock.AnythingOfType("*entities.Admin")).Return(nil).Once()

	newEmail := "new@example.com"
	newPassword := "NewPassword1!"
	admin, err := uc.Update(context.Background(), 1, &entities.UpdateAdminInput{
		Email:    &newEmail,
		Password: &newPassword,
	})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", admin.Email)
	assert.True(t, crypto.CheckPassword("NewPassword1!", admin.PasswordHash))
}

func TestAdminUsecase_Update_EmailTaken(t *testing.T) {
	repo := new(MockAdminRepository)
	uc := usecases.NewAdminUsecase(repo, "s")

	existing := &entities.Admin{ID: 1, Email: "root@example.com", PasswordHash: "old"}
	repo.On("GetByID", context.Background(), uint(1)).Return(existing, nil).Once()
	repo.On("EmailTaken", context.Background(), "other@example.com", uint(1)).Return(true, nil).Once()

	otherEmail := "other@example.com"
	_, err := uc.Update(context.Background(), 1, &entities.UpdateAdminInput{Email: &otherEmail})
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
	repo.AssertNotCalled(t, "Update")
}

func TestAdminUsecase_List(t *testing.T) {
	repo := new(MockAdminRepository)
	uc := usecases.NewAdminUsecase(repo, "s")

	repo.On("List", context.Background(), 0, 0).Return([]*entities.Admin{{ID: 1}}, int64(1), nil).Once()

	items, meta, err := uc.List(context.Background(), 1, 0)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.EqualValues(t, 1, meta.TotalCount)
}

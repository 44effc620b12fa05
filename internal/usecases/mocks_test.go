package usecases_test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
	"fundraising.backend/internal/domain/entities"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, fn func(context.Context) error) error {
	m.Called(ctx, fn)
	return fn(ctx)
}

// Mock FounderRepository
type MockFounderRepository struct {
	mock.Mock
}

func (m *MockFounderRepository) Create(ctx context.Context, founder *entities.Founder) error {
	args := m.Called(ctx, founder)
	return args.Error(0)
}

func (m *MockFounderRepository) GetByID(ctx context.Context, id uint) (*entities.Founder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Founder), args.Error(1)
}

func (m *MockFounderRepository) GetByEmail(ctx context.Context, email string) (*entities.Founder, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Founder), args.Error(1)
}

func (m *MockFounderRepository) EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFounderRepository) Update(ctx context.Context, founder *entities.Founder) error {
	args := m.Called(ctx, founder)
	return args.Error(0)
}

func (m *MockFounderRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFounderRepository) List(ctx context.Context, offset, limit int) ([]*entities.Founder, int64, error) {
	args := m.Called(ctx, offset, limit)
	return args.Get(0).([]*entities.Founder), args.Get(1).(int64), args.Error(2)
}

// Mock InvestorRepository
type MockInvestorRepository struct {
	mock.Mock
}

func (m *MockInvestorRepository) Create(ctx context.Context, investor *entities.Investor) error {
	args := m.Called(ctx, investor)
	return args.Error(0)
}

func (m *MockInvestorRepository) GetByID(ctx context.Context, id uint) (*entities.Investor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Investor), args.Error(1)
}

func (m *MockInvestorRepository) GetByEmail(ctx context.Context, email string) (*entities.Investor, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Investor), args.Error(1)
}

func (m *MockInvestorRepository) EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockInvestorRepository) Update(ctx context.Context, investor *entities.Investor) error {
	args := m.Called(ctx, investor)
	return args.Error(0)
}

func (m *MockInvestorRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInvestorRepository) List(ctx context.Context, offset, limit int) ([]*entities.Investor, int64, error) {
	args := m.Called(ctx, offset, limit)
	return args.Get(0).([]*entities.Investor), args.Get(1).(int64), args.Error(2)
}

// Mock AdminRepository
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) Create(ctx context.Context, admin *entities.Admin) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

func (m *MockAdminRepository) GetByID(ctx context.Context, id uint) (*entities.Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Admin), args.Error(1)
}

func (m *MockAdminRepository) GetByEmail(ctx context.Context, email string) (*entities.Admin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Admin), args.Error(1)
}

func (m *MockAdminRepository) EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAdminRepository) Update(ctx context.Context, admin *entities.Admin) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

func (m *MockAdminRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAdminRepository) List(ctx context.Context, offset, limit int) ([]*entities.Admin, int64, error) {
	args := m.Called(ctx, offset, limit)
	return args.Get(0).([]*entities.Admin), args.Get(1).(int64), args.Error(2)
}

// Mock ProjectRepository
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Create(ctx context.Context, project *entities.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) GetByID(ctx context.Context, id uint) (*entities.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Project), args.Error(1)
}

func (m *MockProjectRepository) Update(ctx context.Context, project *entities.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProjectRepository) List(ctx context.Context, offset, limit int) ([]*entities.Project, int64, error) {
	args := m.Called(ctx, offset, limit)
	return args.Get(0).([]*entities.Project), args.Get(1).(int64), args.Error(2)
}

func (m *MockProjectRepository) CountInvestments(ctx context.Context, projectID uint) (int64, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProjectRepository) AddFunds(ctx context.Context, projectID uint, delta float64) error {
	args := m.Called(ctx, projectID, delta)
	return args.Error(0)
}

// Mock InvestmentRepository
type MockInvestmentRepository struct {
	mock.Mock
}

func (m *MockInvestmentRepository) Create(ctx context.Context, investment *entities.Investment) error {
	args := m.Called(ctx, investment)
	return args.Error(0)
}

func (m *MockInvestmentRepository) GetByID(ctx context.Context, id uint) (*entities.Investment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Investment), args.Error(1)
}

func (m *MockInvestmentRepository) Update(ctx context.Context, investment *entities.Investment) error {
	args := m.Called(ctx, investment)
	return args.Error(0)
}

func (m *MockInvestmentRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInvestmentRepository) List(ctx context.Context, investorID *uint, offset, limit int) ([]*entities.Investment, int64, error) {
	args := m.Called(ctx, investorID, offset, limit)
	return args.Get(0).([]*entities.Investment), args.Get(1).(int64), args.Error(2)
}

func (m *MockInvestmentRepository) HasInvested(ctx context.Context, projectID, investorID uint) (bool, error) {
	args := m.Called(ctx, projectID, investorID)
	return args.Bool(0), args.Error(1)
}

// Mock UpdateRepository
type MockUpdateRepository struct {
	mock.Mock
}

func (m *MockUpdateRepository) Create(ctx context.Context, update *entities.Update) error {
	args := m.Called(ctx, update)
	return args.Error(0)
}

func (m *MockUpdateRepository) GetByID(ctx context.Context, id uint) (*entities.Update, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Update), args.Error(1)
}

func (m *MockUpdateRepository) Update(ctx context.Context, update *entities.Update) error {
	args := m.Called(ctx, update)
	return args.Error(0)
}

func (m *MockUpdateRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUpdateRepository) List(ctx context.Context, offset, limit int) ([]*entities.Update, int64, error) {
	args := m.Called(ctx, offset, limit)
	return args.Get(0).([]*entities.Update), args.Get(1).(int64), args.Error(2)
}

func (m *MockUpdateRepository) ListByProject(ctx context.Context, projectID uint) ([]*entities.Update, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Update), args.Error(1)
}

// Mock FileStore
type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Save(prefix, originalName string, r io.Reader) (string, error) {
	args := m.Called(prefix, originalName, r)
	return args.String(0), args.Error(1)
}

func (m *MockFileStore) Exists(path string) bool {
	args := m.Called(path)
	return args.Bool(0)
}

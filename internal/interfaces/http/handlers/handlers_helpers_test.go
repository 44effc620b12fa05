package handlers

import (
	"context"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
	"fundraising.backend/internal/domain/entities"
	domainerrors "fundraising.backend/internal/domain/errors"
	"fundraising.backend/internal/interfaces/http/middleware"
)

// Func-field stubs for every repository. Unset fields fall back to
// a not-found read or a no-op write.

type founderRepoStub struct {
	createFn     func(ctx context.Context, founder *entities.Founder) error
	getByIDFn    func(ctx context.Context, id uint) (*entities.Founder, error)
	getByEmailFn func(ctx context.Context, email string) (*entities.Founder, error)
	emailTakenFn func(ctx context.Context, email string, excludeID uint) (bool, error)
	updateFn     func(ctx context.Context, founder *entities.Founder) error
	deleteFn     func(ctx context.Context, id uint) error
	listFn       func(ctx context.Context, offset, limit int) ([]*entities.Founder, int64, error)
}

func (s *founderRepoStub) Create(ctx context.Context, founder *entities.Founder) error {
	if s.createFn != nil {
		return s.createFn(ctx, founder)
	}
	return nil
}

func (s *founderRepoStub) GetByID(ctx context.Context, id uint) (*entities.Founder, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *founderRepoStub) GetByEmail(ctx context.Context, email string) (*entities.Founder, error) {
	if s.getByEmailFn != nil {
		return s.getByEmailFn(ctx, email)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *founderRepoStub) EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error) {
	if s.emailTakenFn != nil {
		return s.emailTakenFn(ctx, email, excludeID)
	}
	return false, nil
}

func (s *founderRepoStub) Update(ctx context.Context, founder *entities.Founder) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, founder)
	}
	return nil
}

func (s *founderRepoStub) Delete(ctx context.Context, id uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *founderRepoStub) List(ctx context.Context, offset, limit int) ([]*entities.Founder, int64, error) {
	if s.listFn != nil {
		return s.listFn(ctx, offset, limit)
	}
	return []*entities.Founder{}, 0, nil
}

type investorRepoStub struct {
	createFn     func(ctx context.Context, investor *entities.Investor) error
	getByIDFn    func(ctx context.Context, id uint) (*entities.Investor, error)
	getByEmailFn func(ctx context.Context, email string) (*entities.Investor, error)
	emailTakenFn func(ctx context.Context, email string, excludeID uint) (bool, error)
	updateFn     func(ctx context.Context, investor *entities.Investor) error
	deleteFn     func(ctx context.Context, id uint) error
	listFn       func(ctx context.Context, offset, limit int) ([]*entities.Investor, int64, error)
}

func (s *investorRepoStub) Create(ctx context.Context, investor *entities.Investor) error {
	if s.createFn != nil {
		return s.createFn(ctx, investor)
	}
	return nil
}

func (s *investorRepoStub) GetByID(ctx context.Context, id uint) (*entities.Investor, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *investorRepoStub) GetByEmail(ctx context.Context, email string) (*entities.Investor, error) {
	if s.getByEmailFn != nil {
		return s.getByEmailFn(ctx, email)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *investorRepoStub) EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error) {
	if s.emailTakenFn != nil {
		return s.emailTakenFn(ctx, email, excludeID)
	}
	return false, nil
}

func (s *investorRepoStub) Update(ctx context.Context, investor *entities.Investor) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, investor)
	}
	return nil
}

func (s *investorRepoStub) Delete(ctx context.Context, id uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *investorRepoStub) List(ctx context.Context, offset, limit int) ([]*entities.Investor, int64, error) {
	if s.listFn != nil {
		return s.listFn(ctx, offset, limit)
	}
	return []*entities.Investor{}, 0, nil
}

type adminRepoStub struct {
	createFn     func(ctx context.Context, admin *entities.Admin) error
	getByIDFn    func(ctx context.Context, id uint) (*entities.Admin, error)
	getByEmailFn func(ctx context.Context, email string) (*entities.Admin, error)
	emailTakenFn func(ctx context.Context, email string, excludeID uint) (bool, error)
	updateFn     func(ctx context.Context, admin *entities.Admin) error
	deleteFn     func(ctx context.Context, id uint) error
	listFn       func(ctx context.Context, offset, limit int) ([]*entities.Admin, int64, error)
}

func (s *adminRepoStub) Create(ctx context.Context, admin *entities.Admin) error {
	if s.createFn != nil {
		return s.createFn(ctx, admin)
	}
	return nil
}

func (s *adminRepoStub) GetByID(ctx context.Context, id uint) (*entities.Admin, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *adminRepoStub) GetByEmail(ctx context.Context, email string) (*entities.Admin, error) {
	if s.getByEmailFn != nil {
		return s.getByEmailFn(ctx, email)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *adminRepoStub) EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error) {
	if s.emailTakenFn != nil {
		return s.emailTakenFn(ctx, email, excludeID)
	}
	return false, nil
}

func (s *adminRepoStub) Update(ctx context.Context, admin *entities.Admin) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, admin)
	}
	return nil
}

func (s *adminRepoStub) Delete(ctx context.Context, id uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *adminRepoStub) List(ctx context.Context, offset, limit int) ([]*entities.Admin, int64, error) {
	if s.listFn != nil {
		return s.listFn(ctx, offset, limit)
	}
	return []*entities.Admin{}, 0, nil
}

type projectRepoStub struct {
	createFn           func(ctx context.Context, project *entities.Project) error
	getByIDFn          func(ctx context.Context, id uint) (*entities.Project, error)
	updateFn           func(ctx context.Context, project *entities.Project) error
	deleteFn           func(ctx context.Context, id uint) error
	listFn             func(ctx context.Context, offset, limit int) ([]*entities.Project, int64, error)
	countInvestmentsFn func(ctx context.Context, projectID uint) (int64, error)
	addFundsFn         func(ctx context.Context, projectID uint, delta float64) error
}

func (s *projectRepoStub) Create(ctx context.Context, project *entities.Project) error {
	if s.createFn != nil {
		return s.createFn(ctx, project)
	}
	return nil
}

func (s *projectRepoStub) GetByID(ctx context.Context, id uint) (*entities.Project, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *projectRepoStub) Update(ctx context.Context, project *entities.Project) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, project)
	}
	return nil
}

func (s *projectRepoStub) Delete(ctx context.Context, id uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *projectRepoStub) List(ctx context.Context, offset, limit int) ([]*entities.Project, int64, error) {
	if s.listFn != nil {
		return s.listFn(ctx, offset, limit)
	}
	return []*entities.Project{}, 0, nil
}

func (s *projectRepoStub) CountInvestments(ctx context.Context, projectID uint) (int64, error) {
	if s.countInvestmentsFn != nil {
		return s.countInvestmentsFn(ctx, projectID)
	}
	return 0, nil
}

func (s *projectRepoStub) AddFunds(ctx context.Context, projectID uint, delta float64) error {
	if s.addFundsFn != nil {
		return s.addFundsFn(ctx, projectID, delta)
	}
	return nil
}

type investmentRepoStub struct {
	createFn      func(ctx context.Context, investment *entities.Investment) error
	getByIDFn     func(ctx context.Context, id uint) (*entities.Investment, error)
	updateFn      func(ctx context.Context, investment *entities.Investment) error
	deleteFn      func(ctx context.Context, id uint) error
	listFn        func(ctx context.Context, investorID *uint, offset, limit int) ([]*entities.Investment, int64, error)
	hasInvestedFn func(ctx context.Context, projectID, investorID uint) (bool, error)
}

func (s *investmentRepoStub) Create(ctx context.Context, investment *entities.Investment) error {
	if s.createFn != nil {
		return s.createFn(ctx, investment)
	}
	return nil
}

func (s *investmentRepoStub) GetByID(ctx context.Context, id uint) (*entities.Investment, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *investmentRepoStub) Update(ctx context.Context, investment *entities.Investment) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, investment)
	}
	return nil
}

func (s *investmentRepoStub) Delete(ctx context.Context, id uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *investmentRepoStub) List(ctx context.Context, investorID *uint, offset, limit int) ([]*entities.Investment, int64, error) {
	if s.listFn != nil {
		return s.listFn(ctx, investorID, offset, limit)
	}
	return []*entities.Investment{}, 0, nil
}

func (s *investmentRepoStub) HasInvested(ctx context.Context, projectID, investorID uint) (bool, error) {
	if s.hasInvestedFn != nil {
		return s.hasInvestedFn(ctx, projectID, investorID)
	}
	return false, nil
}

type updateRepoStub struct {
	createFn        func(ctx context.Context, update *entities.Update) error
	getByIDFn       func(ctx context.Context, id uint) (*entities.Update, error)
	updateFn        func(ctx context.Context, update *entities.Update) error
	deleteFn        func(ctx context.Context, id uint) error
	listFn          func(ctx context.Context, offset, limit int) ([]*entities.Update, int64, error)
	listByProjectFn func(ctx context.Context, projectID uint) ([]*entities.Update, error)
}

func (s *updateRepoStub) Create(ctx context.Context, update *entities.Update) error {
	if s.createFn != nil {
		return s.createFn(ctx, update)
	}
	return nil
}

func (s *updateRepoStub) GetByID(ctx context.Context, id uint) (*entities.Update, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *updateRepoStub) Update(ctx context.Context, update *entities.Update) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, update)
	}
	return nil
}

func (s *updateRepoStub) Delete(ctx context.Context, id uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *updateRepoStub) List(ctx context.Context, offset, limit int) ([]*entities.Update, int64, error) {
	if s.listFn != nil {
		return s.listFn(ctx, offset, limit)
	}
	return []*entities.Update{}, 0, nil
}

func (s *updateRepoStub) ListByProject(ctx context.Context, projectID uint) ([]*entities.Update, error) {
	if s.listByProjectFn != nil {
		return s.listByProjectFn(ctx, projectID)
	}
	return []*entities.Update{}, nil
}

type fileStoreStub struct {
	saveFn   func(prefix, originalName string, r io.Reader) (string, error)
	existsFn func(path string) bool
}

func (s *fileStoreStub) Save(prefix, originalName string, r io.Reader) (string, error) {
	if s.saveFn != nil {
		return s.saveFn(prefix, originalName, r)
	}
	return "static/" + prefix + "_" + originalName, nil
}

func (s *fileStoreStub) Exists(path string) bool {
	if s.existsFn != nil {
		return s.existsFn(path)
	}
	return true
}

// uowStub runs the unit of work inline without a transaction
type uowStub struct{}

func (uowStub) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func jsonBody(s string) *strings.Reader {
	return strings.NewReader(s)
}

// asAccount injects a caller identity the way AuthMiddleware would
func asAccount(id uint, accountType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.AccountIDKey, id)
		c.Set(middleware.AccountEmailKey, "caller@example.com")
		c.Set(middleware.AccountTypeKey, accountType)
	}
}

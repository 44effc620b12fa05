package usecases

import (
	"context"

	"fundraising.backend/internal/domain/entities"
	domainerrors "fundraising.backend/internal/domain/errors"
	"fundraising.backend/internal/domain/repositories"
	"fundraising.backend/pkg/utils"
)

// UpdateUsecase handles campaign progress posts. Writes are restricted
// to the owning founder; per-project reads to invested investors.
type UpdateUsecase struct {
	updateRepo     repositories.UpdateRepository
	projectRepo    repositories.ProjectRepository
	investmentRepo repositories.InvestmentRepository
}

// NewUpdateUsecase creates a new update usecase
func NewUpdateUsecase(
	updateRepo repositories.UpdateRepository,
	projectRepo repositories.ProjectRepository,
	investmentRepo repositories.InvestmentRepository,
) *UpdateUsecase {
	return &UpdateUsecase{
		updateRepo:     updateRepo,
		projectRepo:    projectRepo,
		investmentRepo: investmentRepo,
	}
}

// Create posts an update to a campaign owned by the calling founder
func (u *UpdateUsecase) Create(ctx context.Context, founderID uint, input *entities.CreateUpdateInput) (*entities.Update, error) {
	if err := u.requireOwner(ctx, input.ProjectID, founderID); err != nil {
		return nil, err
	}

	update := &entities.Update{
		Content:   input.Content,
		ProjectID: input.ProjectID,
	}
	if input.Title != "" {
		update.Title.SetValid(input.Title)
	}

	if err := u.updateRepo.Create(ctx, update); err != nil {
		return nil, err
	}
	return update, nil
}

// Get returns a campaign post by ID
func (u *UpdateUsecase) Get(ctx context.Context, id uint) (*entities.Update, error) {
	return u.updateRepo.GetByID(ctx, id)
}

// List returns campaign posts with pagination metadata
func (u *UpdateUsecase) List(ctx context.Context, page, limit int) ([]*entities.Update, utils.PaginationMeta, error) {
	p := utils.GetPaginationParams(page, limit)
	updates, total, err := u.updateRepo.List(ctx, p.CalculateOffset(), p.Limit)
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	return updates, utils.CalculateMeta(total, p.Page, p.Limit), nil
}

// Edit applies a partial edit; only the owning founder may edit
func (u *UpdateUsecase) Edit(ctx context.Context, founderID, id uint, input *entities.UpdateUpdateInput) (*entities.Update, error) {
	update, err := u.updateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.requireOwner(ctx, update.ProjectID, founderID); err != nil {
		return nil, err
	}

	if input.Title.Valid {
		update.Title = input.Title
	}
	if input.Content.Valid {
		update.Content = input.Content.String
	}

	if err := u.updateRepo.Update(ctx, update); err != nil {
		return nil, err
	}
	return update, nil
}

// Delete removes a campaign post; only the owning founder may delete
func (u *UpdateUsecase) Delete(ctx context.Context, founderID, id uint) error {
	update, err := u.updateRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.requireOwner(ctx, update.ProjectID, founderID); err != nil {
		return err
	}
	return u.updateRepo.Delete(ctx, id)
}

// ListForProject returns a project's posts to an investor who holds at
// least one investment in it
func (u *UpdateUsecase) ListForProject(ctx context.Context, investorID, projectID uint) ([]*entities.Update, error) {
	if _, err := u.projectRepo.GetByID(ctx, projectID); err != nil {
		return nil, err
	}

	invested, err := u.investmentRepo.HasInvested(ctx, projectID, investorID)
	if err != nil {
		return nil, err
	}
	if !invested {
		return nil, domainerrors.ErrForbidden
	}

	return u.updateRepo.ListByProject(ctx, projectID)
}

func (u *UpdateUsecase) requireOwner(ctx context.Context, projectID, founderID uint) error {
	project, err := u.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if project.FounderID != founderID {
		return domainerrors.ErrForbidden
	}
	return nil
}

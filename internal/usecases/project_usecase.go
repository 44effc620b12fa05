package usecases

import (
	"context"
	"io"
	"path/filepath"
	"time"

	"github.com/volatiletech/null/v8"
	"fundraising.backend/internal/domain/entities"
	domainerrors "fundraising.backend/internal/domain/errors"
	"fundraising.backend/internal/domain/repositories"
	"fundraising.backend/pkg/utils"
)

var timeNow = time.Now

// FileStore abstracts upload persistence for campaign files
type FileStore interface {
	Save(prefix, originalName string, r io.Reader) (string, error)
	Exists(path string) bool
}

// FileUpload is one uploaded multipart file part
type FileUpload struct {
	Filename string
	Reader   io.Reader
}

// ProjectUsecase handles campaign logic
type ProjectUsecase struct {
	projectRepo repositories.ProjectRepository
	founderRepo repositories.FounderRepository
	fileStore   FileStore
	hostAddress string
}

// NewProjectUsecase creates a new project usecase
func NewProjectUsecase(
	projectRepo repositories.ProjectRepository,
	founderRepo repositories.FounderRepository,
	fileStore FileStore,
	hostAddress string,
) *ProjectUsecase {
	return &ProjectUsecase{
		projectRepo: projectRepo,
		founderRepo: founderRepo,
		fileStore:   fileStore,
		hostAddress: hostAddress,
	}
}

// Create stores the two uploaded files and records the campaign for
// the calling founder. Funds raised start at zero and status at
// pending.
func (u *ProjectUsecase) Create(ctx context.Context, founderID uint, input *entities.CreateProjectInput, document, image *FileUpload) (*entities.ProjectView, error) {
	if _, err := u.founderRepo.GetByID(ctx, founderID); err != nil {
		return nil, err
	}

	deadline, err := parseDeadline(input.Deadline)
	if err != nil {
		return nil, domainerrors.ErrInvalidInput
	}

	documentPath, err := u.fileStore.Save("proof", document.Filename, document.Reader)
	if err != nil {
		return nil, err
	}
	imagePath, err := u.fileStore.Save("image", image.Filename, image.Reader)
	if err != nil {
		return nil, err
	}

	project := &entities.Project{
		Name:                input.CampaignTitle,
		Description:         input.CampaignDescription,
		TargetAmount:        input.TargetAmount,
		FundsRaised:         0,
		ImageURL:            null.StringFrom(imagePath),
		PDFDocumentPath:     null.StringFrom(documentPath),
		FounderID:           founderID,
		Deadline:            deadline,
		FundingType:         null.NewString(input.FundingType, input.FundingType != ""),
		MinInvestment:       input.MinInvestment,
		ContactEmail:        null.NewString(input.Email, input.Email != ""),
		Address:             null.NewString(input.Address, input.Address != ""),
		Phone:               null.NewString(input.Phone, input.Phone != ""),
		PersonalizedMessage: null.NewString(input.PersonalizedMessage, input.PersonalizedMessage != ""),
		MotivationLetter:    null.NewString(input.MotivationLetter, input.MotivationLetter != ""),
		Category:            null.NewString(input.CampaignCategory, input.CampaignCategory != ""),
		Status:              entities.ProjectStatusPending,
	}

	if err := u.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}
	return u.toView(ctx, project)
}

// Get returns a campaign with its derived fields
func (u *ProjectUsecase) Get(ctx context.Context, id uint) (*entities.ProjectView, error) {
	project, err := u.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.toView(ctx, project)
}

// List returns all campaigns in the derived shape
func (u *ProjectUsecase) List(ctx context.Context, page, limit int) ([]*entities.ProjectView, utils.PaginationMeta, error) {
	p := utils.GetPaginationParams(page, limit)
	projects, total, err := u.projectRepo.List(ctx, p.CalculateOffset(), p.Limit)
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}

	views := make([]*entities.ProjectView, 0, len(projects))
	for _, project := range projects {
		view, err := u.toView(ctx, project)
		if err != nil {
			return nil, utils.PaginationMeta{}, err
		}
		views = append(views, view)
	}
	return views, utils.CalculateMeta(total, p.Page, p.Limit), nil
}

// Update applies a partial campaign update. Only name, description,
// target amount, image URL and status are mutable through this path.
func (u *ProjectUsecase) Update(ctx context.Context, id uint, input *entities.UpdateProjectInput) (*entities.ProjectView, error) {
	project, err := u.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name.Valid {
		project.Name = input.Name.String
	}
	if input.Description.Valid {
		project.Description = input.Description.String
	}
	if input.TargetAmount.Valid {
		project.TargetAmount = input.TargetAmount.Float64
	}
	if input.ImageURL.Valid {
		project.ImageURL = input.ImageURL
	}
	if input.Status.Valid {
		project.Status = input.Status.String
	}

	if err := u.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}
	return u.toView(ctx, project)
}

// Delete removes a campaign. Related investments and updates are left
// to the store's own referential behavior.
func (u *ProjectUsecase) Delete(ctx context.Context, id uint) error {
	return u.projectRepo.Delete(ctx, id)
}

// DocumentPath resolves the on-disk path of a campaign's supporting
// document for streaming
func (u *ProjectUsecase) DocumentPath(ctx context.Context, id uint) (string, error) {
	project, err := u.projectRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if !project.PDFDocumentPath.Valid || project.PDFDocumentPath.String == "" {
		return "", domainerrors.ErrNotFound
	}
	path := project.PDFDocumentPath.String
	if !u.fileStore.Exists(path) {
		return "", domainerrors.ErrNotFound
	}
	return path, nil
}

func (u *ProjectUsecase) toView(ctx context.Context, project *entities.Project) (*entities.ProjectView, error) {
	investorCount, err := u.projectRepo.CountInvestments(ctx, project.ID)
	if err != nil {
		return nil, err
	}

	view := &entities.ProjectView{
		Project:         *project,
		InvestorCount:   investorCount,
		DaysRemaining:   int(project.Deadline.Sub(timeNow()).Hours() / 24),
		ProgressPercent: progressPercent(project.FundsRaised, project.TargetAmount),
	}
	if project.ImageURL.Valid {
		view.ImageFileURL = u.fileURL(project.ImageURL.String)
	}
	if project.PDFDocumentPath.Valid {
		view.DocumentFileURL = u.fileURL(project.PDFDocumentPath.String)
	}
	return view, nil
}

// progressPercent is 0 for a zero target rather than a division error
func progressPercent(raised, target float64) float64 {
	if target == 0 {
		return 0
	}
	return raised / target * 100
}

func (u *ProjectUsecase) fileURL(storedPath string) string {
	return u.hostAddress + "/static/" + filepath.Base(storedPath)
}

func parseDeadline(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

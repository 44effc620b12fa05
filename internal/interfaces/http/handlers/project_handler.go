package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"fundraising.backend/internal/domain/entities"
	domainerrors "fundraising.backend/internal/domain/errors"
	"fundraising.backend/internal/interfaces/http/middleware"
	"fundraising.backend/internal/interfaces/http/response"
	"fundraising.backend/internal/usecases"
)

// ProjectHandler handles campaign endpoints
type ProjectHandler struct {
	projectUsecase *usecases.ProjectUsecase
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectUsecase *usecases.ProjectUsecase) *ProjectHandler {
	return &ProjectHandler{projectUsecase: projectUsecase}
}

// Create registers a campaign for the calling founder. The payload is
// multipart form data carrying the campaign fields plus the proof of
// eligibility document and the campaign image.
// POST /campaigns
func (h *ProjectHandler) Create(c *gin.Context) {
	founderID, ok := middleware.GetAccountID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	var input entities.CreateProjectInput
	if err := c.ShouldBind(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	docHeader, err := c.FormFile("proofOfEligibility")
	if err != nil {
		response.Error(c, domainerrors.BadRequest("proofOfEligibility file is required"))
		return
	}
	imageHeader, err := c.FormFile("campaignImage")
	if err != nil {
		response.Error(c, domainerrors.BadRequest("campaignImage file is required"))
		return
	}

	docFile, err := docHeader.Open()
	if err != nil {
		response.Error(c, domainerrors.InternalError(err))
		return
	}
	defer docFile.Close()

	imageFile, err := imageHeader.Open()
	if err != nil {
		response.Error(c, domainerrors.InternalError(err))
		return
	}
	defer imageFile.Close()

	view, err := h.projectUsecase.Create(c.Request.Context(), founderID, &input,
		&usecases.FileUpload{Filename: docHeader.Filename, Reader: docFile},
		&usecases.FileUpload{Filename: imageHeader.Filename, Reader: imageFile},
	)
	if err != nil {
		switch err {
		case domainerrors.ErrNotFound:
			response.Error(c, domainerrors.NotFound("Founder not found"))
		case domainerrors.ErrInvalidInput:
			response.Error(c, domainerrors.BadRequest("invalid deadline format"))
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusCreated, view)
}

// Get returns a campaign with its derived fields
// GET /campaigns/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid campaign id"))
		return
	}

	view, err := h.projectUsecase.Get(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Campaign not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, view)
}

// List returns campaigns with optional paging
// GET /campaigns
func (h *ProjectHandler) List(c *gin.Context) {
	page, limit := paginationQuery(c)

	views, meta, err := h.projectUsecase.List(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"items": views,
		"meta":  meta,
	})
}

// Update applies a partial update to a campaign
// PUT /campaigns/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid campaign id"))
		return
	}

	var input entities.UpdateProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	view, err := h.projectUsecase.Update(c.Request.Context(), id, &input)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Campaign not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, view)
}

// Delete removes a campaign
// DELETE /campaigns/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid campaign id"))
		return
	}

	if err := h.projectUsecase.Delete(c.Request.Context(), id); err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Campaign not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Document streams the campaign's proof of eligibility PDF
// GET /campaigns/:id/pdf
func (h *ProjectHandler) Document(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid campaign id"))
		return
	}

	path, err := h.projectUsecase.DocumentPath(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Document not found"))
			return
		}
		response.Error(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.File(path)
}

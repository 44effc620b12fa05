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

// UpdateHandler handles campaign update endpoints
type UpdateHandler struct {
	updateUsecase *usecases.UpdateUsecase
}

// NewUpdateHandler creates a new update handler
func NewUpdateHandler(updateUsecase *usecases.UpdateUsecase) *UpdateHandler {
	return &UpdateHandler{updateUsecase: updateUsecase}
}

// Create publishes an update on a campaign owned by the calling
// founder
// POST /updates
func (h *UpdateHandler) Create(c *gin.Context) {
	founderID, ok := middleware.GetAccountID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	var input entities.CreateUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	update, err := h.updateUsecase.Create(c.Request.Context(), founderID, &input)
	if err != nil {
		switch err {
		case domainerrors.ErrNotFound:
			response.Error(c, domainerrors.NotFound("Campaign not found"))
		case domainerrors.ErrForbidden:
			response.Error(c, domainerrors.Forbidden("Campaign belongs to another founder"))
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusCreated, update)
}

// Get returns an update by id
// GET /updates/:id
func (h *UpdateHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid update id"))
		return
	}

	update, err := h.updateUsecase.Get(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Update not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, update)
}

// List returns updates with optional paging
// GET /updates
func (h *UpdateHandler) List(c *gin.Context) {
	page, limit := paginationQuery(c)

	updates, meta, err := h.updateUsecase.List(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"items": updates,
		"meta":  meta,
	})
}

// Edit changes an update on a campaign owned by the calling founder
// PUT /updates/:id
func (h *UpdateHandler) Edit(c *gin.Context) {
	founderID, ok := middleware.GetAccountID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid update id"))
		return
	}

	var input entities.UpdateUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	update, err := h.updateUsecase.Edit(c.Request.Context(), founderID, id, &input)
	if err != nil {
		switch err {
		case domainerrors.ErrNotFound:
			response.Error(c, domainerrors.NotFound("Update not found"))
		case domainerrors.ErrForbidden:
			response.Error(c, domainerrors.Forbidden("Campaign belongs to another founder"))
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, update)
}

// Delete removes an update on a campaign owned by the calling founder
// DELETE /updates/:id
func (h *UpdateHandler) Delete(c *gin.Context) {
	founderID, ok := middleware.GetAccountID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid update id"))
		return
	}

	if err := h.updateUsecase.Delete(c.Request.Context(), founderID, id); err != nil {
		switch err {
		case domainerrors.ErrNotFound:
			response.Error(c, domainerrors.NotFound("Update not found"))
		case domainerrors.ErrForbidden:
			response.Error(c, domainerrors.Forbidden("Campaign belongs to another founder"))
		default:
			response.Error(c, err)
		}
		return
	}

	response.NoContent(c)
}

// ListForProject returns the updates of a campaign the calling
// investor has invested in
// GET /project/:id/updates
func (h *UpdateHandler) ListForProject(c *gin.Context) {
	investorID, ok := middleware.GetAccountID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	projectID, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid campaign id"))
		return
	}

	updates, err := h.updateUsecase.ListForProject(c.Request.Context(), investorID, projectID)
	if err != nil {
		switch err {
		case domainerrors.ErrNotFound:
			response.Error(c, domainerrors.NotFound("Campaign not found"))
		case domainerrors.ErrForbidden:
			response.Error(c, domainerrors.Forbidden("No investment in this campaign"))
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, updates)
}

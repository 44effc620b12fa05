package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"fundraising.backend/internal/domain/entities"
	domainerrors "fundraising.backend/internal/domain/errors"
	"fundraising.backend/internal/interfaces/http/response"
	"fundraising.backend/internal/usecases"
)

// FounderHandler handles founder account endpoints
type FounderHandler struct {
	founderUsecase *usecases.FounderUsecase
}

// NewFounderHandler creates a new founder handler
func NewFounderHandler(founderUsecase *usecases.FounderUsecase) *FounderHandler {
	return &FounderHandler{founderUsecase: founderUsecase}
}

// Create registers a new founder account
// POST /founders
func (h *FounderHandler) Create(c *gin.Context) {
	var input entities.CreateFounderInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	founder, err := h.founderUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		if err == domainerrors.ErrAlreadyExists {
			response.Error(c, domainerrors.DuplicateEmail("Email already registered"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, founder)
}

// Get returns a founder by id
// GET /founders/:id
func (h *FounderHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid founder id"))
		return
	}

	founder, err := h.founderUsecase.Get(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Founder not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, founder)
}

// List returns founders with optional paging
// GET /founders
func (h *FounderHandler) List(c *gin.Context) {
	page, limit := paginationQuery(c)

	founders, meta, err := h.founderUsecase.List(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"items": founders,
		"meta":  meta,
	})
}

// Update applies a partial update to a founder
// PUT /founders/:id
func (h *FounderHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid founder id"))
		return
	}

	var input entities.UpdateFounderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	founder, err := h.founderUsecase.Update(c.Request.Context(), id, &input)
	if err != nil {
		switch err {
		case domainerrors.ErrNotFound:
			response.Error(c, domainerrors.NotFound("Founder not found"))
		case domainerrors.ErrAlreadyExists:
			response.Error(c, domainerrors.DuplicateEmail("Email already registered"))
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, founder)
}

// Delete removes a founder
// DELETE /founders/:id
func (h *FounderHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid founder id"))
		return
	}

	if err := h.founderUsecase.Delete(c.Request.Context(), id); err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Founder not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

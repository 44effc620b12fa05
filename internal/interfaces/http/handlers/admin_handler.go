package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"fundraising.backend/internal/domain/entities"
	domainerrors "fundraising.backend/internal/domain/errors"
	"fundraising.backend/internal/interfaces/http/response"
	"fundraising.backend/internal/usecases"
)

// AdminHandler handles admin account endpoints
type AdminHandler struct {
	adminUsecase *usecases.AdminUsecase
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminUsecase *usecases.AdminUsecase) *AdminHandler {
	return &AdminHandler{adminUsecase: adminUsecase}
}

// Create registers a new admin account. The shared creation secret is
// passed as the token query parameter.
// POST /admins
func (h *AdminHandler) Create(c *gin.Context) {
	token := c.Query("token")

	var input entities.CreateAdminInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	admin, err := h.adminUsecase.Create(c.Request.Context(), token, &input)
	if err != nil {
		switch err {
		case domainerrors.ErrForbidden:
			response.Error(c, domainerrors.Forbidden("Invalid admin creation token"))
		case domainerrors.ErrAlreadyExists:
			response.Error(c, domainerrors.DuplicateEmail("Email already registered"))
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusCreated, admin)
}

// Get returns an admin by id
// GET /admins/:id
func (h *AdminHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid admin id"))
		return
	}

	admin, err := h.adminUsecase.Get(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Admin not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, admin)
}

// List returns admins with optional paging
// GET /admins
func (h *AdminHandler) List(c *gin.Context) {
	page, limit := paginationQuery(c)

	admins, meta, err := h.adminUsecase.List(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"items": admins,
		"meta":  meta,
	})
}

// Update applies a partial update to an admin
// PUT /admins/:id
func (h *AdminHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid admin id"))
		return
	}

	var input entities.UpdateAdminInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	admin, err := h.adminUsecase.Update(c.Request.Context(), id, &input)
	if err != nil {
		switch err {
		case domainerrors.ErrNotFound:
			response.Error(c, domainerrors.NotFound("Admin not found"))
		case domainerrors.ErrAlreadyExists:
			response.Error(c, domainerrors.DuplicateEmail("Email already registered"))
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, admin)
}

// Delete removes an admin
// DELETE /admins/:id
func (h *AdminHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid admin id"))
		return
	}

	if err := h.adminUsecase.Delete(c.Request.Context(), id); err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Admin not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

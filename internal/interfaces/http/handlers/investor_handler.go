package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"fundraising.backend/internal/domain/entities"
	domainerrors "fundraising.backend/internal/domain/errors"
	"fundraising.backend/internal/interfaces/http/response"
	"fundraising.backend/internal/usecases"
)

// InvestorHandler handles investor account endpoints
type InvestorHandler struct {
	investorUsecase *usecases.InvestorUsecase
}

// NewInvestorHandler creates a new investor handler
func NewInvestorHandler(investorUsecase *usecases.InvestorUsecase) *InvestorHandler {
	return &InvestorHandler{investorUsecase: investorUsecase}
}

// Create registers a new investor account
// POST /investors
func (h *InvestorHandler) Create(c *gin.Context) {
	var input entities.CreateInvestorInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	investor, err := h.investorUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		if err == domainerrors.ErrAlreadyExists {
			response.Error(c, domainerrors.DuplicateEmail("Email already registered"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, investor)
}

// Get returns an investor by id
// GET /investors/:id
func (h *InvestorHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid investor id"))
		return
	}

	investor, err := h.investorUsecase.Get(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Investor not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, investor)
}

// List returns investors with optional paging
// GET /investors
func (h *InvestorHandler) List(c *gin.Context) {
	page, limit := paginationQuery(c)

	investors, meta, err := h.investorUsecase.List(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"items": investors,
		"meta":  meta,
	})
}

// Update applies a partial update to an investor
// PUT /investors/:id
func (h *InvestorHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid investor id"))
		return
	}

	var input entities.UpdateInvestorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	investor, err := h.investorUsecase.Update(c.Request.Context(), id, &input)
	if err != nil {
		switch err {
		case domainerrors.ErrNotFound:
			response.Error(c, domainerrors.NotFound("Investor not found"))
		case domainerrors.ErrAlreadyExists:
			response.Error(c, domainerrors.DuplicateEmail("Email already registered"))
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, investor)
}

// Delete removes an investor
// DELETE /investors/:id
func (h *InvestorHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid investor id"))
		return
	}

	if err := h.investorUsecase.Delete(c.Request.Context(), id); err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Investor not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

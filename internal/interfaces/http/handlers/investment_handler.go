package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"fundraising.backend/internal/domain/entities"
	domainerrors "fundraising.backend/internal/domain/errors"
	"fundraising.backend/internal/interfaces/http/middleware"
	"fundraising.backend/internal/interfaces/http/response"
	"fundraising.backend/internal/usecases"
)

// InvestmentHandler handles investment endpoints
type InvestmentHandler struct {
	investmentUsecase *usecases.InvestmentUsecase
}

// NewInvestmentHandler creates a new investment handler
func NewInvestmentHandler(investmentUsecase *usecases.InvestmentUsecase) *InvestmentHandler {
	return &InvestmentHandler{investmentUsecase: investmentUsecase}
}

// Create records an investment by the calling investor and adds its
// amount to the campaign's funds raised
// POST /investments
func (h *InvestmentHandler) Create(c *gin.Context) {
	investorID, ok := middleware.GetAccountID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	var input entities.CreateInvestmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	investment, err := h.investmentUsecase.Create(c.Request.Context(), investorID, &input)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Campaign not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, investment)
}

// Get returns an investment by id
// GET /investments/:id
func (h *InvestmentHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid investment id"))
		return
	}

	investment, err := h.investmentUsecase.Get(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Investment not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, investment)
}

// List returns investments, optionally filtered to a single investor,
// with optional paging
// GET /investments
func (h *InvestmentHandler) List(c *gin.Context) {
	page, limit := paginationQuery(c)

	var investorID *uint
	if raw := c.Query("investor_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			response.Error(c, domainerrors.BadRequest("invalid investor_id"))
			return
		}
		v := uint(id)
		investorID = &v
	}

	investments, meta, err := h.investmentUsecase.List(c.Request.Context(), investorID, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"items": investments,
		"meta":  meta,
	})
}

// ListOwn returns every investment made by the calling investor
// GET /investor/investments
func (h *InvestmentHandler) ListOwn(c *gin.Context) {
	investorID, ok := middleware.GetAccountID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	investments, err := h.investmentUsecase.ListForInvestor(c.Request.Context(), investorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, investments)
}

// Update adjusts an investment and rebalances the affected campaigns'
// funds raised
// PUT /investments/:id
func (h *InvestmentHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid investment id"))
		return
	}

	var input entities.UpdateInvestmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	investment, err := h.investmentUsecase.Update(c.Request.Context(), id, &input)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Investment not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, investment)
}

// Delete removes an investment and subtracts its amount from the
// campaign's funds raised
// DELETE /investments/:id
func (h *InvestmentHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid investment id"))
		return
	}

	if err := h.investmentUsecase.Delete(c.Request.Context(), id); err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Investment not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"fundraising.backend/internal/domain/entities"
	domainerrors "fundraising.backend/internal/domain/errors"
	"fundraising.backend/internal/usecases"
)

func newInvestorRouter(t *testing.T, repo *investorRepoStub) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := NewInvestorHandler(usecases.NewInvestorUsecase(repo))

	r := gin.New()
	r.POST("/investors", h.Create)
	r.GET("/investors", h.List)
	r.GET("/investors/:id", h.Get)
	r.PUT("/investors/:id", h.Update)
	r.DELETE("/investors/:id", h.Delete)
	return r
}

func TestInvestorHandler_Create(t *testing.T) {
	var stored *entities.Investor
	repo := &investorRepoStub{
		createFn: func(_ context.Context, investor *entities.Investor) error {
			investor.ID = 9
			stored = investor
			return nil
		},
	}
	r := newInvestorRouter(t, repo)

	w := postJSON(r, "/investors", `{"fullName":"Bo","email":"bo@example.com","password":"Password123!","investmentSector":"fintech"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, stored)
	require.Equal(t, "fintech", stored.InvestmentSector.String)
	require.Equal(t, "investor", stored.Role.String, "default role fills in")

	var resp entities.Investor
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, uint(9), resp.ID)
}

func TestInvestorHandler_Create_DuplicateEmail(t *testing.T) {
	repo := &investorRepoStub{
		emailTakenFn: func(_ context.Context, _ string, _ uint) (bool, error) {
			return true, nil
		},
	}
	r := newInvestorRouter(t, repo)

	w := postJSON(r, "/investors", `{"fullName":"Bo","email":"bo@example.com","password":"pw"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Email already registered")
}

func TestInvestorHandler_Get(t *testing.T) {
	repo := &investorRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*entities.Investor, error) {
			if id != 9 {
				return nil, domainerrors.ErrNotFound
			}
			return &entities.Investor{ID: 9, Name: "Bo", Email: "bo@example.com"}, nil
		},
	}
	r := newInvestorRouter(t, repo)

	req := httptest.NewRequest(http.MethodGet, "/investors/9", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/investors/10", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "Investor not found")
}

func TestInvestorHandler_Update(t *testing.T) {
	repo := &investorRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*entities.Investor, error) {
			return &entities.Investor{ID: id, Name: "Bo", Email: "bo@example.com"}, nil
		},
	}
	r := newInvestorRouter(t, repo)

	req := httptest.NewRequest(http.MethodPut, "/investors/9", jsonBody(`{"investmentBudget":"50k-100k"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "50k-100k")
}

func TestInvestorHandler_Delete(t *testing.T) {
	r := newInvestorRouter(t, &investorRepoStub{})

	req := httptest.NewRequest(http.MethodDelete, "/investors/9", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"fundraising.backend/internal/domain/entities"
	domainerrors "fundraising.backend/internal/domain/errors"
	"fundraising.backend/internal/interfaces/http/response"
	"fundraising.backend/internal/usecases"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authUsecase *usecases.AuthUsecase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase *usecases.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Token issues a bearer token for form-encoded credentials. The
// client_id field names the account type to authenticate against and
// falls back to founder when absent.
// POST /token
func (h *AuthHandler) Token(c *gin.Context) {
	var input entities.TokenInput

	if err := c.ShouldBind(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if input.ClientID == "" {
		input.ClientID = string(entities.AccountTypeFounder)
	}

	result, err := h.authUsecase.Login(c.Request.Context(), input.Username, input.Password, entities.AccountType(input.ClientID))
	if err != nil {
		if err == domainerrors.ErrInvalidCredentials {
			response.Error(c, domainerrors.BadRequest("Incorrect username or password"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, entities.TokenResponse{
		AccessToken: result.AccessToken,
		TokenType:   "bearer",
	})
}

// SignIn authenticates a JSON email/password pair against every
// account type and returns the matched account with a token
// POST /signin
func (h *AuthHandler) SignIn(c *gin.Context) {
	var input entities.SignInInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	result, err := h.authUsecase.SignIn(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if err == domainerrors.ErrInvalidCredentials {
			response.Error(c, domainerrors.InvalidCredentials("Invalid email or password"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

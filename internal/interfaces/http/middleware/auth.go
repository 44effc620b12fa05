package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"fundraising.backend/pkg/jwt"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// AccountIDKey is the context key for the caller's account ID
	AccountIDKey = "accountId"
	// AccountEmailKey is the context key for the caller's email
	AccountEmailKey = "accountEmail"
	// AccountTypeKey is the context key for the caller's account type
	AccountTypeKey = "accountType"
)

// AuthMiddleware validates the bearer token and stores the caller's
// identity in the request context
func AuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization header is required",
			})
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid authorization format. Use: Bearer <token>",
			})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			if err == jwt.ErrExpiredToken {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "Token has expired",
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid token",
			})
			return
		}

		c.Set(AccountIDKey, claims.AccountID)
		c.Set(AccountEmailKey, claims.Email)
		c.Set(AccountTypeKey, claims.AccountType)

		c.Next()
	}
}

// GetAccountID gets the caller's account ID from context
func GetAccountID(c *gin.Context) (uint, bool) {
	id, exists := c.Get(AccountIDKey)
	if !exists {
		return 0, false
	}
	return id.(uint), true
}

// GetAccountEmail gets the caller's email from context
func GetAccountEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(AccountEmailKey)
	if !exists {
		return "", false
	}
	return email.(string), true
}

// GetAccountType gets the caller's account type from context
func GetAccountType(c *gin.Context) (string, bool) {
	accountType, exists := c.Get(AccountTypeKey)
	if !exists {
		return "", false
	}
	return accountType.(string), true
}

// RequireAccountType creates a middleware that requires one of the
// given account types
func RequireAccountType(types ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		accountType, exists := GetAccountType(c)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Account type not found",
			})
			return
		}

		for _, t := range types {
			if accountType == t {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "Insufficient permissions",
		})
	}
}

// RequireFounder requires the caller to be a founder
func RequireFounder() gin.HandlerFunc {
	return RequireAccountType("founder")
}

// RequireInvestor requires the caller to be an investor
func RequireInvestor() gin.HandlerFunc {
	return RequireAccountType("investor")
}

package middleware

import (
	"fmt"

	domainerr "github.com/amirhossein-jamali/community-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/community-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/community-ledger/internal/infrastructure/adapter/auth"
	"github.com/gin-gonic/gin"
)

const claimsKey = "auth_claims"

// TokenParser verifies bearer tokens
type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

// Authenticate requires a valid bearer token and puts the caller's user ID in the request context
func Authenticate(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := parser.Parse(auth.BearerToken(c.GetHeader("Authorization")))
		if err != nil {
			_ = c.Error(fmt.Errorf("%w: %v", domainerr.ErrUnauthenticated, err))
			c.Abort()
			return
		}

		c.Set(claimsKey, claims)
		c.Request = c.Request.WithContext(coreport.WithActorID(c.Request.Context(), claims.UserID))
		c.Next()
	}
}

// RequireAdmin rejects callers whose token lacks the admin role. It must run after Authenticate.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !ClaimsFrom(c).IsAdmin() {
			_ = c.Error(fmt.Errorf("%w: admin role required", domainerr.ErrForbidden))
			c.Abort()
			return
		}
		c.Next()
	}
}

// ClaimsFrom returns the claims Authenticate stored, or nil
func ClaimsFrom(c *gin.Context) *auth.Claims {
	value, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := value.(*auth.Claims)
	return claims
}

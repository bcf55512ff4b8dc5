package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aimldept/portal/internal/app/models/dto"
	"github.com/aimldept/portal/internal/pkg/auth"
)

// identityKey is the gin context key the authenticated identity is stored
// under.
const identityKey = "facultyIdentity"

// AuthMiddleware guards faculty-scoped routes.
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware.
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// JWTAuth validates the bearer token on every protected call. A missing token
// is 401; a present but invalid or expired token is 403. The two codes are
// distinct on purpose.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Message: "Access token is required",
			})
			return
		}

		tokenString := auth.ExtractBearerToken(authHeader)
		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
				Message: "Invalid or expired token",
			})
			return
		}

		c.Set(identityKey, claims.Identity())
		c.Next()
	}
}

// IdentityFromContext returns the identity stored by JWTAuth.
func IdentityFromContext(c *gin.Context) (auth.Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return auth.Identity{}, false
	}
	identity, ok := value.(auth.Identity)
	return identity, ok
}

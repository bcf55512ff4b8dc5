package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aimldept/portal/internal/app/models/dto"
)

// AdminKeyHeader carries the shared admin secret on roster requests.
const AdminKeyHeader = "x-admin-key"

// AdminMiddleware gates the roster CRUD behind the shared admin secret.
// Stateless exact-equality check per request; no rate limiting, lockout, or
// audit trail (known weakness of the scheme, kept as specified).
type AdminMiddleware struct {
	adminKey string
}

// NewAdminMiddleware creates a new AdminMiddleware.
func NewAdminMiddleware(adminKey string) *AdminMiddleware {
	return &AdminMiddleware{adminKey: adminKey}
}

// AdminKeyRequired rejects the request before any store access when the key
// does not match.
func (m *AdminMiddleware) AdminKeyRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader(AdminKeyHeader) != m.adminKey {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
				Message: "Admin authentication failed",
			})
			return
		}
		c.Next()
	}
}

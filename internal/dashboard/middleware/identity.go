package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/ferreteria-cash-recon/internal/domain/identity"
)

const (
	// UserIDHeader and friends carry the authenticated caller, set by the
	// identity-aware proxy in front of this service.
	UserIDHeader    = "X-User-Id"
	UserNameHeader  = "X-User-Name"
	UserEmailHeader = "X-User-Email"
	UserRoleHeader  = "X-User-Role"
)

// Identity middleware lifts the proxy-set user headers into the request context
// so write paths can stamp recorder/closer fields. Requests without a user id
// pass through anonymous; this service does not enforce authentication itself.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(UserIDHeader)
		if userID != "" {
			caller := identity.Identity{
				ID:    userID,
				Name:  c.GetHeader(UserNameHeader),
				Email: c.GetHeader(UserEmailHeader),
				Role:  c.GetHeader(UserRoleHeader),
			}
			ctx := identity.WithIdentity(c.Request.Context(), caller)
			c.Request = c.Request.WithContext(ctx)
		}

		c.Next()
	}
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"alphagate/internal/services"
	"alphagate/pkg/utils"
)

const (
	ContextAccessLevel = "access_level"
	ContextUserID      = "user_id"
)

// AccessContext resolves the caller's access level on every request and
// never aborts; missing or bad credentials just resolve to anonymous.
func AccessContext(gate services.AccessGate) gin.HandlerFunc {
	return func(c *gin.Context) {
		level, accountID := gate.Resolve(c.Request.Context(), BearerToken(c))
		c.Set(ContextAccessLevel, level)
		if accountID != uuid.Nil {
			c.Set(ContextUserID, accountID.String())
		}
		c.Next()
	}
}

// LevelFromContext defaults to anonymous when AccessContext did not run.
func LevelFromContext(c *gin.Context) services.AccessLevel {
	if v, ok := c.Get(ContextAccessLevel); ok {
		if level, ok := v.(services.AccessLevel); ok {
			return level
		}
	}
	return services.LevelAnonymous
}

// RequireLevel guards a route group: 401 for anonymous callers, 403 for
// authenticated callers below the required level.
func RequireLevel(min services.AccessLevel) gin.HandlerFunc {
	return func(c *gin.Context) {
		level := LevelFromContext(c)
		if level < min {
			if level == services.LevelAnonymous {
				utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
			} else {
				utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			}
			c.Abort()
			return
		}
		c.Next()
	}
}

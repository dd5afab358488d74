package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"alphagate/pkg/utils"
)

// StoreGuard answers 503 on store-backed routes when the process
// started without a configured database, instead of letting handlers
// dereference a nil connection.
func StoreGuard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			utils.RespondError(c, http.StatusServiceUnavailable, "Store not configured")
			c.Abort()
			return
		}
		c.Next()
	}
}

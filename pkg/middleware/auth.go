package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"onboarding-backend/pkg/services"
)

// TokenHeader carries the dashboard session token.
const TokenHeader = "x-dashboard-token"

// DashboardAuth rejects requests without a valid session token.
func DashboardAuth(sessions services.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		if token == "" || !sessions.Validate(token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Unauthorized. Please log in.",
			})
			return
		}
		c.Next()
	}
}

package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rainzero1960/paperscout/pkg/services"
)

const userIDKey = "paperscout.user_id"

// securityHeaders sets standard security response headers on every
// response.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
		c.Next()
	}
}

// bearerAuth resolves the acting user from the Authorization header.
// The token is an opaque per-user value; first use provisions the user
// row. Handlers read the resolved id with currentUserID.
func bearerAuth(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		user, err := users.GetOrCreate(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid bearer token"})
			return
		}

		c.Set(userIDKey, user.ID)
		c.Next()
	}
}

// currentUserID returns the id stored by bearerAuth.
func currentUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

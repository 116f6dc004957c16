package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"medical-booking-api/internal/auth"
)

const claimsKey = "claims"

// Auth verifies the bearer token and attaches the caller's claims to the
// request context. Handlers behind it never run without a verified identity.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := ""
		if h := c.GetHeader("Authorization"); h != "" {
			raw = strings.TrimPrefix(h, "Bearer ")
		}
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}

		claims, err := auth.ParseToken(raw, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// Caller returns the claims set by Auth. Only valid behind the Auth
// middleware.
func Caller(c *gin.Context) *auth.Claims {
	return c.MustGet(claimsKey).(*auth.Claims)
}

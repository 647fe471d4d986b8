package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mhrakib/aircnc-api/internal/auth"
)

// VerifyJWT gates a route behind a bearer token. A missing header, a
// malformed token and an expired token all get the same response.
func VerifyJWT(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": true, "message": "unauthorized access"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.Verify(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": true, "message": "unauthorized access"})
			return
		}

		// Decoded claims are available to handlers that need them.
		c.Set("decoded", claims)

		c.Next()
	}
}

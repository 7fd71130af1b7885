package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	userRepo "mountaincottage/database/repository/user"
	"mountaincottage/services/auth"
	"mountaincottage/utils"
)

// Context keys set by the auth middleware.
const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

// JWTAuthMiddleware validates the bearer token, checks its hash against the
// active session (Redis first, stored user hash as fallback) and rejects
// deactivated accounts. On success the user ID and role land in the context.
func JWTAuthMiddleware(users userRepo.UserRepository, sessions auth.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		computedHash := utils.HashToken(tokenString)

		cachedHash, err := sessions.Get(c.Request.Context(), userID)
		if err != nil || cachedHash == "" {
			// Cache miss or Redis trouble: fall back to the stored hash.
			user, err := users.GetByID(userID)
			if err != nil || user == nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
				return
			}
			if !user.Active {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Account is not active."})
				return
			}
			cachedHash = user.TokenHash
		}
		if cachedHash != computedHash {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token has been revoked"})
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextUserRole, role)
		c.Next()
	}
}

// RequireRole rejects requests whose authenticated role is not in allowed.
// Must run after JWTAuthMiddleware.
func RequireRole(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextUserRole)
		for _, a := range allowed {
			if role == a {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Insufficient permissions"})
	}
}

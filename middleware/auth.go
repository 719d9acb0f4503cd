package middleware

import (
	"context"
	"net/http"
	"strings"

	"quickfind/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// Role names carried in the JWT role claim.
const (
	RoleUser     = "user"
	RoleProvider = "provider"
)

// ContextAccountID is the gin context key holding the authenticated account id.
const ContextAccountID = "accountID"

// jwtAuth validates the bearer token, checks the role claim and consults the
// Redis auth cache so revoked tokens stop working before they expire.
func jwtAuth(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Recover from unexpected panics.
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
					"code":  500,
				})
			}
		}()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		accountID, role, err := utils.ExtractIDAndRoleFromToken(tokenString)
		if err != nil || accountID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}
		if role != requiredRole {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		// Compare against the cached hash of the active token. A cached
		// entry that differs means the session was revoked or replaced.
		ctx := context.Background()
		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + accountID
		authCache := utils.GetAuthCacheClient()

		cachedHash, err := authCache.Get(ctx, cacheKey).Result()
		switch {
		case err == redis.Nil:
			authCache.Set(ctx, cacheKey, computedHash, utils.AuthCacheTTL)
		case err != nil:
			// Auth cache unreachable; fall back to signature validation only.
		case cachedHash != computedHash:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		c.Set(ContextAccountID, accountID)
		c.Set("role", role)
		c.Next()
	}
}

// JWTAuthUserMiddleware authenticates client (user role) sessions.
func JWTAuthUserMiddleware() gin.HandlerFunc {
	return jwtAuth(RoleUser)
}

// JWTAuthProviderMiddleware authenticates provider sessions.
func JWTAuthProviderMiddleware() gin.HandlerFunc {
	return jwtAuth(RoleProvider)
}

package middleware

import (
	"context"
	"net/http"
	"strings"

	"goodrunss/database/repository/player"
	"goodrunss/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthPlayerMiddleware validates a bearer token against the auth cache,
// falling back to the player store on a cache miss. It sets "playerID" on the
// context for downstream handlers.
func JWTAuthPlayerMiddleware(players playerRepo.PlayerRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}

		playerID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || playerID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + playerID

		authCache := utils.GetAuthCacheClient()
		cachedHash, err := authCache.Get(ctx, cacheKey).Result()
		if err == nil {
			if cachedHash != computedHash {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
				return
			}
			// Refresh TTL on a hit.
			_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
			c.Set("playerID", playerID)
			c.Next()
			return
		}

		// Cache miss: verify against the stored token hash.
		p, err := players.GetByID(playerID)
		if err != nil || p == nil || p.Security.TokenHash != computedHash {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}

		_ = authCache.Set(ctx, cacheKey, computedHash, utils.AuthCacheTTL).Err()
		c.Set("playerID", playerID)
		c.Next()
	}
}

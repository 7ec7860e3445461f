package middleware

import (
	"context"
	"net/http"
	"strings"

	partnerRepo "sokoway/database/repository/partner"
	"sokoway/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// JWTAuthPartnerMiddleware authenticates a logistics partner. The token's
// subject identifies the partner and the token hash must match the stored
// session hash, so a revoked token fails even before expiry. Successful
// validations are cached in Redis with a sliding TTL; a nil cache disables
// caching.
func JWTAuthPartnerMiddleware(partners partnerRepo.PartnerRepository, authCache *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		partnerID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || partnerID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + computedHash

		if authCache != nil {
			if cached, err := authCache.Get(ctx, cacheKey).Result(); err == nil && cached == "1" {
				// Sliding expiration: refresh the TTL and proceed.
				authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL)
				c.Set("partnerID", partnerID)
				c.Next()
				return
			}
		}

		partner, err := partners.GetByID(c.Request.Context(), partnerID)
		if err != nil || partner == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Partner not found"})
			return
		}
		if computedHash != partner.TokenHash {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
			return
		}

		if authCache != nil {
			if err := authCache.Set(ctx, cacheKey, "1", utils.AuthCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("failed to cache partner session", zap.Error(err))
			}
		}

		c.Set("partnerID", partnerID)
		c.Next()
	}
}

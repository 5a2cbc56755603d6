package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	providerRepo "homigo/database/repository/provider"
	"homigo/utils"

	"github.com/gin-gonic/gin"
)

// ContextProviderIDKey is where the authenticated provider id lands in the
// gin context.
const ContextProviderIDKey = "authProviderID"

// sessionTTL bounds how long a validated token skips the store lookup.
const sessionTTL = 15 * time.Minute

// cachedSession returns the provider id previously validated for this token
// hash, or empty. A missing or unreachable cache is not an error.
func cachedSession(tokenHash string) string {
	client := utils.SessionCacheClient
	if client == nil {
		return ""
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	id, err := client.Get(ctx, "session:"+tokenHash).Result()
	if err != nil {
		return ""
	}
	return id
}

// storeSession records a validated token hash so repeated requests with the
// same token skip the store lookup; failures are ignored.
func storeSession(tokenHash, providerID string) {
	client := utils.SessionCacheClient
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	client.Set(ctx, "session:"+tokenHash, providerID, sessionTTL)
}

// JWTAuthProviderMiddleware authenticates provider-owned endpoints with a
// Bearer token whose subject is the provider id. Signature and expiry are
// always checked; the provider-exists lookup is cached per token.
func JWTAuthProviderMiddleware(repo providerRepo.ProviderRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		providerID, err := utils.ExtractSubjectFromToken(tokenString)
		if err != nil || providerID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		tokenHash := utils.HashToken(tokenString)
		if cachedSession(tokenHash) != providerID {
			prov, err := repo.GetByID(providerID)
			if err != nil || prov == nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
				return
			}
			storeSession(tokenHash, providerID)
		}

		c.Set(ContextProviderIDKey, providerID)
		c.Next()
	}
}

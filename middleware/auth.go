package middleware

import (
	"net/http"

	"delivery-api/authz"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const principalKey = "principal"

// AuthRequired resolves the bearer token into a Principal and stores it in
// the context. Every failure is a 401 with a fixed body.
func AuthRequired(resolver *authz.Resolver, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required (Bearer <token>)"})
			return
		}
		p, err := resolver.Resolve(c.Request.Context(), header)
		if err != nil {
			logger.Debug("authentication failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		c.Set(principalKey, p)
		c.Next()
	}
}

// Require enforces that the caller's role may perform op on resource at all.
// Ownership is left to the service, which knows the target.
func Require(ev *authz.Evaluator, resource authz.Resource, op authz.Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required (Bearer <token>)"})
			return
		}
		if err := ev.Permits(p, resource, op); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		c.Next()
	}
}

// GetPrincipal extracts the caller set by AuthRequired
func GetPrincipal(c *gin.Context) (authz.Principal, bool) {
	val, exists := c.Get(principalKey)
	if !exists {
		return authz.Principal{}, false
	}
	p, ok := val.(authz.Principal)
	return p, ok
}

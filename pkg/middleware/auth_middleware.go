package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ScopeAll grants every scope, it is forwarded by the gateway for operators.
const ScopeAll = "*"

type AuthMiddleware interface {
	CheckUserPermission(requiredScope string) gin.HandlerFunc
}

type authMiddleware struct {
}

func (a *authMiddleware) CheckUserPermission(requiredScope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		scopesHeader := c.Request.Header.Get("X-User-Scopes")
		if len(scopesHeader) == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "X-User-Scopes header is empty",
			})
			return
		}
		for _, scope := range strings.Split(scopesHeader, ",") {
			scope = strings.TrimSpace(scope)
			if scope == requiredScope || scope == ScopeAll {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"message": "Permission denied",
		})
	}
}

func NewAuthMiddleware() AuthMiddleware {
	return &authMiddleware{}
}

package ginserver

import (
	"net/http"
	"strings"

	gin "github.com/gin-gonic/gin"
)

const principalContextKey = "propertree.principal"

// principal is the caller identity resolved by the upstream gateway.
// Authentication itself happens outside this service; the gateway forwards the
// verified identity in headers.
type principal struct {
	ID   string
	Role string
}

func (p principal) HasRole(role string) bool {
	return strings.EqualFold(strings.TrimSpace(p.Role), role)
}

// GatewayAuth pulls the caller identity from trusted gateway headers.
func GatewayAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader("X-User-ID"))
		if id != "" {
			c.Set(principalContextKey, principal{
				ID:   id,
				Role: strings.TrimSpace(c.GetHeader("X-User-Role")),
			})
		}
		c.Next()
	}
}

func currentPrincipal(c *gin.Context) (principal, bool) {
	val, exists := c.Get(principalContextKey)
	if !exists {
		return principal{}, false
	}
	p, ok := val.(principal)
	return p, ok
}

func requireRole(c *gin.Context, role string) (principal, bool) {
	p, ok := currentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "auth required"})
		return principal{}, false
	}
	if role != "" && !p.HasRole(role) {
		c.JSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
		return principal{}, false
	}
	return p, true
}

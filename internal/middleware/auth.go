package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"motoparts-api/internal/auth"
	"motoparts-api/internal/models"
)

const claimsKey = "auth_claims"

// TokenValidator es lo que el middleware necesita del servicio de tokens
type TokenValidator interface {
	Validate(token string) (*auth.Claims, error)
}

// RequireAuth exige "Authorization: Bearer <token>". Sin cabecera responde
// 401; con un token ilegible, vencido o mal firmado responde 400.
func RequireAuth(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Access Denied"})
			return
		}

		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Access Denied"})
			return
		}

		claims, err := tokens.Validate(strings.TrimSpace(token))
		if err != nil {
			Logger(c).Debug("token rejected", "error", err)
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid Token"})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireAdmin debe ir después de RequireAuth
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := Claims(c)
		if !ok || claims.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
			return
		}
		c.Next()
	}
}

// Claims devuelve los claims del token de la petición actual
func Claims(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}

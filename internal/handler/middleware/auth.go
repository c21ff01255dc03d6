package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"salon-booking/internal/pkg/cookie"
	"salon-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxIdentityKey = "identity"
	ctxChannelKey  = "identity_channel"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth accepts the identity cookie first and falls back to a Bearer header.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Identity token required"},
			})
			c.Abort()
			return
		}

		identity, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Invalid or expired token"},
			})
			c.Abort()
			return
		}

		setIdentity(c, identity)
		c.Next()
	}
}

// OptionalAuth attaches the identity when a valid token is present and never aborts.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		identity, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			c.Next()
			return
		}

		setIdentity(c, identity)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetIdentityToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func setIdentity(c *gin.Context, identity usecase.VerifiedIdentity) {
	c.Set(ctxIdentityKey, identity)
	c.Set(ctxChannelKey, identity.Channel.String())
	c.Set("jwt_claims", map[string]any{
		"identifier": identity.Identifier,
		"channel":    identity.Channel.String(),
	})
}

// SetIdentity stores an already verified identity on the context. Handler tests use it in
// place of a real token.
func SetIdentity(c *gin.Context, identity usecase.VerifiedIdentity) {
	setIdentity(c, identity)
}

func GetIdentity(c *gin.Context) (usecase.VerifiedIdentity, bool) {
	v, exists := c.Get(ctxIdentityKey)
	if !exists {
		return usecase.VerifiedIdentity{}, false
	}

	identity, ok := v.(usecase.VerifiedIdentity)
	if !ok || identity.Identifier == "" {
		return usecase.VerifiedIdentity{}, false
	}
	return identity, true
}

package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"ticket-booking/internal/pkg/jwt"
	"ticket-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const (
	ctxAdminEmailKey = "admin_email"
	ctxRoleKey       = "user_role"
)

// AuthMiddleware guards the admin surface. There is a single operator role;
// any valid token with role admin passes.
type AuthMiddleware struct {
	jwtService *jwt.Service
}

func NewAuthMiddleware(jwtService *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.jwtService.ValidateToken(token)
		if err != nil {
			slog.Warn("token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		if claims.Role != commands.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Set(ctxAdminEmailKey, claims.Email)
		c.Set(ctxRoleKey, claims.Role)
		c.Set("jwt_claims", map[string]any{
			"email": claims.Email,
			"role":  claims.Role,
		})
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func GetAdminEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(ctxAdminEmailKey)
	if !exists {
		return "", false
	}

	s, ok := email.(string)
	return s, ok
}

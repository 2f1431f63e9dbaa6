package auth

import (
	"net/http"
	"strings"

	"compliance-portal-backend/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates the access token and sets user context. The token is
// read from the Authorization header, falling back to the session cookie for
// browser clients.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("company_id", claims.CompanyID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Set("auth_claims", claims)

		c.Next()
	}
}

// RequireRole enforces a minimum role within the admin > manager > viewer
// hierarchy. Must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(minimum models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		userRole, ok := role.(models.UserRole)
		if !ok || !roleAtLeast(userRole, minimum) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient role for this operation"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// CompanyID returns the authenticated tenant from the request context
func CompanyID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get("company_id")
	if !exists {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}

// UserID returns the authenticated user from the request context
func UserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token != authHeader {
			return token
		}
		return ""
	}

	cookie, err := c.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie
}

var roleRank = map[models.UserRole]int{
	models.UserRoleViewer:  1,
	models.UserRoleManager: 2,
	models.UserRoleAdmin:   3,
}

func roleAtLeast(role, minimum models.UserRole) bool {
	return roleRank[role] >= roleRank[minimum]
}

package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"sitebuilder-backend/internal/authorization"
)

const (
	authTokenCookieName = "auth_token"

	ContextUserID = "user_id"
	ContextRole   = "role"
)

// AuthMiddleware accepts HS256 tokens issued by the auth service, either as a
// bearer header or in the auth cookie, and stores the subject and role on the context.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader != "" {
			bearerToken := strings.SplitN(authHeader, " ", 2)
			if len(bearerToken) != 2 || !strings.EqualFold(bearerToken[0], "Bearer") {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
				c.Abort()
				return
			}
			tokenString = strings.TrimSpace(bearerToken[1])
		}

		if tokenString == "" {
			if cookieToken, err := c.Cookie(authTokenCookieName); err == nil && strings.TrimSpace(cookieToken) != "" {
				tokenString = cookieToken
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization credentials required"})
				c.Abort()
				return
			}
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(jwtSecret), nil
		}, jwt.WithExpirationRequired())

		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
			c.Abort()
			return
		}

		userID := subjectOf(claims)
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token has no subject"})
			c.Abort()
			return
		}

		role, _ := authorization.ParseUserRole(claims["role"])
		c.Set(ContextUserID, userID)
		c.Set(ContextRole, role)

		c.Next()
	}
}

// subjectOf prefers the standard sub claim and falls back to a numeric or string user_id.
func subjectOf(claims jwt.MapClaims) string {
	if sub, err := claims.GetSubject(); err == nil && strings.TrimSpace(sub) != "" {
		return strings.TrimSpace(sub)
	}
	switch v := claims["user_id"].(type) {
	case float64:
		return strconv.FormatInt(int64(v), 10)
	case string:
		return strings.TrimSpace(v)
	}
	return ""
}

// AdminMiddleware lets through users whose role may edit pages.
func AdminMiddleware() gin.HandlerFunc {
	return RequirePermission(authorization.PermissionEditPages)
}

// RequirePermission rejects requests whose role lacks permission.
func RequirePermission(permission authorization.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authorization.RoleHasPermission(Role(c), permission) {
			c.JSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// Role returns the authenticated role, or an empty role for anonymous requests.
func Role(c *gin.Context) authorization.UserRole {
	value, ok := c.Get(ContextRole)
	if !ok {
		return ""
	}
	role, _ := value.(authorization.UserRole)
	return role
}

// EditorID returns the authenticated user that owns drafts for this request.
func EditorID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

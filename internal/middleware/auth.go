package middleware

import (
	"context"
	"net/http"
	"strings"

	"learnplatform/internal/infrastructure/security"

	"github.com/gin-gonic/gin"
)

const AuthCookieName = "auth_token"

// SessionChecker — проверка, что токен все еще действителен (не разлогинен).
type SessionChecker interface {
	Check(ctx context.Context, token string) (string, error)
}

// AuthMiddleware принимает токен из cookie или заголовка Bearer,
// проверяет подпись/срок и наличие сессии, кладет userId в контекст.
func AuthMiddleware(tokens *security.TokenManager, sessions SessionChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		userID, err := tokens.Validate(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		if sessions != nil {
			cachedID, err := sessions.Check(c.Request.Context(), token)
			if err != nil || cachedID != userID {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired"})
				return
			}
		}

		c.Set("userId", userID)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(AuthCookieName); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

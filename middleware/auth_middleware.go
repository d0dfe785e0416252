package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/landpro-backend/services"
)

// SessionUser is the authenticated identity for one request, populated once
// here and read everywhere else through CurrentUser. Handlers never re-parse
// the token or re-fetch the session.
type SessionUser struct {
	ID      string
	Email   string
	IsAdmin bool
}

const sessionKey = "session"

// AuthMiddleware validates the JWT from the access_token cookie or a Bearer
// header and stores the session identity in the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Authentication required",
			})
			c.Abort()
			return
		}

		claims, err := services.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(sessionKey, SessionUser{
			ID:      claims.UserID,
			Email:   claims.Email,
			IsAdmin: claims.Role == "admin",
		})

		c.Next()
	}
}

// CurrentUser returns the session identity set by AuthMiddleware.
func CurrentUser(c *gin.Context) (SessionUser, bool) {
	v, exists := c.Get(sessionKey)
	if !exists {
		return SessionUser{}, false
	}
	user, ok := v.(SessionUser)
	return user, ok
}

func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie("access_token"); err == nil && cookie != "" {
		return cookie
	}
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

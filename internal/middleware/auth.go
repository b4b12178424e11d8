package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookie is the http-only cookie carrying the admin session token.
const SessionCookie = "admin_token"

// AdminAuth rejects the request before any storage access when the session
// cookie is missing, unparseable or signed for a different role.
func AdminAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(SessionCookie)
		if err != nil || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		if !VerifyToken(raw, secret) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Next()
	}
}

// VerifyToken reports whether the token is a valid, unexpired admin session.
func VerifyToken(raw, secret string) bool {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}

	role, _ := claims["role"].(string)
	return role == "admin"
}

package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"backend/internal/middleware"
)

type loginRequest struct {
	Password string `json:"password"`
}

// verifyAdminPassword prefers the bcrypt hash when configured and falls back
// to plain comparison against the env password.
func verifyAdminPassword(password, adminPassword, adminPasswordHash string) bool {
	if adminPasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(adminPasswordHash), []byte(password)) == nil
	}
	return adminPassword != "" && password == adminPassword
}

func generateSessionToken(jwtSecret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

func Login(adminPassword, adminPasswordHash, jwtSecret string, sessionTTL time.Duration, secureCookie bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /auth/login"
		defer handlePanic(c, route)

		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}

		if strings.TrimSpace(req.Password) == "" {
			respondWithError(c, http.StatusBadRequest, route, "password is required")
			return
		}

		if !verifyAdminPassword(req.Password, adminPassword, adminPasswordHash) {
			respondWithError(c, http.StatusUnauthorized, route, "invalid password")
			return
		}

		signed, err := generateSessionToken(jwtSecret, sessionTTL)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "token generation failed")
			return
		}

		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(middleware.SessionCookie, signed, int(sessionTTL.Seconds()), "/", "", secureCookie, true)
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func Logout(secureCookie bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(middleware.SessionCookie, "", -1, "/", "", secureCookie, true)
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func Check(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(middleware.SessionCookie)
		authenticated := err == nil && raw != "" && middleware.VerifyToken(raw, jwtSecret)
		c.JSON(http.StatusOK, gin.H{"authenticated": authenticated})
	}
}

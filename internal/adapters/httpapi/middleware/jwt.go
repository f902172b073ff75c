package middleware

import (
	"net/http"
	"net/url"
	"os"
	"strings"

	userapp "plume/internal/core/user/service"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

// JWTAuth validates the bearer token (or auth cookie) and stores the
// acting user's id and username in the request context. Requests
// without a valid token are redirected to the login page with the
// original URL in the next parameter; guarded routes never answer 401.
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseClaims(c)
		if !ok {
			redirectToLogin(c)
			return
		}
		c.Set("userID", claims.Subject)
		c.Set("username", claims.Username)
		c.Next()
	}
}

// Identify resolves the acting user when a valid token is present but
// lets anonymous requests straight through. Views that only vary by
// viewer, like the profile's following flag, use this.
func Identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := parseClaims(c); ok {
			c.Set("userID", claims.Subject)
			c.Set("username", claims.Username)
		}
		c.Next()
	}
}

func parseClaims(c *gin.Context) (*userapp.AuthClaims, bool) {
	raw := tokenFromRequest(c)
	if raw == "" {
		return nil, false
	}

	claims := &userapp.AuthClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return nil, false
	}
	return claims, true
}

func tokenFromRequest(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie("auth"); err == nil {
		return cookie
	}
	return ""
}

func redirectToLogin(c *gin.Context) {
	next := url.QueryEscape(c.Request.URL.RequestURI())
	c.Redirect(http.StatusFound, "/auth/login?next="+next)
	c.Abort()
}

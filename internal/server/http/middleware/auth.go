package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/greencart/storefront/internal/pkg/auth"
	"github.com/greencart/storefront/internal/server/http/dto"
)

const (
	// UserIDContextKey is a gin context key for the authenticated user
	// identifier.
	UserIDContextKey = "userID"
	authCookieName   = "greencart_token"
)

// TokenParser validates a token and yields its subject and audience.
type TokenParser interface {
	ParseToken(token string) (int64, pkgAuth.Audience, error)
}

// AuthRequired ensures a customer token is present before the handler
// runs and stores the user id on the context.
func AuthRequired(parser TokenParser) gin.HandlerFunc {
	return requireAudience(parser, pkgAuth.AudienceUser)
}

// SellerRequired ensures a seller token is present before the handler
// runs.
func SellerRequired(parser TokenParser) gin.HandlerFunc {
	return requireAudience(parser, pkgAuth.AudienceSeller)
}

func requireAudience(parser TokenParser, want pkgAuth.Audience) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			abortUnauthorized(c)
			return
		}

		subject, audience, err := parser.ParseToken(token)
		if err != nil {
			if errors.Is(err, pkgAuth.ErrInvalidToken) {
				abortUnauthorized(c)
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Envelope{Success: false, Message: "internal error"})
			return
		}
		if audience != want {
			abortUnauthorized(c)
			return
		}

		c.Set(UserIDContextKey, subject)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Envelope{Success: false, Message: "Not Authorized"})
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes the auth token cookie to the response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}

// ClearAuthCookie expires the auth token cookie.
func ClearAuthCookie(c *gin.Context) {
	c.SetCookie(authCookieName, "", -1, "/", "", false, true)
}

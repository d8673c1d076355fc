package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wicket/internal/shared/config"
)

// AuthTokenCookie is the cookie carrying the session credential.
const AuthTokenCookie = "auth_token"

// SetAuthCookie sets the session token as an HttpOnly cookie.
func SetAuthCookie(c *gin.Context, cookieConfig config.CookieConfig, token string, maxAge int) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))
	c.SetCookie(
		AuthTokenCookie,
		token,
		maxAge,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		true, // HttpOnly
	)
}

// ClearAuthCookie clears the session cookie via an immediate-expiry overwrite.
func ClearAuthCookie(c *gin.Context, cookieConfig config.CookieConfig) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))
	c.SetCookie(
		AuthTokenCookie,
		"",
		-1,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		true, // HttpOnly
	)
}

// GetTokenFromCookie retrieves the session token from the request cookie.
func GetTokenFromCookie(c *gin.Context) string {
	token, err := c.Cookie(AuthTokenCookie)
	if err != nil {
		return ""
	}
	return token
}

// parseSameSite converts string to http.SameSite
func parseSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainauth "wicket/internal/domain/auth"
	"wicket/internal/shared/logger"
	"wicket/internal/shared/utils"
)

const (
	IdentityKey  = "identity"
	EmailKey     = "auth_email"
	SessionIDKey = "session_id"
)

// Authenticator validates a session credential and resolves the
// identity behind it.
type Authenticator interface {
	Execute(credential string) (*domainauth.Identity, error)
}

type AuthMiddleware struct {
	authenticator Authenticator
	logger        logger.Interface
}

func NewAuthMiddleware(authenticator Authenticator, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		authenticator: authenticator,
		logger:        logger,
	}
}

// publicPaths are reachable without a session. Everything else behind
// the router requires authentication.
var publicPaths = []string{
	"/login",
	"/api/auth/",
	"/healthz",
	"/favicon.ico",
	"/static/",
}

func isPublicPath(path string) bool {
	for _, p := range publicPaths {
		if strings.HasSuffix(p, "/") {
			if strings.HasPrefix(path, p) {
				return true
			}
			continue
		}
		if path == p {
			return true
		}
	}
	return false
}

// RequireAuth gates page requests. Unauthenticated requests are
// redirected to the login page.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if isPublicPath(c.Request.URL.Path) {
			c.Next()
			return
		}

		identity, err := m.authenticate(c)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		m.setIdentity(c, identity)
		c.Next()
	}
}

// RequireAuthAPI gates API requests. Unauthenticated requests get a
// JSON error instead of a redirect.
func (m *AuthMiddleware) RequireAuthAPI() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := m.authenticate(c)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		m.setIdentity(c, identity)
		c.Next()
	}
}

func (m *AuthMiddleware) authenticate(c *gin.Context) (*domainauth.Identity, error) {
	credential := utils.GetTokenFromCookie(c)
	identity, err := m.authenticator.Execute(credential)
	if err != nil {
		m.logger.Debugw("authentication denied",
			"path", c.Request.URL.Path,
			"client_ip", c.ClientIP(),
			"error", err)
		return nil, err
	}
	return identity, nil
}

func (m *AuthMiddleware) setIdentity(c *gin.Context, identity *domainauth.Identity) {
	c.Set(IdentityKey, identity)
	c.Set(EmailKey, identity.Email)
	c.Set(SessionIDKey, identity.SessionID)
}

// GetIdentity returns the authenticated identity set by the auth
// middleware, or nil when the request was not authenticated.
func GetIdentity(c *gin.Context) *domainauth.Identity {
	v, exists := c.Get(IdentityKey)
	if !exists {
		return nil
	}
	identity, ok := v.(*domainauth.Identity)
	if !ok {
		return nil
	}
	return identity
}

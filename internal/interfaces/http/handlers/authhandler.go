package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wicket/internal/application/auth/usecases"
	"wicket/internal/shared/config"
	"wicket/internal/shared/errors"
	"wicket/internal/shared/logger"
	"wicket/internal/shared/utils"
)

type LoginRequest struct {
	Email string `json:"email" binding:"required"`
}

// AuthHandler serves the magic-link login flow: request a link, redeem it
// for a session cookie, and log out.
type AuthHandler struct {
	requestLogin    requestLoginUseCase
	redeemMagicLink redeemMagicLinkUseCase
	logout          logoutUseCase
	cookieConfig    config.CookieConfig
	sessionMaxAge   int
	logger          logger.Interface
}

func NewAuthHandler(
	requestLogin requestLoginUseCase,
	redeemMagicLink redeemMagicLinkUseCase,
	logout logoutUseCase,
	authConfig config.AuthConfig,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		requestLogin:    requestLogin,
		redeemMagicLink: redeemMagicLink,
		logout:          logout,
		cookieConfig:    authConfig.Cookie,
		sessionMaxAge:   authConfig.JWT.SessionExpDays * 24 * 60 * 60,
		logger:          logger,
	}
}

// Login accepts an email and, when the address is authorized, mails a
// magic link. The response is identical either way so the endpoint
// cannot be used to enumerate authorized addresses.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "email is required")
		return
	}

	if err := h.requestLogin.Execute(usecases.RequestLoginCommand{Email: req.Email}); err != nil {
		if errors.IsValidationError(err) {
			utils.ErrorResponseWithError(c, err)
			return
		}
		h.logger.Errorw("login request failed", "error", err)
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Verify redeems the magic-link token from the emailed URL. Success sets
// the session cookie and lands on the home page; any failure goes back
// to the login page.
func (h *AuthHandler) Verify(c *gin.Context) {
	result, err := h.redeemMagicLink.Execute(usecases.RedeemMagicLinkCommand{
		Token:     c.Query("token"),
		UserAgent: c.Request.UserAgent(),
		IPAddress: c.ClientIP(),
	})
	if err != nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	utils.SetAuthCookie(c, h.cookieConfig, result.SessionToken, h.sessionMaxAge)
	c.Redirect(http.StatusFound, "/")
}

// Logout revokes the current session and clears the cookie. It always
// ends at the login page, even when the credential was already dead.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := utils.GetTokenFromCookie(c)
	if err := h.logout.Execute(usecases.LogoutCommand{SessionToken: token}); err != nil {
		h.logger.Warnw("logout revocation failed", "error", err)
	}

	utils.ClearAuthCookie(c, h.cookieConfig)
	c.Redirect(http.StatusFound, "/login")
}

// LoginPage renders the email form.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(loginPageHTML))
}

package usecases

import (
	"wicket/internal/application/auth/helpers"
	domainauth "wicket/internal/domain/auth"
	infraauth "wicket/internal/infrastructure/auth"
	"wicket/internal/infrastructure/email"
	"wicket/internal/shared/biztime"
	"wicket/internal/shared/errors"
	"wicket/internal/shared/goroutine"
	"wicket/internal/shared/logger"
)

type RedeemMagicLinkCommand struct {
	Token     string
	UserAgent string
	IPAddress string
}

type RedeemMagicLinkResult struct {
	SessionToken string
	Email        string
}

// RedeemMagicLinkUseCase exchanges a magic-link token for a session. Every
// failure branch returns the same error shape so the HTTP layer presents one
// outcome (back to login) no matter which check tripped.
//
// Link tokens are not marked consumed: a link stays redeemable until its
// expiry.
type RedeemMagicLinkUseCase struct {
	tokenService   *infraauth.TokenService
	allowlist      *domainauth.Allowlist
	sessionManager *helpers.SessionManager
	emailService   email.Service
	adminEmail     string
	logger         logger.Interface
}

func NewRedeemMagicLinkUseCase(
	tokenService *infraauth.TokenService,
	allowlist *domainauth.Allowlist,
	sessionManager *helpers.SessionManager,
	emailService email.Service,
	adminEmail string,
	logger logger.Interface,
) *RedeemMagicLinkUseCase {
	return &RedeemMagicLinkUseCase{
		tokenService:   tokenService,
		allowlist:      allowlist,
		sessionManager: sessionManager,
		emailService:   emailService,
		adminEmail:     adminEmail,
		logger:         logger,
	}
}

func (uc *RedeemMagicLinkUseCase) Execute(cmd RedeemMagicLinkCommand) (*RedeemMagicLinkResult, error) {
	claims, err := uc.tokenService.Verify(cmd.Token)
	if err != nil {
		uc.logger.Infow("magic link verification failed", "error", err)
		return nil, errors.NewUnauthorizedError("invalid or expired link")
	}

	if !claims.IsMagicLink() {
		uc.logger.Warnw("non-magic-link token presented for redemption")
		return nil, errors.NewUnauthorizedError("invalid or expired link")
	}

	if !uc.allowlist.Contains(claims.Email) {
		uc.logger.Warnw("magic link redeemed for unlisted email")
		return nil, errors.NewUnauthorizedError("invalid or expired link")
	}

	sessionToken, err := uc.sessionManager.Create(claims.Email, domainauth.RequestMeta{
		UserAgent: cmd.UserAgent,
		IPAddress: cmd.IPAddress,
	})
	if err != nil {
		uc.logger.Errorw("failed to create session", "error", err)
		return nil, errors.NewUnauthorizedError("invalid or expired link")
	}

	uc.notifyAdmin(claims.Email, cmd.UserAgent, cmd.IPAddress)

	return &RedeemMagicLinkResult{
		SessionToken: sessionToken,
		Email:        claims.Email,
	}, nil
}

// notifyAdmin dispatches a login alert without blocking redemption; a failed
// alert never fails the login.
func (uc *RedeemMagicLinkUseCase) notifyAdmin(loginEmail, userAgent, ip string) {
	if uc.adminEmail == "" {
		return
	}

	adminEmail := uc.adminEmail
	emailService := uc.emailService
	log := uc.logger
	when := biztime.NowUTC()
	goroutine.SafeGo(uc.logger, "auth.login-alert", func() {
		if err := emailService.SendLoginAlertEmail(adminEmail, loginEmail, userAgent, ip, when); err != nil {
			log.Warnw("failed to send login alert", "error", err)
		}
	})
}

package usecases

import (
	"fmt"

	domainauth "wicket/internal/domain/auth"
	infraauth "wicket/internal/infrastructure/auth"
	"wicket/internal/infrastructure/email"
	"wicket/internal/shared/errors"
	"wicket/internal/shared/logger"
)

type RequestLoginCommand struct {
	Email string
}

// RequestLoginUseCase issues a magic-link email for allowlisted addresses.
// Its outcome is deliberately uniform: whether or not the email is authorized,
// and whether or not delivery succeeds, the caller sees the same success.
// Anything else would let an outsider probe the allowlist.
type RequestLoginUseCase struct {
	allowlist    *domainauth.Allowlist
	tokenService *infraauth.TokenService
	emailService email.Service
	baseURL      string
	logger       logger.Interface
}

func NewRequestLoginUseCase(
	allowlist *domainauth.Allowlist,
	tokenService *infraauth.TokenService,
	emailService email.Service,
	baseURL string,
	logger logger.Interface,
) *RequestLoginUseCase {
	return &RequestLoginUseCase{
		allowlist:    allowlist,
		tokenService: tokenService,
		emailService: emailService,
		baseURL:      baseURL,
		logger:       logger,
	}
}

func (uc *RequestLoginUseCase) Execute(cmd RequestLoginCommand) error {
	normalized, err := domainauth.ParseEmail(cmd.Email)
	if err != nil {
		return errors.NewValidationError("a valid email is required", err.Error())
	}

	if !uc.allowlist.Contains(normalized) {
		// Same outward response as the authorized path.
		uc.logger.Infow("login requested for unlisted email")
		return nil
	}

	token, err := uc.tokenService.IssueMagicLink(normalized)
	if err != nil {
		uc.logger.Errorw("failed to issue magic link token", "error", err)
		return nil
	}

	link := fmt.Sprintf("%s/api/auth/verify?token=%s", uc.baseURL, token)

	if err := uc.emailService.SendMagicLinkEmail(normalized, link, uc.tokenService.MagicLinkExpMinutes()); err != nil {
		// Delivery failure must not change the uniform response.
		uc.logger.Errorw("failed to deliver magic link email", "error", err)
		return nil
	}

	uc.logger.Infow("magic link sent", "email", normalized)
	return nil
}

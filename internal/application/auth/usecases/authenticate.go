package usecases

import (
	domainauth "wicket/internal/domain/auth"
	infraauth "wicket/internal/infrastructure/auth"
	"wicket/internal/shared/errors"
	"wicket/internal/shared/goroutine"
	"wicket/internal/shared/logger"
)

// AuthenticateUseCase is the single authentication decision shared by the
// perimeter middleware and the per-operation guards. Both call sites must run
// exactly this algorithm; only the denial presentation differs.
type AuthenticateUseCase struct {
	tokenService *infraauth.TokenService
	allowlist    *domainauth.Allowlist
	sessionRepo  domainauth.SessionRepository
	logger       logger.Interface
}

func NewAuthenticateUseCase(
	tokenService *infraauth.TokenService,
	allowlist *domainauth.Allowlist,
	sessionRepo domainauth.SessionRepository,
	logger logger.Interface,
) *AuthenticateUseCase {
	return &AuthenticateUseCase{
		tokenService: tokenService,
		allowlist:    allowlist,
		sessionRepo:  sessionRepo,
		logger:       logger,
	}
}

// Execute resolves a bearer credential to an identity.
//
// The signed token proves authenticity and expiry without a store round-trip;
// the session row lookup is the revocation check on top of that. A deleted row
// denies the request even when the token itself still verifies.
func (uc *AuthenticateUseCase) Execute(credential string) (*domainauth.Identity, error) {
	if credential == "" {
		return nil, errors.NewUnauthorizedError("missing credential")
	}

	claims, err := uc.tokenService.Verify(credential)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid or expired credential")
	}

	// The allowlist shrank after this session was issued? Deny per request,
	// not only at login.
	if !uc.allowlist.Contains(claims.Email) {
		return nil, errors.NewForbiddenError("email not authorized")
	}

	session, err := uc.sessionRepo.GetByID(claims.SessionID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			// Row deleted = revoked, regardless of the token's own validity.
			return nil, errors.NewUnauthorizedError("session revoked")
		}
		uc.logger.Errorw("failed to load session", "error", err, "session_id", claims.SessionID)
		return nil, errors.NewUnauthorizedError("session unavailable")
	}

	if session.TokenHash != claims.TokenHash {
		return nil, errors.NewForbiddenError("credential does not match session")
	}

	sessionID := session.ID
	repo := uc.sessionRepo
	log := uc.logger
	goroutine.SafeGo(uc.logger, "session.touch", func() {
		if err := repo.TouchLastSeen(sessionID); err != nil {
			log.Warnw("failed to touch session activity", "error", err, "session_id", sessionID)
		}
	})

	return &domainauth.Identity{
		Email:     session.Email,
		SessionID: session.ID,
	}, nil
}

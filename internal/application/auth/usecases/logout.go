package usecases

import (
	"wicket/internal/application/auth/helpers"
	"wicket/internal/shared/logger"
)

type LogoutCommand struct {
	SessionToken string
}

// LogoutUseCase revokes the session behind a credential. It tolerates
// malformed, expired and already-revoked credentials: the caller still clears
// the cookie either way.
type LogoutUseCase struct {
	sessionManager *helpers.SessionManager
	logger         logger.Interface
}

func NewLogoutUseCase(sessionManager *helpers.SessionManager, logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{
		sessionManager: sessionManager,
		logger:         logger,
	}
}

func (uc *LogoutUseCase) Execute(cmd LogoutCommand) error {
	if cmd.SessionToken == "" {
		return nil
	}

	if err := uc.sessionManager.Revoke(cmd.SessionToken); err != nil {
		uc.logger.Errorw("failed to revoke session", "error", err)
		return err
	}

	return nil
}

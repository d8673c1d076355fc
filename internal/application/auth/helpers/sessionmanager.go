package helpers

import (
	"fmt"

	domainauth "wicket/internal/domain/auth"
	infraauth "wicket/internal/infrastructure/auth"
	"wicket/internal/shared/logger"
)

// SessionManager orchestrates session creation (store a record, mint the
// matching token) and revocation (delete the record).
type SessionManager struct {
	sessionRepo  domainauth.SessionRepository
	tokenService *infraauth.TokenService
	logger       logger.Interface
}

func NewSessionManager(
	sessionRepo domainauth.SessionRepository,
	tokenService *infraauth.TokenService,
	logger logger.Interface,
) *SessionManager {
	return &SessionManager{
		sessionRepo:  sessionRepo,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Create generates a high-entropy session secret, persists its digest, and
// returns a session token embedding the new row's id and the same digest.
// The returned token is the only copy of the credential.
func (m *SessionManager) Create(email string, meta domainauth.RequestMeta) (string, error) {
	secret, err := infraauth.GenerateSessionSecret()
	if err != nil {
		return "", fmt.Errorf("failed to generate session secret: %w", err)
	}
	tokenHash := infraauth.HashToken(secret)

	session, err := domainauth.NewSession(email, tokenHash, meta)
	if err != nil {
		return "", fmt.Errorf("failed to build session: %w", err)
	}

	if err := m.sessionRepo.Create(session); err != nil {
		return "", fmt.Errorf("failed to persist session: %w", err)
	}

	token, err := m.tokenService.IssueSession(email, session.ID, tokenHash)
	if err != nil {
		return "", fmt.Errorf("failed to issue session token: %w", err)
	}

	m.logger.Infow("session created",
		"session_id", session.ID,
		"email", email)

	return token, nil
}

// Revoke deletes the session row referenced by the token. The token is decoded
// without verification: revocation must work even for tokens that no longer
// verify. An undecodable token means there is nothing to revoke, not an error.
func (m *SessionManager) Revoke(sessionToken string) error {
	claims, err := m.tokenService.Decode(sessionToken)
	if err != nil {
		m.logger.Debugw("revoke called with undecodable token", "error", err)
		return nil
	}
	if claims.SessionID == 0 {
		return nil
	}

	if err := m.sessionRepo.Delete(claims.SessionID); err != nil {
		return fmt.Errorf("failed to delete session %d: %w", claims.SessionID, err)
	}

	m.logger.Infow("session revoked", "session_id", claims.SessionID)
	return nil
}

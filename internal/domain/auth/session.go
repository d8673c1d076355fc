package auth

import (
	"fmt"
	"time"

	"wicket/internal/shared/biztime"
)

// Session is a server-side login record. The row's existence is the sole
// source of truth for validity: deleting it revokes every credential that
// references it, regardless of the credential's own expiry.
type Session struct {
	ID        uint
	Email     string
	TokenHash string
	UserAgent string
	IPAddress string
	CreatedAt time.Time
	LastSeen  time.Time
}

// RequestMeta carries audit-only attributes of the request a session was
// created from.
type RequestMeta struct {
	UserAgent string
	IPAddress string
}

func NewSession(email, tokenHash string, meta RequestMeta) (*Session, error) {
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if tokenHash == "" {
		return nil, fmt.Errorf("token hash is required")
	}

	now := biztime.NowUTC()
	return &Session{
		Email:     email,
		TokenHash: tokenHash,
		UserAgent: meta.UserAgent,
		IPAddress: meta.IPAddress,
		CreatedAt: now,
		LastSeen:  now,
	}, nil
}

func (s *Session) UpdateActivity() {
	s.LastSeen = biztime.NowUTC()
}

// SessionRepository persists session records. Delete is idempotent: deleting
// an id that no longer exists is not an error. TouchLastSeen is best-effort;
// callers dispatch it without awaiting and never treat its failure as a
// request failure.
type SessionRepository interface {
	Create(session *Session) error
	GetByID(sessionID uint) (*Session, error)
	Delete(sessionID uint) error
	TouchLastSeen(sessionID uint) error
}

// Identity is the resolved outcome of a successful authentication.
type Identity struct {
	Email     string
	SessionID uint
}

package usecases

import (
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domainauth "wicket/internal/domain/auth"
	infraauth "wicket/internal/infrastructure/auth"
	"wicket/internal/shared/errors"
	"wicket/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestTokenService(t *testing.T) *infraauth.TokenService {
	t.Helper()
	svc, err := infraauth.NewTokenService("test-secret", 15, 90)
	require.NoError(t, err)
	return svc
}

type mockSessionRepo struct {
	mu       sync.Mutex
	nextID   uint
	sessions map[uint]*domainauth.Session
	touched  chan uint

	createErr error
	getErr    error
}

func newMockSessionRepo() *mockSessionRepo {
	return &mockSessionRepo{
		nextID:   1,
		sessions: make(map[uint]*domainauth.Session),
		touched:  make(chan uint, 16),
	}
}

func (m *mockSessionRepo) Create(session *domainauth.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	session.ID = m.nextID
	m.nextID++
	copied := *session
	m.sessions[session.ID] = &copied
	return nil
}

func (m *mockSessionRepo) GetByID(sessionID uint) (*domainauth.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, errors.NewNotFoundError("session not found")
	}
	copied := *s
	return &copied, nil
}

func (m *mockSessionRepo) Delete(sessionID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
	return nil
}

func (m *mockSessionRepo) TouchLastSeen(sessionID uint) error {
	select {
	case m.touched <- sessionID:
	default:
	}
	return nil
}

func (m *mockSessionRepo) put(session *domainauth.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.ID] = session
	if session.ID >= m.nextID {
		m.nextID = session.ID + 1
	}
}

type sentMagicLink struct {
	To   string
	Link string
}

type sentLoginAlert struct {
	To         string
	LoginEmail string
}

type mockEmailService struct {
	mu         sync.Mutex
	magicLinks []sentMagicLink
	alerts     chan sentLoginAlert

	sendErr  error
	alertErr error
}

func newMockEmailService() *mockEmailService {
	return &mockEmailService{alerts: make(chan sentLoginAlert, 16)}
}

func (m *mockEmailService) SendMagicLinkEmail(to, link string, expiresInMinutes int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sendErr != nil {
		return m.sendErr
	}
	m.magicLinks = append(m.magicLinks, sentMagicLink{To: to, Link: link})
	return nil
}

func (m *mockEmailService) SendLoginAlertEmail(to, loginEmail, userAgent, ip string, at time.Time) error {
	m.mu.Lock()
	err := m.alertErr
	m.mu.Unlock()
	m.alerts <- sentLoginAlert{To: to, LoginEmail: loginEmail}
	return err
}

func (m *mockEmailService) sentMagicLinks() []sentMagicLink {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]sentMagicLink(nil), m.magicLinks...)
}

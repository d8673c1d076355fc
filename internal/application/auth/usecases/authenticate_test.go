package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "wicket/internal/domain/auth"
	"wicket/internal/shared/errors"
)

func seedSession(t *testing.T, repo *mockSessionRepo, email string) (string, *domainauth.Session) {
	t.Helper()
	tokenService := newTestTokenService(t)

	session, err := domainauth.NewSession(email, "digest", domainauth.RequestMeta{})
	require.NoError(t, err)
	session.ID = 1
	repo.put(session)

	token, err := tokenService.IssueSession(email, session.ID, session.TokenHash)
	require.NoError(t, err)
	return token, session
}

func TestAuthenticateUseCase_Success(t *testing.T) {
	repo := newMockSessionRepo()
	tokenService := newTestTokenService(t)
	allowlist := domainauth.NewAllowlist([]string{"alice@example.com"})
	uc := NewAuthenticateUseCase(tokenService, allowlist, repo, testLogger())

	token, session := seedSession(t, repo, "alice@example.com")

	identity, err := uc.Execute(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", identity.Email)
	assert.Equal(t, session.ID, identity.SessionID)

	// Activity touch is dispatched off the request path.
	select {
	case id := <-repo.touched:
		assert.Equal(t, session.ID, id)
	case <-time.After(time.Second):
		t.Fatal("expected last seen touch")
	}
}

func TestAuthenticateUseCase_MissingCredential(t *testing.T) {
	uc := NewAuthenticateUseCase(newTestTokenService(t), domainauth.NewAllowlist([]string{"alice@example.com"}), newMockSessionRepo(), testLogger())

	_, err := uc.Execute("")
	assert.True(t, errors.IsUnauthorizedError(err))
}

func TestAuthenticateUseCase_MalformedCredential(t *testing.T) {
	uc := NewAuthenticateUseCase(newTestTokenService(t), domainauth.NewAllowlist([]string{"alice@example.com"}), newMockSessionRepo(), testLogger())

	_, err := uc.Execute("garbage")
	assert.True(t, errors.IsUnauthorizedError(err))
}

func TestAuthenticateUseCase_RevokedSession(t *testing.T) {
	repo := newMockSessionRepo()
	tokenService := newTestTokenService(t)
	allowlist := domainauth.NewAllowlist([]string{"alice@example.com"})
	uc := NewAuthenticateUseCase(tokenService, allowlist, repo, testLogger())

	token, session := seedSession(t, repo, "alice@example.com")

	// Deleting the row invalidates the still-unexpired signed token.
	require.NoError(t, repo.Delete(session.ID))

	_, err := uc.Execute(token)
	assert.True(t, errors.IsUnauthorizedError(err))
}

func TestAuthenticateUseCase_ForgedDigest(t *testing.T) {
	repo := newMockSessionRepo()
	tokenService := newTestTokenService(t)
	allowlist := domainauth.NewAllowlist([]string{"alice@example.com"})
	uc := NewAuthenticateUseCase(tokenService, allowlist, repo, testLogger())

	_, session := seedSession(t, repo, "alice@example.com")

	// Valid signature, right session id, wrong digest.
	forged, err := tokenService.IssueSession("alice@example.com", session.ID, "some-other-digest")
	require.NoError(t, err)

	_, err = uc.Execute(forged)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestAuthenticateUseCase_AllowlistShrank(t *testing.T) {
	repo := newMockSessionRepo()
	tokenService := newTestTokenService(t)
	uc := NewAuthenticateUseCase(tokenService, domainauth.NewAllowlist(nil), repo, testLogger())

	token, _ := seedSession(t, repo, "alice@example.com")

	// The session predates the allowlist change; it is denied per request.
	_, err := uc.Execute(token)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestAuthenticateUseCase_MagicLinkAsCredential(t *testing.T) {
	repo := newMockSessionRepo()
	tokenService := newTestTokenService(t)
	allowlist := domainauth.NewAllowlist([]string{"alice@example.com"})
	uc := NewAuthenticateUseCase(tokenService, allowlist, repo, testLogger())

	// A magic-link token in the cookie slot has no backing session row.
	token, err := tokenService.IssueMagicLink("alice@example.com")
	require.NoError(t, err)

	_, err = uc.Execute(token)
	assert.True(t, errors.IsUnauthorizedError(err))
}

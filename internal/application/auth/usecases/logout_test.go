package usecases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wicket/internal/application/auth/helpers"
	domainauth "wicket/internal/domain/auth"
)

func TestLogoutUseCase_RevokesSession(t *testing.T) {
	repo := newMockSessionRepo()
	tokenService := newTestTokenService(t)
	manager := helpers.NewSessionManager(repo, tokenService, testLogger())
	uc := NewLogoutUseCase(manager, testLogger())

	token, err := manager.Create("alice@example.com", domainauth.RequestMeta{})
	require.NoError(t, err)

	require.NoError(t, uc.Execute(LogoutCommand{SessionToken: token}))

	claims, err := tokenService.Verify(token)
	require.NoError(t, err)
	_, err = repo.GetByID(claims.SessionID)
	assert.Error(t, err)
}

func TestLogoutUseCase_ToleratesDeadCredentials(t *testing.T) {
	repo := newMockSessionRepo()
	manager := helpers.NewSessionManager(repo, newTestTokenService(t), testLogger())
	uc := NewLogoutUseCase(manager, testLogger())

	assert.NoError(t, uc.Execute(LogoutCommand{SessionToken: ""}))
	assert.NoError(t, uc.Execute(LogoutCommand{SessionToken: "garbage"}))
}

package usecases

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "wicket/internal/domain/auth"
	"wicket/internal/shared/errors"
)

const testBaseURL = "http://localhost:8080"

func newRequestLoginUseCase(t *testing.T, emailSvc *mockEmailService, allowed ...string) *RequestLoginUseCase {
	t.Helper()
	return NewRequestLoginUseCase(
		domainauth.NewAllowlist(allowed),
		newTestTokenService(t),
		emailSvc,
		testBaseURL,
		testLogger(),
	)
}

func TestRequestLoginUseCase_SendsLinkForListedEmail(t *testing.T) {
	emailSvc := newMockEmailService()
	uc := newRequestLoginUseCase(t, emailSvc, "alice@example.com")

	err := uc.Execute(RequestLoginCommand{Email: " Alice@Example.com "})
	require.NoError(t, err)

	sent := emailSvc.sentMagicLinks()
	require.Len(t, sent, 1)
	assert.Equal(t, "alice@example.com", sent[0].To)
	assert.True(t, strings.HasPrefix(sent[0].Link, testBaseURL+"/api/auth/verify?token="))

	// The embedded token redeems for the normalized email.
	token := strings.TrimPrefix(sent[0].Link, testBaseURL+"/api/auth/verify?token=")
	claims, err := newTestTokenService(t).Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.True(t, claims.IsMagicLink())
}

func TestRequestLoginUseCase_UnlistedEmailLooksIdentical(t *testing.T) {
	emailSvc := newMockEmailService()
	uc := newRequestLoginUseCase(t, emailSvc, "alice@example.com")

	err := uc.Execute(RequestLoginCommand{Email: "mallory@example.com"})

	// Same nil outcome as the authorized path, but nothing is sent.
	assert.NoError(t, err)
	assert.Empty(t, emailSvc.sentMagicLinks())
}

func TestRequestLoginUseCase_DeliveryFailureLooksIdentical(t *testing.T) {
	emailSvc := newMockEmailService()
	emailSvc.sendErr = fmt.Errorf("smtp unreachable")
	uc := newRequestLoginUseCase(t, emailSvc, "alice@example.com")

	err := uc.Execute(RequestLoginCommand{Email: "alice@example.com"})
	assert.NoError(t, err)
}

func TestRequestLoginUseCase_MalformedEmail(t *testing.T) {
	emailSvc := newMockEmailService()
	uc := newRequestLoginUseCase(t, emailSvc, "alice@example.com")

	for _, input := range []string{"", "   ", "not-an-email", "alice@nosuffix"} {
		err := uc.Execute(RequestLoginCommand{Email: input})
		assert.True(t, errors.IsValidationError(err), "input %q", input)
	}
	assert.Empty(t, emailSvc.sentMagicLinks())
}

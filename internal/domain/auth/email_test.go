package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "valid", input: "alice@example.com", want: "alice@example.com"},
		{name: "normalized", input: " Alice@Example.COM ", want: "alice@example.com"},
		{name: "plus addressing", input: "alice+tag@example.com", want: "alice+tag@example.com"},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace only", input: "   ", wantErr: true},
		{name: "missing at", input: "alice.example.com", wantErr: true},
		{name: "missing tld", input: "alice@example", wantErr: true},
		{name: "too long", input: strings.Repeat("a", 250) + "@example.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEmail(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewSession(t *testing.T) {
	session, err := NewSession("alice@example.com", "digest", RequestMeta{
		UserAgent: "ua",
		IPAddress: "203.0.113.1",
	})

	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", session.Email)
	assert.Equal(t, "digest", session.TokenHash)
	assert.Equal(t, "ua", session.UserAgent)
	assert.Equal(t, "203.0.113.1", session.IPAddress)
	assert.False(t, session.CreatedAt.IsZero())
	assert.Equal(t, session.CreatedAt, session.LastSeen)
}

func TestNewSession_Invalid(t *testing.T) {
	_, err := NewSession("", "digest", RequestMeta{})
	assert.Error(t, err)

	_, err = NewSession("alice@example.com", "", RequestMeta{})
	assert.Error(t, err)
}

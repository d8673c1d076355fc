package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"wicket/internal/shared/biztime"
)

// TokenPurpose distinguishes the two credential flavors minted by the service.
type TokenPurpose string

const (
	// PurposeMagicLink marks short-lived single-purpose login link tokens.
	PurposeMagicLink TokenPurpose = "magic-link"
)

// Claims is the signed payload carried by both magic-link and session tokens.
// Magic-link tokens carry {email, purpose}; session tokens carry
// {email, session_id, token_hash}.
type Claims struct {
	Email     string       `json:"email"`
	SessionID uint         `json:"session_id,omitempty"`
	TokenHash string       `json:"token_hash,omitempty"`
	Purpose   TokenPurpose `json:"purpose,omitempty"`
	jwt.RegisteredClaims
}

// IsMagicLink reports whether the claims belong to a magic-link token.
func (c *Claims) IsMagicLink() bool {
	return c.Purpose == PurposeMagicLink
}

type TokenService struct {
	secret              []byte
	magicLinkExpMinutes int
	sessionExpDays      int
}

// NewTokenService creates the token codec. The signing secret must be present;
// the caller fails fast at startup if it is not.
func NewTokenService(secret string, magicLinkExpMinutes, sessionExpDays int) (*TokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt signing secret is required")
	}
	return &TokenService{
		secret:              []byte(secret),
		magicLinkExpMinutes: magicLinkExpMinutes,
		sessionExpDays:      sessionExpDays,
	}, nil
}

// IssueMagicLink mints a short-lived single-purpose login token for the email.
func (s *TokenService) IssueMagicLink(email string) (string, error) {
	now := biztime.NowUTC()
	exp := now.Add(time.Duration(s.magicLinkExpMinutes) * time.Minute)

	claims := &Claims{
		Email:   email,
		Purpose: PurposeMagicLink,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign magic link token: %w", err)
	}
	return signed, nil
}

// IssueSession mints a long-lived session token embedding the session row id
// and the digest of the session's secret.
func (s *TokenService) IssueSession(email string, sessionID uint, tokenHash string) (string, error) {
	now := biztime.NowUTC()
	exp := now.Add(time.Duration(s.sessionExpDays) * 24 * time.Hour)

	claims := &Claims{
		Email:     email,
		SessionID: sessionID,
		TokenHash: tokenHash,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Verify checks signature integrity and expiry. Any failure is returned as an
// error value; callers never see a panic from malformed input.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// Decode parses claims without verifying signature or expiry. Revocation uses
// it to extract the session id from a token an attacker might also hold, so it
// must work even for tokens that no longer verify.
func (s *TokenService) Decode(tokenString string) (*Claims, error) {
	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(tokenString, &Claims{})
	if err != nil {
		return nil, fmt.Errorf("failed to decode token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, fmt.Errorf("unexpected claims type")
	}
	return claims, nil
}

// MagicLinkExpMinutes returns the magic link lifetime in minutes.
func (s *TokenService) MagicLinkExpMinutes() int {
	return s.magicLinkExpMinutes
}

// SessionExpDays returns the session token lifetime in days.
func (s *TokenService) SessionExpDays() int {
	return s.sessionExpDays
}

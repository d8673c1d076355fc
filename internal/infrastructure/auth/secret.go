package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

const sessionSecretBytes = 32

// GenerateSessionSecret returns a random high-entropy secret for a new session.
// Only its digest is ever persisted.
func GenerateSessionSecret() (string, error) {
	b := make([]byte, sessionSecretBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session secret: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// HashToken computes the one-way digest stored on the session row and embedded
// in session token claims. It must be deterministic so the stored digest and
// the claim digest can be compared directly.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

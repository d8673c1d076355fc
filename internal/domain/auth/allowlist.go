package auth

// Allowlist is the fixed set of emails permitted to sign in. It is built once
// at startup from configuration and is safe for concurrent reads.
type Allowlist struct {
	emails map[string]struct{}
}

// NewAllowlist builds an Allowlist from raw entries. Entries are normalized
// (trimmed, lowercased); empty entries are dropped.
func NewAllowlist(entries []string) *Allowlist {
	emails := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if n := NormalizeEmail(e); n != "" {
			emails[n] = struct{}{}
		}
	}
	return &Allowlist{emails: emails}
}

// Contains reports whether the email is authorized. The input is normalized
// defensively; callers are expected to pass normalized emails already.
func (a *Allowlist) Contains(email string) bool {
	_, ok := a.emails[NormalizeEmail(email)]
	return ok
}

// Size returns the number of authorized emails.
func (a *Allowlist) Size() int {
	return len(a.emails)
}

package provider

import (
	"strings"

	"github.com/gallerykit/portal/user/credential"
)

// Policy is the enforced provider policy: a semicolon delimited list of
// credential types that administrators must sign in with. Empty disables
// the check entirely.
type Policy string

// tokens splits the policy, dropping empty entries.
func (p Policy) tokens() []string {
	var out []string
	for _, tok := range strings.Split(string(p), ";") {
		if tok = strings.TrimSpace(tok); tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// Empty reports whether the policy is configured at all.
func (p Policy) Empty() bool {
	return len(p.tokens()) == 0
}

// Satisfied reports whether the credential type just used, or its
// external-prefixed form, appears in the policy. Comparison is case
// insensitive.
func (p Policy) Satisfied(used string) bool {
	for _, tok := range p.tokens() {
		if strings.EqualFold(used, tok) || strings.EqualFold(used, credential.ExternalPrefix+tok) {
			return true
		}
	}
	return false
}

// First returns the provider to re-challenge with when the policy is not
// satisfied: the first listed entry.
func (p Policy) First() string {
	tokens := p.tokens()
	if len(tokens) == 0 {
		return ""
	}
	return tokens[0]
}

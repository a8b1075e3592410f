// Package emailaddr holds small, pure helpers for working with the email
// addresses that external identity providers hand back.
package emailaddr

import (
	"regexp"
	"strings"

	"github.com/gallerykit/portal/internal"
)

// Identity strings from external providers are either a bare address or
// "Display Name <address>".
var bracketPattern = regexp.MustCompile(`<(.+)>`)

// mask is fixed length on purpose. A mask derived from the local part
// would leak its length.
const mask = "**********"

// Extract pulls the address out of an identity string. When no bracket
// pair is present the input is returned unchanged.
func Extract(identity string) string {
	if match := bracketPattern.FindStringSubmatch(identity); match != nil {
		return match[1]
	}
	return identity
}

// Mask obfuscates the local part of an address for display. This is not a
// security control; the domain portion is always preserved.
//
// "john@example.com" masks to "j**********n@example.com" while a single
// character local part, "j@example.com", masks to "j**********@example.com".
func Mask(email string) (string, error) {
	at := strings.Index(email, "@")
	if email == "" || at <= 0 {
		return "", internal.NewErrorf(internal.ErrorCodeInvalidArgument, "Invalid email address provided")
	}
	if at == 1 {
		return email[:1] + mask + email[at:], nil
	}
	return email[:1] + mask + email[at-1:], nil
}

package email

import (
	"fmt"
	"regexp"
	"strings"
)

// emailRegex accepts local@domain.tld shaped addresses. Deliberately simple:
// delivery failures for exotic-but-valid addresses are the provider's to
// report, this only catches obvious caller mistakes before a network call.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Validate checks the structural rules every message must satisfy before any
// network call: at least one recipient, a non-blank subject, at least one of
// text/HTML, and every address across To/Cc/Bcc well-formed. The first
// offending address is named in the error.
func (d EmailData) Validate() error {
	if len(d.To) == 0 {
		return fmt.Errorf("%w: at least one recipient is required", ErrInvalidParams)
	}

	if strings.TrimSpace(d.Subject) == "" {
		return fmt.Errorf("%w: subject is required", ErrInvalidParams)
	}

	if strings.TrimSpace(d.Text) == "" && strings.TrimSpace(d.HTML) == "" {
		return fmt.Errorf("%w: either text or HTML body is required", ErrInvalidParams)
	}

	for _, group := range [][]string{d.To, d.Cc, d.Bcc} {
		for _, addr := range group {
			if !emailRegex.MatchString(addr) {
				return fmt.Errorf("%w: invalid email address %q", ErrInvalidParams, addr)
			}
		}
	}

	return nil
}

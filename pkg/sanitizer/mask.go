package sanitizer

import (
	"regexp"
	"strings"
)

var nonDigitRegex = regexp.MustCompile(`\D`)

// MaskString preserves up to visibleChars leading characters for recognition
// while hiding the rest. Short strings are fully masked to prevent the visible
// prefix from revealing most of the value. Handles Unicode properly.
func MaskString(s string, visibleChars int) string {
	if visibleChars < 0 {
		visibleChars = 0
	}

	runes := []rune(s)
	length := len(runes)

	if length <= visibleChars {
		return strings.Repeat("*", length)
	}

	return string(runes[:visibleChars]) + strings.Repeat("*", length-visibleChars)
}

// MaskEmail hides the local part while preserving the full domain for user
// recognition. At most the first two local-part characters stay visible;
// local parts of two characters or fewer are fully masked so the revealed
// prefix never reconstructs the whole local part.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}

	local := parts[0]
	domain := parts[1]

	if len(local) == 0 {
		return email
	}

	if len(local) <= 2 {
		return strings.Repeat("*", len(local)) + "@" + domain
	}

	return local[:2] + strings.Repeat("*", len(local)-2) + "@" + domain
}

// MaskPhone follows the PCI pattern of showing only the last 4 digits.
// Formatting characters are stripped before masking.
func MaskPhone(phone string) string {
	digits := nonDigitRegex.ReplaceAllString(phone, "")
	if len(digits) < 4 {
		return strings.Repeat("*", len(digits))
	}

	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}

// MaskCreditCard follows the PCI DSS requirement to show only the last 4 digits.
func MaskCreditCard(cardNumber string) string {
	digits := nonDigitRegex.ReplaceAllString(cardNumber, "")
	if len(digits) < 4 {
		return strings.Repeat("*", len(digits))
	}

	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}

package secrets

import "crypto/subtle"

// ConstantTimeEquals compares two strings in constant time for equal lengths.
// It returns false, without error, on a length mismatch; the early exit means
// the comparison is NOT constant time across differing lengths, only across
// equal-length inputs. This is an accepted limitation: length is assumed to be
// public for the token and signature comparisons this guards.
func ConstantTimeEquals(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

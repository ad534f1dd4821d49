package secrets

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword creates an adaptive salted one-way hash of the password using
// bcrypt at the default work factor. The returned string embeds salt and cost.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Join(ErrHashingFailed, err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether the password matches the stored hash.
// The comparison is delegated to bcrypt, which is timing-safe; never compare
// hashes with a manual string comparison.
func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

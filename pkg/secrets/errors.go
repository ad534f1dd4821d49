package secrets

import "errors"

var (
	// ErrInvalidKey indicates the encryption key is not exactly 32 bytes.
	ErrInvalidKey = errors.New("invalid key: must be 32 bytes")

	// ErrPlaintextTooLarge indicates the input exceeds the 1MB encryption cap.
	ErrPlaintextTooLarge = errors.New("plaintext exceeds maximum size")

	// Encryption/decryption errors.
	ErrEncryptionFailed  = errors.New("encryption failed")
	ErrDecryptionFailed  = errors.New("decryption failed")
	ErrInvalidCiphertext = errors.New("invalid ciphertext format")

	// ErrHashingFailed indicates the password could not be hashed.
	ErrHashingFailed = errors.New("password hashing failed")
)

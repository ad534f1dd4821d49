// Package secrets provides authenticated symmetric encryption, password
// hashing, and constant-time comparison for the rest of the application.
//
// Encryption uses AES-256-GCM with a fresh random nonce per call and a fixed
// additional-authenticated-data tag, making every ciphertext tamper-evident.
// Decrypting with a wrong key, a modified ciphertext, or a flipped tag bit
// fails hard with ErrDecryptionFailed - crypto primitives here return errors
// aggressively rather than degrading, unlike the token checks in pkg/jwt
// which report verification failure as a normal outcome.
//
// Usage:
//
//	enc, err := secrets.NewEncryptor(key) // key from configuration, 32 bytes
//	if err != nil {
//	    return err
//	}
//
//	data, err := enc.Encrypt([]byte("account credentials"))
//	// data.Ciphertext, data.IV, data.AuthTag
//
//	plaintext, err := enc.Decrypt(data)
//
// Password hashing wraps bcrypt; verification is timing-safe:
//
//	hash, _ := secrets.HashPassword("s3cret")
//	ok := secrets.VerifyPassword(hash, "s3cret")
package secrets

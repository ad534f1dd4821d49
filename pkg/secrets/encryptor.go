package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
)

const (
	// KeySize is the required key length: 256 bits for AES-256-GCM.
	KeySize = 32

	// MaxPlaintextSize caps encryption input to bound CPU and memory cost per call.
	MaxPlaintextSize = 1 << 20 // 1MB

	// additionalData is authenticated alongside every ciphertext without being
	// encrypted, so ciphertexts produced by this package cannot be replayed
	// into a different decryption context.
	additionalData = "nitrokit.secrets.v1"
)

// EncryptedData holds the three components of an AES-GCM encryption result.
// IV is the per-call random nonce; AuthTag is the GCM authentication tag split
// from the ciphertext so callers can store the parts separately.
type EncryptedData struct {
	Ciphertext []byte
	IV         []byte
	AuthTag    []byte
}

// Encryptor performs authenticated symmetric encryption with a single
// process-wide key. It is stateless aside from the key and safe for
// concurrent use.
type Encryptor struct {
	aead cipher.AEAD
}

// NewEncryptor creates an Encryptor from a 32-byte key.
func NewEncryptor(key []byte) (*Encryptor, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKey
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Join(ErrEncryptionFailed, err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Join(ErrEncryptionFailed, err)
	}

	return &Encryptor{aead: aead}, nil
}

// Encrypt encrypts plaintext with a fresh random nonce per call.
// Inputs over MaxPlaintextSize are rejected.
func (e *Encryptor) Encrypt(plaintext []byte) (*EncryptedData, error) {
	if len(plaintext) > MaxPlaintextSize {
		return nil, ErrPlaintextTooLarge
	}

	iv := make([]byte, e.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, errors.Join(ErrEncryptionFailed, err)
	}

	sealed := e.aead.Seal(nil, iv, plaintext, []byte(additionalData))

	// Seal appends the tag to the ciphertext; split it out.
	tagSize := e.aead.Overhead()
	boundary := len(sealed) - tagSize

	return &EncryptedData{
		Ciphertext: sealed[:boundary],
		IV:         iv,
		AuthTag:    sealed[boundary:],
	}, nil
}

// Decrypt is the exact inverse of Encrypt. Any mismatch in tag, IV, or key
// fails with ErrDecryptionFailed - the ciphertext is tamper-evident.
func (e *Encryptor) Decrypt(data *EncryptedData) ([]byte, error) {
	if data == nil || len(data.IV) != e.aead.NonceSize() || len(data.AuthTag) != e.aead.Overhead() {
		return nil, ErrInvalidCiphertext
	}

	sealed := make([]byte, 0, len(data.Ciphertext)+len(data.AuthTag))
	sealed = append(sealed, data.Ciphertext...)
	sealed = append(sealed, data.AuthTag...)

	plaintext, err := e.aead.Open(nil, data.IV, sealed, []byte(additionalData))
	if err != nil {
		return nil, errors.Join(ErrDecryptionFailed, err)
	}

	return plaintext, nil
}

// EncryptString encrypts a string and returns base64(iv || ciphertext || tag)
// for storage in a single column or header value.
func (e *Encryptor) EncryptString(plaintext string) (string, error) {
	data, err := e.Encrypt([]byte(plaintext))
	if err != nil {
		return "", err
	}

	packed := make([]byte, 0, len(data.IV)+len(data.Ciphertext)+len(data.AuthTag))
	packed = append(packed, data.IV...)
	packed = append(packed, data.Ciphertext...)
	packed = append(packed, data.AuthTag...)

	return base64.StdEncoding.EncodeToString(packed), nil
}

// DecryptString reverses EncryptString.
func (e *Encryptor) DecryptString(encoded string) (string, error) {
	packed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", errors.Join(ErrInvalidCiphertext, err)
	}

	ivSize := e.aead.NonceSize()
	tagSize := e.aead.Overhead()
	if len(packed) < ivSize+tagSize {
		return "", ErrInvalidCiphertext
	}

	plaintext, err := e.Decrypt(&EncryptedData{
		IV:         packed[:ivSize],
		Ciphertext: packed[ivSize : len(packed)-tagSize],
		AuthTag:    packed[len(packed)-tagSize:],
	})
	if err != nil {
		return "", err
	}

	return string(plaintext), nil
}

// GenerateKey creates a new random 32-byte key suitable for NewEncryptor.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	return key, nil
}

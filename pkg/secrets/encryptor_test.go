package secrets_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mustafagenc/nitrokit/pkg/secrets"
)

func testKey(t *testing.T) []byte {
	t.Helper()

	key, err := secrets.GenerateKey()
	require.NoError(t, err)
	require.Len(t, key, secrets.KeySize)
	return key
}

func TestNewEncryptor(t *testing.T) {
	t.Parallel()

	t.Run("valid key", func(t *testing.T) {
		t.Parallel()

		enc, err := secrets.NewEncryptor(testKey(t))
		require.NoError(t, err)
		assert.NotNil(t, enc)
	})

	t.Run("short key rejected", func(t *testing.T) {
		t.Parallel()

		_, err := secrets.NewEncryptor([]byte("too-short"))
		assert.ErrorIs(t, err, secrets.ErrInvalidKey)
	})

	t.Run("nil key rejected", func(t *testing.T) {
		t.Parallel()

		_, err := secrets.NewEncryptor(nil)
		assert.ErrorIs(t, err, secrets.ErrInvalidKey)
	})
}

func TestEncryptDecrypt(t *testing.T) {
	t.Parallel()

	enc, err := secrets.NewEncryptor(testKey(t))
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		plaintext := []byte("hello, aead")
		data, err := enc.Encrypt(plaintext)
		require.NoError(t, err)
		assert.Len(t, data.IV, 12)
		assert.Len(t, data.AuthTag, 16)
		assert.NotEqual(t, plaintext, data.Ciphertext)

		decrypted, err := enc.Decrypt(data)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
	})

	t.Run("unique IV per call", func(t *testing.T) {
		t.Parallel()

		first, err := enc.Encrypt([]byte("same input"))
		require.NoError(t, err)
		second, err := enc.Encrypt([]byte("same input"))
		require.NoError(t, err)

		assert.False(t, bytes.Equal(first.IV, second.IV))
		assert.False(t, bytes.Equal(first.Ciphertext, second.Ciphertext))
	})

	t.Run("flipped auth tag bit fails", func(t *testing.T) {
		t.Parallel()

		data, err := enc.Encrypt([]byte("tamper me"))
		require.NoError(t, err)

		data.AuthTag[0] ^= 0x01
		_, err = enc.Decrypt(data)
		assert.ErrorIs(t, err, secrets.ErrDecryptionFailed)
	})

	t.Run("tampered ciphertext fails", func(t *testing.T) {
		t.Parallel()

		data, err := enc.Encrypt([]byte("tamper me too"))
		require.NoError(t, err)

		data.Ciphertext[0] ^= 0x01
		_, err = enc.Decrypt(data)
		assert.ErrorIs(t, err, secrets.ErrDecryptionFailed)
	})

	t.Run("wrong key fails", func(t *testing.T) {
		t.Parallel()

		data, err := enc.Encrypt([]byte("secret"))
		require.NoError(t, err)

		other, err := secrets.NewEncryptor(testKey(t))
		require.NoError(t, err)

		_, err = other.Decrypt(data)
		assert.ErrorIs(t, err, secrets.ErrDecryptionFailed)
	})

	t.Run("plaintext at cap accepted", func(t *testing.T) {
		t.Parallel()

		data, err := enc.Encrypt(make([]byte, secrets.MaxPlaintextSize))
		require.NoError(t, err)

		decrypted, err := enc.Decrypt(data)
		require.NoError(t, err)
		assert.Len(t, decrypted, secrets.MaxPlaintextSize)
	})

	t.Run("plaintext over cap rejected", func(t *testing.T) {
		t.Parallel()

		_, err := enc.Encrypt(make([]byte, secrets.MaxPlaintextSize+1))
		assert.ErrorIs(t, err, secrets.ErrPlaintextTooLarge)
	})

	t.Run("nil data rejected", func(t *testing.T) {
		t.Parallel()

		_, err := enc.Decrypt(nil)
		assert.ErrorIs(t, err, secrets.ErrInvalidCiphertext)
	})
}

func TestEncryptDecryptString(t *testing.T) {
	t.Parallel()

	enc, err := secrets.NewEncryptor(testKey(t))
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		encoded, err := enc.EncryptString("packed secret")
		require.NoError(t, err)

		decrypted, err := enc.DecryptString(encoded)
		require.NoError(t, err)
		assert.Equal(t, "packed secret", decrypted)
	})

	t.Run("unicode round trip", func(t *testing.T) {
		t.Parallel()

		original := "sécrets 日本語 " + strings.Repeat("x", 1024)
		encoded, err := enc.EncryptString(original)
		require.NoError(t, err)

		decrypted, err := enc.DecryptString(encoded)
		require.NoError(t, err)
		assert.Equal(t, original, decrypted)
	})

	t.Run("invalid base64 rejected", func(t *testing.T) {
		t.Parallel()

		_, err := enc.DecryptString("!!not base64!!")
		assert.ErrorIs(t, err, secrets.ErrInvalidCiphertext)
	})

	t.Run("truncated payload rejected", func(t *testing.T) {
		t.Parallel()

		_, err := enc.DecryptString("c2hvcnQ=")
		assert.ErrorIs(t, err, secrets.ErrInvalidCiphertext)
	})
}

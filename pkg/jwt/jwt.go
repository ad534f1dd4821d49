package jwt

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

// Fixed header values: this service issues HS256 tokens only.
const (
	headerType      = "JWT"
	headerAlgorithm = "HS256"
)

// header is the JOSE header as defined in RFC 7515.
type header struct {
	Type      string `json:"typ"`
	Algorithm string `json:"alg"`
}

// Service issues and verifies HMAC-SHA256 compact tokens.
// The signing secret is kept in memory only and should be at least 32 bytes.
type Service struct {
	secret []byte
}

// New creates a token service with the provided signing secret.
func New(secret []byte) (*Service, error) {
	if len(secret) == 0 {
		return nil, ErrMissingSecret
	}
	return &Service{secret: secret}, nil
}

// NewFromString is a convenience wrapper around New for string-based configuration.
func NewFromString(secret string) (*Service, error) {
	return New([]byte(secret))
}

// Generate creates a signed token from any JSON-serializable claims value.
// The result is base64url(header).base64url(claims).base64url(signature).
func (s *Service) Generate(claims any) (string, error) {
	if claims == nil {
		return "", ErrMissingClaims
	}

	headerJSON, err := json.Marshal(header{Type: headerType, Algorithm: headerAlgorithm})
	if err != nil {
		return "", fmt.Errorf("failed to marshal header: %w", err)
	}

	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("failed to marshal claims: %w", err)
	}

	payload := encodeSegment(headerJSON) + "." + encodeSegment(claimsJSON)
	return payload + "." + s.sign(payload), nil
}

// Parse verifies a token's signature and unmarshals its claims into the
// provided structure. Verification failures and expiry are reported as
// sentinel errors (ErrInvalidSignature, ErrExpiredToken) rather than panics;
// callers treat them as a normal negative outcome.
func (s *Service) Parse(token string, claims any) error {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return ErrInvalidToken
	}

	// Signature first, constant-time, before trusting any token content.
	payload := parts[0] + "." + parts[1]
	expected := s.sign(payload)
	if subtle.ConstantTimeCompare([]byte(parts[2]), []byte(expected)) != 1 {
		return ErrInvalidSignature
	}

	headerJSON, err := decodeSegment(parts[0])
	if err != nil {
		return fmt.Errorf("failed to decode header: %w", err)
	}

	var h header
	if err := json.Unmarshal(headerJSON, &h); err != nil {
		return fmt.Errorf("failed to unmarshal header: %w", err)
	}

	// Reject unexpected algorithms to prevent algorithm confusion attacks.
	if h.Algorithm != headerAlgorithm {
		return ErrUnexpectedSigningMethod
	}

	claimsJSON, err := decodeSegment(parts[1])
	if err != nil {
		return fmt.Errorf("failed to decode claims: %w", err)
	}

	if err := json.Unmarshal(claimsJSON, claims); err != nil {
		return fmt.Errorf("failed to unmarshal claims: %w", err)
	}

	if validator, ok := claims.(interface{ Valid() error }); ok {
		if err := validator.Valid(); err != nil {
			return err
		}
	}

	return nil
}

func (s *Service) sign(payload string) string {
	h := hmac.New(sha256.New, s.secret)
	h.Write([]byte(payload))
	return encodeSegment(h.Sum(nil))
}

// Token segments use base64url without padding, per RFC 7515.
func encodeSegment(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

func decodeSegment(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(s)
}

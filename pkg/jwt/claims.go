package jwt

import "time"

// StandardClaims holds the registered claims from RFC 7519 Section 4.1.
// Temporal claims use Unix timestamps; zero values are treated as unset.
type StandardClaims struct {
	ID        string `json:"jti,omitempty"`
	Subject   string `json:"sub,omitempty"`
	Issuer    string `json:"iss,omitempty"`
	Audience  string `json:"aud,omitempty"`
	ExpiresAt int64  `json:"exp,omitempty"`
	NotBefore int64  `json:"nbf,omitempty"`
	IssuedAt  int64  `json:"iat,omitempty"`
}

// Valid checks the temporal claims against the current time.
func (c StandardClaims) Valid() error {
	now := time.Now().Unix()

	if c.ExpiresAt > 0 && now > c.ExpiresAt {
		return ErrExpiredToken
	}

	if c.NotBefore > 0 && now < c.NotBefore {
		return ErrInvalidToken
	}

	return nil
}

// SessionClaims is the typed payload for browser session tokens.
type SessionClaims struct {
	UserID string `json:"uid"`
	Email  string `json:"email,omitempty"`
	Role   string `json:"role,omitempty"`
	StandardClaims
}

// NewSessionClaims creates session claims expiring after ttl.
func NewSessionClaims(userID string, ttl time.Duration) SessionClaims {
	now := time.Now()
	return SessionClaims{
		UserID: userID,
		StandardClaims: StandardClaims{
			Subject:   userID,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(ttl).Unix(),
		},
	}
}

// APITokenClaims is the typed payload for long-lived API tokens.
type APITokenClaims struct {
	UserID string   `json:"uid"`
	Name   string   `json:"name,omitempty"`
	Scopes []string `json:"scopes,omitempty"`
	StandardClaims
}

// NewAPITokenClaims creates API token claims expiring after ttl.
// A zero ttl produces a non-expiring token.
func NewAPITokenClaims(userID, name string, scopes []string, ttl time.Duration) APITokenClaims {
	now := time.Now()
	claims := APITokenClaims{
		UserID: userID,
		Name:   name,
		Scopes: scopes,
		StandardClaims: StandardClaims{
			Subject:  userID,
			IssuedAt: now.Unix(),
		},
	}
	if ttl > 0 {
		claims.ExpiresAt = now.Add(ttl).Unix()
	}
	return claims
}

// Package jwt implements HMAC-SHA256 compact tokens (RFC 7519) for sessions
// and API keys.
//
// A token is base64url(header).base64url(claims).base64url(signature), where
// the signature is HMAC-SHA256 over the first two segments using a process
// secret. Parse recomputes and compares the signature in constant time before
// trusting any token content, then validates the exp/nbf claims.
//
// Verification failures are ordinary sentinel errors, never panics: an invalid
// signature returns ErrInvalidSignature and an elapsed expiry returns
// ErrExpiredToken. This differs deliberately from pkg/secrets, where tampered
// ciphertext is a hard failure - token checks sit on a hot authentication path
// where "not valid" is an expected outcome.
//
//	svc, err := jwt.NewFromString(cfg.TokenSecret)
//	token, err := svc.Generate(jwt.NewSessionClaims(userID, time.Hour))
//
//	var claims jwt.SessionClaims
//	if err := svc.Parse(token, &claims); err != nil {
//	    // errors.Is(err, jwt.ErrExpiredToken) etc.
//	}
package jwt

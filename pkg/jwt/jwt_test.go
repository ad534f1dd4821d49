package jwt_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mustafagenc/nitrokit/pkg/jwt"
)

const testSecret = "test-secret-key-at-least-32-bytes!!"

func newService(t *testing.T) *jwt.Service {
	t.Helper()

	svc, err := jwt.NewFromString(testSecret)
	require.NoError(t, err)
	return svc
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("empty secret rejected", func(t *testing.T) {
		t.Parallel()

		_, err := jwt.New(nil)
		assert.ErrorIs(t, err, jwt.ErrMissingSecret)

		_, err = jwt.NewFromString("")
		assert.ErrorIs(t, err, jwt.ErrMissingSecret)
	})
}

func TestGenerateParse(t *testing.T) {
	t.Parallel()

	svc := newService(t)

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		claims := jwt.NewSessionClaims("user-123", time.Hour)
		claims.Email = "user@example.com"

		token, err := svc.Generate(claims)
		require.NoError(t, err)
		assert.Equal(t, 3, len(strings.Split(token, ".")))

		var parsed jwt.SessionClaims
		require.NoError(t, svc.Parse(token, &parsed))
		assert.Equal(t, "user-123", parsed.UserID)
		assert.Equal(t, "user@example.com", parsed.Email)
		assert.Equal(t, "user-123", parsed.Subject)
	})

	t.Run("nil claims rejected", func(t *testing.T) {
		t.Parallel()

		_, err := svc.Generate(nil)
		assert.ErrorIs(t, err, jwt.ErrMissingClaims)
	})

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()

		claims := jwt.SessionClaims{
			UserID: "user-123",
			StandardClaims: jwt.StandardClaims{
				ExpiresAt: time.Now().Add(-time.Minute).Unix(),
			},
		}

		token, err := svc.Generate(claims)
		require.NoError(t, err)

		var parsed jwt.SessionClaims
		err = svc.Parse(token, &parsed)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("not yet valid token", func(t *testing.T) {
		t.Parallel()

		claims := jwt.SessionClaims{
			UserID: "user-123",
			StandardClaims: jwt.StandardClaims{
				NotBefore: time.Now().Add(time.Hour).Unix(),
			},
		}

		token, err := svc.Generate(claims)
		require.NoError(t, err)

		var parsed jwt.SessionClaims
		err = svc.Parse(token, &parsed)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("tampered payload rejected", func(t *testing.T) {
		t.Parallel()

		token, err := svc.Generate(jwt.NewSessionClaims("user-123", time.Hour))
		require.NoError(t, err)

		parts := strings.Split(token, ".")
		tampered := parts[0] + "." + parts[1] + "x." + parts[2]

		var parsed jwt.SessionClaims
		assert.ErrorIs(t, svc.Parse(tampered, &parsed), jwt.ErrInvalidSignature)
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		t.Parallel()

		token, err := svc.Generate(jwt.NewSessionClaims("user-123", time.Hour))
		require.NoError(t, err)

		other, err := jwt.NewFromString("a-completely-different-secret-value")
		require.NoError(t, err)

		var parsed jwt.SessionClaims
		assert.ErrorIs(t, other.Parse(token, &parsed), jwt.ErrInvalidSignature)
	})

	t.Run("malformed token rejected", func(t *testing.T) {
		t.Parallel()

		var parsed jwt.SessionClaims
		assert.ErrorIs(t, svc.Parse("not-a-token", &parsed), jwt.ErrInvalidToken)
		assert.ErrorIs(t, svc.Parse("a.b", &parsed), jwt.ErrInvalidToken)
	})
}

func TestAPITokenClaims(t *testing.T) {
	t.Parallel()

	svc := newService(t)

	t.Run("scoped token round trip", func(t *testing.T) {
		t.Parallel()

		claims := jwt.NewAPITokenClaims("user-9", "ci-deploy", []string{"emails:send"}, time.Hour)
		token, err := svc.Generate(claims)
		require.NoError(t, err)

		var parsed jwt.APITokenClaims
		require.NoError(t, svc.Parse(token, &parsed))
		assert.Equal(t, "ci-deploy", parsed.Name)
		assert.Equal(t, []string{"emails:send"}, parsed.Scopes)
	})

	t.Run("zero ttl never expires", func(t *testing.T) {
		t.Parallel()

		claims := jwt.NewAPITokenClaims("user-9", "forever", nil, 0)
		assert.Zero(t, claims.ExpiresAt)
		assert.NoError(t, claims.Valid())
	})
}

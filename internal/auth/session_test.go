package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkellner85/poi-console-services/api/internal/config"
)

func signToken(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	require.NoError(t, err)
	return signed
}

func testConfigs() []config.JWTConfig {
	return []config.JWTConfig{
		{Issuer: "poi-console-auth", Secret: []byte("console-secret")},
		{Issuer: "org-sso", Secret: []byte("sso-secret")},
	}
}

func TestVerifyAcceptsConfiguredIssuers(t *testing.T) {
	verifier, err := NewJWTVerifier(testConfigs(), "")
	require.NoError(t, err)

	now := time.Now()
	token := signToken(t, []byte("sso-secret"), jwt.MapClaims{
		"iss":  "org-sso",
		"sub":  "editor-42",
		"name": "Pat Editor",
		"iat":  now.Unix(),
		"exp":  now.Add(time.Hour).Unix(),
	})

	session, err := verifier.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "editor-42", session.Subject)
	assert.Equal(t, "Pat Editor", session.Name)
	assert.WithinDuration(t, now.Add(time.Hour), session.ExpiresAt, time.Second)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	verifier, err := NewJWTVerifier(testConfigs(), "")
	require.NoError(t, err)

	token := signToken(t, []byte("not-a-configured-secret"), jwt.MapClaims{
		"iss": "poi-console-auth",
		"sub": "editor-42",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsIssuerMismatch(t *testing.T) {
	verifier, err := NewJWTVerifier(testConfigs(), "")
	require.NoError(t, err)

	// Signed with a known secret but claiming the wrong issuer.
	token := signToken(t, []byte("console-secret"), jwt.MapClaims{
		"iss": "someone-else",
		"sub": "editor-42",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	verifier, err := NewJWTVerifier(testConfigs(), "")
	require.NoError(t, err)

	token := signToken(t, []byte("console-secret"), jwt.MapClaims{
		"iss": "poi-console-auth",
		"sub": "editor-42",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsMissingSubject(t *testing.T) {
	verifier, err := NewJWTVerifier(testConfigs(), "")
	require.NoError(t, err)

	token := signToken(t, []byte("console-secret"), jwt.MapClaims{
		"iss": "poi-console-auth",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyChecksAudience(t *testing.T) {
	verifier, err := NewJWTVerifier(testConfigs(), "poi-console-api")
	require.NoError(t, err)

	good := signToken(t, []byte("console-secret"), jwt.MapClaims{
		"iss": "poi-console-auth",
		"sub": "editor-42",
		"aud": "poi-console-api",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	_, err = verifier.Verify(good)
	assert.NoError(t, err)

	bad := signToken(t, []byte("console-secret"), jwt.MapClaims{
		"iss": "poi-console-auth",
		"sub": "editor-42",
		"aud": "another-api",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	_, err = verifier.Verify(bad)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewJWTVerifierRequiresIssuers(t *testing.T) {
	_, err := NewJWTVerifier(nil, "")
	assert.Error(t, err)
}

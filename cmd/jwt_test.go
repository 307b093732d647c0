package cmd

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/kernel/kit/pkg/convert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestDecodeJWT_Table(t *testing.T) {
	setupStdoutCapture(t)
	fixNow(t, time.Unix(1700003600, 0))

	tok := signedToken(t, jwt.MapClaims{
		"sub":  "user-123",
		"aud":  []string{"a", "b", "c", "d"},
		"exp":  1700000000,
		"role": map[string]any{"admin": true},
	})
	require.NoError(t, DecodeJWT(JWTInput{Token: tok}))

	out := outBuf.String()
	assert.Contains(t, out, "user-123")
	assert.Contains(t, out, "a, b, c + 1")
	assert.Contains(t, out, "1700000000 (")
	assert.Contains(t, out, `{"admin":true}`)
	assert.Contains(t, out, "Token expired")
	assert.Contains(t, out, "Signature not verified")
}

func TestDecodeJWT_NotExpired(t *testing.T) {
	setupStdoutCapture(t)
	fixNow(t, time.Unix(1600000000, 0))

	require.NoError(t, DecodeJWT(JWTInput{Token: signedToken(t, jwt.MapClaims{"exp": 1700000000})}))
	assert.NotContains(t, outBuf.String(), "Token expired")
}

func TestDecodeJWT_JSON(t *testing.T) {
	setupStdoutCapture(t)
	read := captureStdout(t)

	tok := signedToken(t, jwt.MapClaims{"sub": "user-123", "n": 7})
	require.NoError(t, DecodeJWT(JWTInput{Token: tok, Output: "json"}))

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(read()), &got))
	assert.Equal(t, "user-123", got["sub"])
	assert.Equal(t, float64(7), got["n"])
}

func TestDecodeJWT_Malformed(t *testing.T) {
	setupStdoutCapture(t)
	err := DecodeJWT(JWTInput{Token: "not-a-token"})
	assert.ErrorIs(t, err, convert.ErrMalformedJWT)
}

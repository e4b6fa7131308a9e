package cookiesign_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gatekit/pkg/cookiesign"
)

const (
	secretA = "0123456789abcdef0123456789abcdef"
	secretB = "fedcba9876543210fedcba9876543210"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("requires at least one secret", func(t *testing.T) {
		t.Parallel()
		_, err := cookiesign.New()
		assert.ErrorIs(t, err, cookiesign.ErrNoSecret)

		_, err = cookiesign.New("", "")
		assert.ErrorIs(t, err, cookiesign.ErrNoSecret)
	})

	t.Run("rejects short secrets", func(t *testing.T) {
		t.Parallel()
		_, err := cookiesign.New("too-short")
		assert.ErrorIs(t, err, cookiesign.ErrSecretTooShort)
	})
}

func TestSignVerify(t *testing.T) {
	t.Parallel()

	signer, err := cookiesign.New(secretA)
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		signed := signer.Sign("session-token")
		value, err := signer.Verify(signed)
		require.NoError(t, err)
		assert.Equal(t, "session-token", value)
	})

	t.Run("rejects tampered signatures", func(t *testing.T) {
		t.Parallel()
		signed := signer.Sign("session-token")
		_, err := signer.Verify(signed + "x")
		assert.ErrorIs(t, err, cookiesign.ErrInvalidSignature)
	})

	t.Run("rejects tampered values", func(t *testing.T) {
		t.Parallel()
		signed := signer.Sign("session-token")
		parts := strings.SplitN(signed, "|", 2)
		other := signer.Sign("another-value")
		otherParts := strings.SplitN(other, "|", 2)

		_, err := signer.Verify(otherParts[0] + "|" + parts[1])
		assert.ErrorIs(t, err, cookiesign.ErrInvalidSignature)
	})

	t.Run("rejects malformed wire format", func(t *testing.T) {
		t.Parallel()
		_, err := signer.Verify("no-separator")
		assert.ErrorIs(t, err, cookiesign.ErrInvalidFormat)

		_, err = signer.Verify("not base64!!|sig")
		assert.ErrorIs(t, err, cookiesign.ErrInvalidFormat)
	})

	t.Run("verifies against rotated secrets", func(t *testing.T) {
		t.Parallel()
		oldSigner, err := cookiesign.New(secretB)
		require.NoError(t, err)
		rotated, err := cookiesign.New(secretA, secretB)
		require.NoError(t, err)

		signed := oldSigner.Sign("session-token")
		value, err := rotated.Verify(signed)
		require.NoError(t, err)
		assert.Equal(t, "session-token", value)
	})
}

func TestHTTPHelpers(t *testing.T) {
	t.Parallel()

	signer, err := cookiesign.New(secretA)
	require.NoError(t, err)

	t.Run("set and get signed cookie", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		signer.SetSigned(rec, &http.Cookie{Name: "jwt", Value: "token-value", Path: "/"})

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.NotEqual(t, "token-value", cookies[0].Value)

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(cookies[0])

		value, err := signer.GetSigned(r, "jwt")
		require.NoError(t, err)
		assert.Equal(t, "token-value", value)
	})

	t.Run("missing cookie", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		_, err := signer.GetSigned(r, "jwt")
		assert.ErrorIs(t, err, cookiesign.ErrCookieNotFound)
	})
}

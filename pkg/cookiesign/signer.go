package cookiesign

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
)

const minSecretLength = 32

// Signer signs and verifies cookie values with HMAC-SHA256. Multiple
// secrets support key rotation: values are always signed with the first
// secret and verified against all of them, so cookies issued under an old
// key stay valid during the transition.
type Signer struct {
	secrets []string
}

// New returns a Signer for the given secrets. Empty secrets are discarded;
// each remaining secret must be at least 32 characters long.
func New(secrets ...string) (*Signer, error) {
	if len(secrets) == 0 {
		return nil, ErrNoSecret
	}

	secrets = slices.DeleteFunc(slices.Clone(secrets), func(s string) bool { return s == "" })
	if len(secrets) == 0 {
		return nil, ErrNoSecret
	}

	for i, s := range secrets {
		if len(s) < minSecretLength {
			return nil, fmt.Errorf("%w: secret %d has %d chars, need at least %d", ErrSecretTooShort, i, len(s), minSecretLength)
		}
	}

	return &Signer{secrets: secrets}, nil
}

// Sign returns the signed wire form of value: base64(value)|base64(mac).
func (s *Signer) Sign(value string) string {
	mac := hmac.New(sha256.New, []byte(s.secrets[0]))
	mac.Write([]byte(value))
	signature := base64.URLEncoding.EncodeToString(mac.Sum(nil))

	return base64.URLEncoding.EncodeToString([]byte(value)) + "|" + signature
}

// Verify checks the signed wire form and returns the original value.
func (s *Signer) Verify(signed string) (string, error) {
	parts := strings.SplitN(signed, "|", 2)
	if len(parts) != 2 {
		return "", ErrInvalidFormat
	}

	encodedValue, signature := parts[0], parts[1]

	value, err := base64.URLEncoding.DecodeString(encodedValue)
	if err != nil {
		return "", ErrInvalidFormat
	}

	for _, secret := range s.secrets {
		mac := hmac.New(sha256.New, []byte(secret))
		mac.Write(value)
		expected := base64.URLEncoding.EncodeToString(mac.Sum(nil))

		// Constant-time comparison to prevent timing attacks.
		if subtle.ConstantTimeCompare([]byte(signature), []byte(expected)) == 1 {
			return string(value), nil
		}
	}

	return "", ErrInvalidSignature
}

// SetSigned writes a signed cookie to the response.
func (s *Signer) SetSigned(w http.ResponseWriter, cookie *http.Cookie) {
	signed := *cookie
	signed.Value = s.Sign(cookie.Value)
	http.SetCookie(w, &signed)
}

// GetSigned reads a cookie from the request and verifies its signature,
// returning the original value.
func (s *Signer) GetSigned(r *http.Request, name string) (string, error) {
	cookie, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return s.Verify(cookie.Value)
}

package cookiesign

import "errors"

var (
	ErrNoSecret         = errors.New("cookiesign.no_secret")
	ErrSecretTooShort   = errors.New("cookiesign.secret_too_short")
	ErrInvalidSignature = errors.New("cookiesign.invalid_signature")
	ErrInvalidFormat    = errors.New("cookiesign.invalid_format")
	ErrCookieNotFound   = errors.New("cookiesign.not_found")
)

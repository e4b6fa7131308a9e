// Package cookiesign signs and verifies cookie values with HMAC-SHA256.
//
// The Signer backs the signedCookies validation segment: only cookies whose
// signature verifies appear in that segment's data view. Signing uses the
// first configured secret; verification tries every secret so keys can be
// rotated without invalidating cookies already in the wild.
//
// # Usage
//
//	signer, err := cookiesign.New(os.Getenv("COOKIE_SECRET"))
//	if err != nil {
//		// at least one secret of 32+ chars is required
//	}
//
//	signer.SetSigned(w, &http.Cookie{Name: "jwt", Value: token, Path: "/"})
//
//	value, err := signer.GetSigned(r, "jwt")
//
// Verification uses constant-time comparison. The package holds no mutable
// state after construction and is safe for concurrent use.
package cookiesign

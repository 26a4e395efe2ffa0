package thumbor

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"

	apperrors "github.com/sudacode/thumburl/errors"
)

// SigningContext holds the shared secret used to derive the integrity tag
// of safe URLs. Construct it once per run and pass it into the builder;
// the key is never mutated afterwards.
type SigningContext struct {
	key []byte
}

// NewSigningContext creates a signing context for the given key.
func NewSigningContext(key string) *SigningContext {
	return &SigningContext{key: []byte(key)}
}

// Sign produces the signed path for an operations path, in the thumbor
// wire format: /SIGNATURE/OPERATIONS, where the signature is the URL-safe
// base64 of the HMAC-SHA1 of the operations path under the shared key.
// The server recomputes the same HMAC to verify the parameters were not
// tampered with. Signing with an empty key is refused; safe mode never
// silently degrades to unsafe.
func (s *SigningContext) Sign(operationsPath string) (string, error) {
	if len(s.key) == 0 {
		return "", apperrors.NewSigning("signing key is empty")
	}

	mac := hmac.New(sha1.New, s.key)
	mac.Write([]byte(operationsPath))
	signature := base64.URLEncoding.EncodeToString(mac.Sum(nil))

	return "/" + signature + "/" + operationsPath, nil
}

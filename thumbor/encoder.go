// Package thumbor builds image-resizing URLs for a thumbor media server:
// percent-encoding the source image URL, assembling the crop operations
// path, and signing it with the server's shared key.
package thumbor

import (
	"strings"
	"unicode/utf8"

	apperrors "github.com/sudacode/thumburl/errors"
)

const upperhex = "0123456789ABCDEF"

// EncodeImageURL percent-encodes an image URL so it can be embedded as a
// single path segment inside a thumbor URL. Every byte outside the
// unreserved set is encoded, and the path separator itself is forced to
// %2F: the image URL must read as one opaque segment to the server, so a
// literal / would be misparsed as a path boundary. The scheme delimiter
// ends up as %3A.
func EncodeImageURL(raw string) (string, error) {
	if !utf8.ValidString(raw) {
		return "", apperrors.NewEncoding(raw, nil).
			WithMessage("image URL is not valid UTF-8")
	}

	var b strings.Builder
	b.Grow(len(raw) + len(raw)/2)
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0xF])
	}
	return b.String(), nil
}

// isUnreserved reports whether a byte passes through unencoded. This is
// the unreserved set of RFC 3986 without the separator special case: the
// / is percent-encoded along with everything else.
func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-' || c == '.' || c == '_' || c == '~':
		return true
	}
	return false
}

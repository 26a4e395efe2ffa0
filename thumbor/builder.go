package thumbor

import (
	"strconv"
	"strings"

	apperrors "github.com/sudacode/thumburl/errors"
	"github.com/sudacode/thumburl/logging"
)

// Builder assembles thumbor URLs from validated requests.
type Builder struct {
	log logging.Logger
}

// NewBuilder creates a Builder logging through the given logger.
func NewBuilder(log logging.Logger) *Builder {
	if log == nil {
		log = logging.NewNop()
	}
	return &Builder{log: log}
}

// Build produces the final URL for a request. Unsafe requests get the
// /unsafe/ prefix and no signature; safe requests need a signer holding
// the server's key. The result is whitespace-trimmed.
func (b *Builder) Build(req Request, signer *SigningContext) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	encoded, err := EncodeImageURL(req.ImageURL)
	if err != nil {
		b.log.Errorf("Cannot encode image URL %q: %v", req.ImageURL, err)
		return "", err
	}
	b.log.Debugf("Encoded URL: %s", encoded)

	operations := operationsPath(req, encoded)

	var url string
	if req.Unsafe {
		url = req.BaseURL + "/unsafe/" + operations
	} else {
		if signer == nil {
			return "", apperrors.NewSigning("no signing context for safe URL")
		}
		signed, err := signer.Sign(operations)
		if err != nil {
			return "", err
		}
		b.log.Debugf("Signed path: %s", signed)
		url = req.BaseURL + signed
	}

	url = strings.TrimSpace(url)
	b.log.Infof("Generated URL: %s", url)
	return url, nil
}

// operationsPath renders the crop operations: WIDTHxHEIGHT in plain
// decimal, /smart only when smart cropping is on, then the encoded image
// URL as the final segment.
func operationsPath(req Request, encodedURL string) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(req.Width))
	b.WriteByte('x')
	b.WriteString(strconv.Itoa(req.Height))
	if req.Smart {
		b.WriteString("/smart")
	}
	b.WriteByte('/')
	b.WriteString(encodedURL)
	return b.String()
}

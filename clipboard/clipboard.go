// Package clipboard copies generated URLs to the system clipboard. The
// copy is best-effort: callers log failures and continue, the URL is
// printed either way.
package clipboard

import (
	atotto "github.com/atotto/clipboard"

	apperrors "github.com/sudacode/thumburl/errors"
)

// Available reports whether a clipboard provider exists on this system.
// Headless environments typically have none.
func Available() bool {
	return !atotto.Unsupported
}

// Copy writes text to the system clipboard. The returned error is always
// a non-fatal clipboard error.
func Copy(text string) error {
	if atotto.Unsupported {
		return apperrors.NewClipboard(nil).
			WithMessage("no clipboard provider available")
	}
	if err := atotto.WriteAll(text); err != nil {
		return apperrors.NewClipboard(err)
	}
	return nil
}

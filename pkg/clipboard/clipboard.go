// Package clipboard copies text to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnsupported means no clipboard utility is available, e.g. a headless
// Linux box without xclip, xsel or wl-copy.
var ErrUnsupported = errors.New("clipboard is not available on this system")

// writeAll is swapped out in tests.
var writeAll = clipboard.WriteAll

// Copy places text on the system clipboard.
func Copy(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := writeAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

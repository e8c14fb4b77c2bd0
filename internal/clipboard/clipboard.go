// Package clipboard wraps the system clipboard as a write-only sink.
// Copying is best effort: a failure here never invalidates the secret
// retrieval that triggered it.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Copy writes text to the system clipboard.
func Copy(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

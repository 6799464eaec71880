// ABOUTME: Error constructors wrapping the shared storage sentinels.
// ABOUTME: Lets callers use errors.Is regardless of backend.
package charm

import (
	"fmt"

	"github.com/harperreed/daylog/internal/storage"
)

func errNotFound(idPrefix string) error {
	return fmt.Errorf("resolve %s: %w", idPrefix, storage.ErrNotFound)
}

func errAmbiguous(idPrefix string) error {
	return fmt.Errorf("resolve %s: %w", idPrefix, storage.ErrAmbiguous)
}

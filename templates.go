package intake

import (
	"io/fs"

	"github.com/goliatone/go-intake/pkg/receipt"
)

// EmbeddedTemplates exposes the built-in receipt templates so callers can
// render with the defaults or copy them as a starting point for overrides.
func EmbeddedTemplates() fs.FS {
	return receipt.TemplatesFS()
}
